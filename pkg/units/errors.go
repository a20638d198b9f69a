package units

import (
	mdwerror "github.com/msto63/unitcal/foundation/core/error"
)

func unknownUnitError(op string, category Category, unitID string) *mdwerror.Error {
	return mdwerror.Newf("unit %q not found in category %s", unitID, category).
		WithCode(mdwerror.CodeUnknownUnit).
		WithOperation(op).
		WithDetail("category", string(category)).
		WithDetail("unit", unitID)
}

func unknownCategoryError(op string, category Category) *mdwerror.Error {
	return mdwerror.Newf("unknown category %q", string(category)).
		WithCode(mdwerror.CodeUnknownCategory).
		WithOperation(op).
		WithDetail("category", string(category))
}

func invalidTableError(format string, args ...interface{}) *mdwerror.Error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvalidUnitTable).
		WithOperation("units.NewTable")
}

// IsUnknownUnit reports whether err is caused by a unit id that does not
// resolve in the requested category
func IsUnknownUnit(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnknownUnit)
}

// IsUnknownCategory reports whether err is caused by an unknown category
func IsUnknownCategory(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnknownCategory)
}
