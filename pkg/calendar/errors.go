package calendar

import (
	mdwerror "github.com/msto63/unitcal/foundation/core/error"
)

func invalidDate(op, format string, args ...interface{}) *mdwerror.Error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvalidDate).
		WithOperation(op)
}

// IsInvalidDate reports whether err was caused by an invalid date, time of
// day or offset unit
func IsInvalidDate(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidDate)
}
