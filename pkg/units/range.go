package units

import (
	mdwerror "github.com/msto63/unitcal/foundation/core/error"
)

// AbsoluteZeroCelsius is the lowest physically meaningful temperature
const AbsoluteZeroCelsius = -273.15

// rangeTolerance absorbs rounding in the affine map so that exactly 0 K or
// -459.67 °F is not reported.
const rangeTolerance = 1e-9

// CheckRange reports values that cannot occur physically, currently
// temperatures below absolute zero, as a VALUE_OUT_OF_RANGE error. Convert
// never calls it; display code decides whether to warn.
func (t *Table) CheckRange(category Category, unitID string, value float64) error {
	def, err := t.Lookup(category, unitID)
	if err != nil {
		return err
	}
	if category != Temperature {
		return nil
	}

	celsius := def.ToBase(value)
	if celsius < AbsoluteZeroCelsius-rangeTolerance {
		return mdwerror.Newf("%v %s is below absolute zero", value, def.Symbol).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("units.CheckRange").
			WithDetail("unit", def.ID).
			WithDetail("value", value)
	}
	return nil
}

// IsOutOfRange reports whether err is a range advisory from CheckRange
func IsOutOfRange(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}
