package calendar

import (
	"github.com/msto63/unitcal/foundation/utils/timex"
)

// Parse reads a date with optional time of day. Accepted layouts are those of
// timex.ParseDateTime, e.g. "2025-03-01", "01.03.2025" or
// "2025-03-01T14:30:00". Impossible dates such as "2025-02-30" fail with
// INVALID_DATE instead of rolling over.
func Parse(value string) (Date, error) {
	t, err := timex.ParseDateTime(value)
	if err != nil {
		return Date{}, invalidDate("calendar.Parse", "invalid date %q", value).
			WithDetail("input", value)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}
