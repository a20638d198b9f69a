package calendar

import (
	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	"github.com/msto63/unitcal/foundation/utils/timex"
)

// Age returns the age at today of someone born on birth as the normalized
// breakdown of DateDifference. Both dates are compared without time of day.
func Age(birth, today Date) (Difference, error) {
	birth, today = birth.DateOnly(), today.DateOnly()
	if birth.After(today) {
		return Difference{}, mdwerror.Newf("birth date %s is after %s", birth, today).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calendar.Age")
	}
	return DateDifference(birth, today)
}

// AgeAt is Age with today taken from clock
func AgeAt(birth Date, clock timex.Clock) (Difference, error) {
	return Age(birth, Today(clock))
}

// Today returns the current date of clock without time of day
func Today(clock timex.Clock) Date {
	return FromTime(timex.Today(clock))
}
