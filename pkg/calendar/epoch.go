package calendar

import (
	"time"

	"github.com/msto63/unitcal/foundation/utils/mathx"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// days in one 400-year Gregorian cycle
	daysPerEra = 146097
	// days from 0000-03-01 to 1970-01-01
	unixEpochShift = 719468
)

// daysFromCivil returns the number of days since 1970-01-01. Years are
// shifted to start in March so the leap day is the last day of the year.
func daysFromCivil(year int, month time.Month, day int) int64 {
	y := int64(year)
	m := int64(month)
	if m <= 2 {
		y--
	}
	era := mathx.FloorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - unixEpochShift
}

// civilFromDays is the inverse of daysFromCivil
func civilFromDays(days int64) (int, time.Month, int) {
	z := days + unixEpochShift
	era := mathx.FloorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return int(y), time.Month(m), int(d)
}

// epochDays returns the day number of d relative to 1970-01-01
func (d Date) epochDays() int64 {
	return daysFromCivil(d.year, d.month, d.day)
}

// epochSeconds returns the seconds of d relative to 1970-01-01T00:00:00
func (d Date) epochSeconds() int64 {
	return d.epochDays()*secondsPerDay + int64(d.secondOfDay())
}

func (d Date) secondOfDay() int {
	return d.hour*secondsPerHour + d.minute*secondsPerMinute + d.second
}
