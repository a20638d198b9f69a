// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     calendar
// Description: Moving a civil date by days, weeks, months or years
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calendar

import (
	"strings"
	"time"

	"github.com/msto63/unitcal/foundation/utils/mathx"
)

// Unit is the unit of an offset amount
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

// maxOffsetDays bounds day and week offsets so that int64 arithmetic cannot
// overflow before the year range check
const maxOffsetDays = int64(MaxYear-MinYear+1) * 366

var unitNames = map[string]Unit{
	"d": UnitDay, "day": UnitDay, "days": UnitDay, "tag": UnitDay, "tage": UnitDay,
	"w": UnitWeek, "week": UnitWeek, "weeks": UnitWeek, "woche": UnitWeek, "wochen": UnitWeek,
	"m": UnitMonth, "month": UnitMonth, "months": UnitMonth, "monat": UnitMonth, "monate": UnitMonth,
	"y": UnitYear, "year": UnitYear, "years": UnitYear, "jahr": UnitYear, "jahre": UnitYear,
}

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return "unknown"
	}
}

// ParseUnit resolves an offset unit name. English and German singular and
// plural forms and the one-letter abbreviations d, w, m, y are accepted.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, invalidDate("calendar.ParseUnit", "unknown offset unit %q", name).
			WithDetail("unit", name)
	}
	return u, nil
}

// OffsetDate moves base by amount units. Day and week offsets carry across
// month and year boundaries. Month and year offsets keep the day of month
// but clamp it to the last day of the target month, so 2025-01-31 plus one
// month is 2025-02-28 and 2024-02-29 plus one year is 2025-02-28. The time of
// day is preserved.
func OffsetDate(base Date, amount int, unit Unit) (Date, error) {
	const op = "calendar.OffsetDate"

	if !base.IsValid() {
		return Date{}, invalidDate(op, "invalid base date %s", base)
	}

	var year int64
	var month time.Month
	var day int

	switch unit {
	case UnitDay, UnitWeek:
		days := int64(amount)
		if days > maxOffsetDays || days < -maxOffsetDays {
			return Date{}, invalidDate(op, "offset of %d %ss out of supported range", amount, unit)
		}
		if unit == UnitWeek {
			days *= 7
		}
		y, m, d := civilFromDays(base.epochDays() + days)
		year, month, day = int64(y), m, d

	case UnitMonth:
		totalMonths := int64(base.month) - 1 + int64(amount)
		year = int64(base.year) + mathx.FloorDiv(totalMonths, 12)
		month = time.Month(mathx.FloorMod(totalMonths, 12) + 1)
		day = base.day

	case UnitYear:
		year = int64(base.year) + int64(amount)
		month = base.month
		day = base.day

	default:
		return Date{}, invalidDate(op, "unknown offset unit %d", int(unit))
	}

	if year < MinYear || year > MaxYear {
		return Date{}, invalidDate(op, "result year %d out of supported range", year).
			WithDetail("year", year)
	}

	if last := DaysInMonth(int(year), month); day > last {
		day = last
	}

	return Date{
		year:   int(year),
		month:  month,
		day:    day,
		hour:   base.hour,
		minute: base.minute,
		second: base.second,
	}, nil
}

// AddDays returns d moved by n days
func (d Date) AddDays(n int) (Date, error) {
	return OffsetDate(d, n, UnitDay)
}

// AddWeeks returns d moved by n weeks
func (d Date) AddWeeks(n int) (Date, error) {
	return OffsetDate(d, n, UnitWeek)
}

// AddMonths returns d moved by n months, clamping the day
func (d Date) AddMonths(n int) (Date, error) {
	return OffsetDate(d, n, UnitMonth)
}

// AddYears returns d moved by n years, clamping the day
func (d Date) AddYears(n int) (Date, error) {
	return OffsetDate(d, n, UnitYear)
}
