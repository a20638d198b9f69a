// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     calendar
// Description: Validated civil date with optional time of day
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calendar

import (
	"fmt"
	"time"
)

// Supported year range. Offsets that leave it fail with INVALID_DATE.
const (
	MinYear = -999999
	MaxYear = 999999
)

// Date is a civil date in the proleptic Gregorian calendar with an optional
// time of day. The zero value is not a valid date; use NewDate or
// NewDateTime.
type Date struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, or 0 for an
// invalid month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// NewDate validates and returns a date at midnight
func NewDate(year int, month time.Month, day int) (Date, error) {
	return NewDateTime(year, month, day, 0, 0, 0)
}

// NewDateTime validates and returns a date with a time of day.
// Invalid components are rejected, never normalized.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) (Date, error) {
	const op = "calendar.NewDateTime"

	if year < MinYear || year > MaxYear {
		return Date{}, invalidDate(op, "year %d out of supported range", year).
			WithDetail("year", year)
	}
	if month < time.January || month > time.December {
		return Date{}, invalidDate(op, "month %d out of range 1..12", int(month)).
			WithDetail("month", int(month))
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return Date{}, invalidDate(op, "day %d out of range 1..%d for %04d-%02d", day, last, year, int(month)).
			WithDetail("day", day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Date{}, invalidDate(op, "time %02d:%02d:%02d out of range", hour, minute, second)
	}

	return Date{year: year, month: month, day: day, hour: hour, minute: minute, second: second}, nil
}

// MustDate is like NewDate but panics on an invalid date.
// Intended for constants and tests.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the wall-clock date and time of t in t's location.
// Sub-second precision is dropped.
func FromTime(t time.Time) Date {
	return Date{
		year:   t.Year(),
		month:  t.Month(),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
	}
}

// Year returns the year
func (d Date) Year() int { return d.year }

// Month returns the month
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month
func (d Date) Day() int { return d.day }

// Hour returns the hour of the time of day
func (d Date) Hour() int { return d.hour }

// Minute returns the minute of the time of day
func (d Date) Minute() int { return d.minute }

// Second returns the second of the time of day
func (d Date) Second() int { return d.second }

// IsValid reports whether d was produced by a constructor. The zero Date is invalid.
func (d Date) IsValid() bool {
	_, err := NewDateTime(d.year, d.month, d.day, d.hour, d.minute, d.second)
	return err == nil
}

// HasTime reports whether d carries a time of day other than midnight
func (d Date) HasTime() bool {
	return d.secondOfDay() != 0
}

// DateOnly returns d at midnight
func (d Date) DateOnly() Date {
	return Date{year: d.year, month: d.month, day: d.day}
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	return time.Weekday((d.epochDays()%7 + 7 + 4) % 7)
}

// YearDay returns the day of the year in the range 1..366
func (d Date) YearDay() int {
	return int(d.epochDays()-daysFromCivil(d.year, time.January, 1)) + 1
}

// Compare returns -1, 0 or +1 when d is before, equal to or after other
func (d Date) Compare(other Date) int {
	a, b := d.epochSeconds(), other.epochSeconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is before other
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is after other
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other denote the same instant
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// String formats d as ISO 8601, with the time only when it is not midnight
func (d Date) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
	if d.year < 0 {
		s = fmt.Sprintf("-%04d-%02d-%02d", -d.year, int(d.month), d.day)
	}
	if d.HasTime() {
		s += fmt.Sprintf("T%02d:%02d:%02d", d.hour, d.minute, d.second)
	}
	return s
}

// Time returns d as a UTC time.Time
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, d.hour, d.minute, d.second, 0, time.UTC)
}
