// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     calendar
// Description: Signed difference between two civil dates
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package calendar

import (
	"fmt"
	"time"
)

// Difference is the distance from one date to another. Every field carries
// Sign: all fields are negative when the second date lies before the first
// and all are zero when both are equal.
type Difference struct {
	Sign int

	// Exact duration
	TotalDays    int64
	Weeks        int64
	Hours        int
	Minutes      int
	Seconds      int
	TotalSeconds int64

	// Calendar breakdown
	Years  int
	Months int
	Days   int
}

// DateDifference computes the difference from a to b. The breakdown is
// normalized so that adding Years, then Months (both clamped), then Days to
// the earlier date yields the later one.
func DateDifference(a, b Date) (Difference, error) {
	const op = "calendar.DateDifference"

	if !a.IsValid() {
		return Difference{}, invalidDate(op, "invalid first date %s", a)
	}
	if !b.IsValid() {
		return Difference{}, invalidDate(op, "invalid second date %s", b)
	}

	sign := b.Compare(a)
	if sign == 0 {
		return Difference{}, nil
	}

	early, late := a, b
	if sign < 0 {
		early, late = b, a
	}

	delta := late.epochSeconds() - early.epochSeconds()
	diff := Difference{
		Sign:         sign,
		TotalSeconds: delta,
		TotalDays:    delta / secondsPerDay,
		Hours:        int(delta % secondsPerDay / secondsPerHour),
		Minutes:      int(delta % secondsPerHour / secondsPerMinute),
		Seconds:      int(delta % secondsPerMinute),
	}
	diff.Weeks = diff.TotalDays / 7
	diff.Years, diff.Months, diff.Days = breakdown(early, late)

	if sign < 0 {
		diff = diff.negate()
	}
	return diff, nil
}

// breakdown returns the non-negative (years, months, days) from early to late
func breakdown(early, late Date) (years, months, days int) {
	// a later time of day that has not been reached yet costs one whole day
	lateDay := late.day
	if late.secondOfDay() < early.secondOfDay() {
		lateDay--
	}

	years = late.year - early.year
	months = int(late.month) - int(early.month)
	days = lateDay - early.day

	if days < 0 {
		months--
		prevYear, prevMonth := previousMonth(late.year, late.month)
		days += DaysInMonth(prevYear, prevMonth)
		if days < 0 {
			// early.day does not exist in the preceding month; the month step
			// clamps to its last day and the rest is counted from there
			days = lateDay
		}
	}

	if months < 0 {
		years--
		months += 12
	}

	return years, months, days
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func (d Difference) negate() Difference {
	return Difference{
		Sign:         -d.Sign,
		TotalDays:    -d.TotalDays,
		Weeks:        -d.Weeks,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		TotalSeconds: -d.TotalSeconds,
		Years:        -d.Years,
		Months:       -d.Months,
		Days:         -d.Days,
	}
}

// Abs returns the difference with all fields non-negative
func (d Difference) Abs() Difference {
	if d.Sign < 0 {
		return d.negate()
	}
	return d
}

// IsZero reports whether both dates were equal
func (d Difference) IsZero() bool {
	return d.Sign == 0
}

// TotalHours returns the signed number of whole hours
func (d Difference) TotalHours() int64 {
	return d.TotalSeconds / secondsPerHour
}

// TotalMinutes returns the signed number of whole minutes
func (d Difference) TotalMinutes() int64 {
	return d.TotalSeconds / secondsPerMinute
}

// RemainingDays returns the days left over after whole weeks
func (d Difference) RemainingDays() int64 {
	return d.TotalDays - d.Weeks*7
}

// String formats the calendar breakdown, e.g. "+1y 2m 3d"
func (d Difference) String() string {
	a := d.Abs()
	sign := "+"
	if d.Sign < 0 {
		sign = "-"
	}
	s := fmt.Sprintf("%s%dy %dm %dd", sign, a.Years, a.Months, a.Days)
	if a.Hours != 0 || a.Minutes != 0 || a.Seconds != 0 {
		s += fmt.Sprintf(" %02d:%02d:%02d", a.Hours, a.Minutes, a.Seconds)
	}
	return s
}
