// File: timex.go
// Title: Core Time Utilities
// Description: Implements the time helpers shared by the calendar engine and
//              the CLI: tolerant date parsing, an injectable clock, business
//              day rules and compact duration formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic,
//                       enhanced European date parsing support (DD.MM.YYYY format)
// - 2026-10-19 v0.2.0: Reduced to parsing, clock and business day helpers,
//                       dropped ambiguous US short formats

package timex

import (
	"fmt"
	"strings"
	"time"
)

// Common time formats
const (
	// ISO formats
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Business formats
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"

	// European formats
	GermanDate     = "02.01.2006"
	GermanDateTime = "02.01.2006 15:04:05"

	// Display formats
	DisplayDate = "January 2, 2006"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	ISO8601Date,
	GermanDate,
	CompactDate,
	DisplayDate,
	"2006-1-2",
	"2.1.2006",
}

// dateTimeLayouts are tried in order by ParseDateTime before falling back to dates
var dateTimeLayouts = []string{
	ISO8601DateTime,
	BusinessDateTime,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	GermanDateTime,
	"02.01.2006 15:04",
	CompactDateTime,
}

// ParseDate parses a date-only string. The result is midnight UTC.
// Out-of-range components such as February 30 are rejected.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date string: %s", value)
}

// ParseDateTime parses a date with an optional time of day. Values without a
// time component are accepted and resolve to midnight UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	if t, err := ParseDate(value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date/time string: %s", value)
}

// Clock abstracts time.Now so that "today" can be fixed in tests and on the command line
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// Today returns the clock's current date at midnight in the clock's location
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// BusinessDayConfig holds configuration for business day calculations
type BusinessDayConfig struct {
	// Weekend days (default: Saturday, Sunday)
	WeekendDays []time.Weekday
	// Holidays (specific dates, time of day ignored)
	Holidays []time.Time
	// Custom holiday checker function
	IsHoliday func(time.Time) bool
}

// DefaultBusinessDayConfig returns a Saturday/Sunday weekend without holidays
func DefaultBusinessDayConfig() *BusinessDayConfig {
	return &BusinessDayConfig{
		WeekendDays: []time.Weekday{time.Saturday, time.Sunday},
	}
}

// IsWeekend checks if the given date falls on a configured weekend day
func IsWeekend(t time.Time, config ...*BusinessDayConfig) bool {
	cfg := resolveConfig(config)
	for _, wd := range cfg.WeekendDays {
		if t.Weekday() == wd {
			return true
		}
	}
	return false
}

// IsBusinessDay checks if the given date is neither a weekend day nor a holiday
func IsBusinessDay(t time.Time, config ...*BusinessDayConfig) bool {
	cfg := resolveConfig(config)

	if IsWeekend(t, cfg) {
		return false
	}

	for _, holiday := range cfg.Holidays {
		if sameDate(t, holiday) {
			return false
		}
	}

	if cfg.IsHoliday != nil && cfg.IsHoliday(t) {
		return false
	}

	return true
}

func resolveConfig(config []*BusinessDayConfig) *BusinessDayConfig {
	if len(config) > 0 && config[0] != nil {
		return config[0]
	}
	return DefaultBusinessDayConfig()
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDurationCompact formats a duration compactly (e.g., "1d 2h 30m").
// Negative durations keep a leading minus sign.
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return sign + strings.Join(parts, " ")
}
