// Package timex implements the time helpers used by the calendar engine and
// the unitcal command line.
//
// Package: timex
// Title: Extended Time Utilities for Go
// Description: Tolerant date parsing, an injectable clock, configurable
//              business day rules and compact duration formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-19 v0.2.0: Trimmed to the helpers the calendar engine needs
//
// # Parsing
//
// ParseDate accepts ISO dates ("2025-03-01"), German dates ("01.03.2025"),
// compact dates ("20250301") and display dates ("March 1, 2025").
// ParseDateTime additionally accepts a time of day ("2025-03-01T14:30:00",
// "2025-03-01 14:30"). All results are UTC and range-checked by the time
// package, so "2025-02-30" is rejected.
//
// # Clock
//
// Code that needs "today" takes a Clock. SystemClock reads the wall clock,
// FixedClock returns a fixed instant:
//
//	clock := timex.FixedClock{At: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
//	today := timex.Today(clock)
//
// # Business days
//
// IsBusinessDay checks a date against a BusinessDayConfig. The default
// configuration treats Saturday and Sunday as weekend and knows no holidays:
//
//	cfg := timex.DefaultBusinessDayConfig()
//	cfg.Holidays = append(cfg.Holidays, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))
//	ok := timex.IsBusinessDay(day, cfg)
package timex
