// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     calendar
// Description: Civil dates, date differences and date offsets
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package calendar implements arithmetic on civil dates in the proleptic
// Gregorian calendar.
//
// A Date is a validated (year, month, day) triple with an optional time of
// day. It has no time zone. DateDifference returns the distance between two
// dates both as whole days, weeks and a time remainder and as a normalized
// (years, months, days) breakdown. OffsetDate moves a date by days, weeks,
// months or years.
//
// Month and year offsets clamp the day to the last day of the target month:
//
//	d := calendar.MustDate(2025, time.January, 31)
//	calendar.OffsetDate(d, 1, calendar.UnitMonth) // 2025-02-28
//
// The package reads no clock. Callers that need "today" resolve it
// themselves, for example with timex.Clock, and pass it in.
package calendar
