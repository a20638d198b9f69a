// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     present
// Description: Locale-aware formatting of conversion and calendar results
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package present

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	"github.com/msto63/unitcal/foundation/utils/mathx"
	"github.com/msto63/unitcal/pkg/calendar"
	"github.com/msto63/unitcal/pkg/units"
)

// Formatter renders engine results for one locale
type Formatter struct {
	tag       language.Tag
	printer   *message.Printer
	precision int
	german    bool
}

// New creates a formatter for a BCP 47 locale and a maximum number of
// fraction digits
func New(locale string, precision int) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("present.New").
			WithDetail("locale", locale)
	}
	if precision < 0 {
		precision = 0
	}

	cat, err := newCatalog()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to build message catalog").
			WithCode(mdwerror.CodeInternal).
			WithOperation("present.New")
	}

	base, _ := tag.Base()
	return &Formatter{
		tag:       tag,
		printer:   message.NewPrinter(tag, message.Catalog(cat)),
		precision: precision,
		german:    base.String() == "de",
	}, nil
}

// Tag returns the formatter's language
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Number formats v with locale digit grouping and at most the configured
// number of fraction digits. Trailing zeros are dropped.
func (f *Formatter) Number(v float64) string {
	if !mathx.IsFinite(v) {
		return f.printer.Sprint(v)
	}
	rounded := mathx.Round(v, f.precision, mathx.RoundingModeHalfUp)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return f.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(f.precision)))
}

// Quantity formats a value with its unit symbol, e.g. "100 cm"
func (f *Formatter) Quantity(q units.Quantity) string {
	return f.Number(q.Value) + " " + q.Unit.Symbol
}

// Unit formats a unit for listings, e.g. "km (Kilometer)"
func (f *Formatter) Unit(def units.UnitDefinition) string {
	if def.Symbol == def.ID {
		return def.ID + " (" + def.Name + ")"
	}
	return def.ID + " [" + def.Symbol + "] (" + def.Name + ")"
}

// Date formats d as "01.03.2025" for German and ISO 8601 otherwise
func (f *Formatter) Date(d calendar.Date) string {
	if !f.german {
		return d.String()
	}
	// plain fmt: the printer would group the year digits
	s := fmt.Sprintf("%02d.%02d.%04d", d.Day(), int(d.Month()), d.Year())
	if d.HasTime() {
		s += fmt.Sprintf(" %02d:%02d:%02d", d.Hour(), d.Minute(), d.Second())
	}
	return s
}

// Weekday returns the localized name of d's weekday
func (f *Formatter) Weekday(d calendar.Date) string {
	if f.german {
		return germanWeekdays[d.Weekday()]
	}
	return d.Weekday().String()
}

var germanWeekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

// Breakdown formats the calendar breakdown, e.g. "1 Jahr, 2 Monate, 0 Tage"
func (f *Formatter) Breakdown(d calendar.Difference) string {
	a := d.Abs()
	return strings.Join([]string{
		f.printer.Sprintf(keyYears, a.Years),
		f.printer.Sprintf(keyMonths, a.Months),
		f.printer.Sprintf(keyDays, a.Days),
	}, ", ")
}

// Duration formats the exact duration as days and the time remainder, e.g.
// "30 Tage, 23 Stunden, 30 Minuten, 15 Sekunden". Zero time parts are left out.
func (f *Formatter) Duration(d calendar.Difference) string {
	a := d.Abs()
	parts := []string{f.printer.Sprintf(keyDays, int(a.TotalDays))}
	if a.Hours != 0 || a.Minutes != 0 || a.Seconds != 0 {
		parts = append(parts,
			f.printer.Sprintf(keyHours, a.Hours),
			f.printer.Sprintf(keyMinutes, a.Minutes),
			f.printer.Sprintf(keySeconds, a.Seconds),
		)
	}
	return strings.Join(parts, ", ")
}

// Weeks formats the whole weeks and remaining days, e.g. "8 Wochen, 3 Tage"
func (f *Formatter) Weeks(d calendar.Difference) string {
	a := d.Abs()
	return f.printer.Sprintf(keyWeeks, int(a.Weeks)) + ", " + f.printer.Sprintf(keyDays, int(a.RemainingDays()))
}

// Direction describes the sign of d, e.g. "später"
func (f *Formatter) Direction(d calendar.Difference) string {
	switch {
	case d.Sign > 0:
		return f.printer.Sprintf(keyLater)
	case d.Sign < 0:
		return f.printer.Sprintf(keyEarlier)
	default:
		return f.printer.Sprintf(keySame)
	}
}

// Count formats an integer with locale digit grouping
func (f *Formatter) Count(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}
