// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     present
// Description: Message catalog for calendar output
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package present

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English catalog entry doubles as fallback text.
const (
	keyYears   = "%d years"
	keyMonths  = "%d months"
	keyWeeks   = "%d weeks"
	keyDays    = "%d days"
	keyHours   = "%d hours"
	keyMinutes = "%d minutes"
	keySeconds = "%d seconds"
	keyLater   = "later"
	keyEarlier = "earlier"
	keySame    = "same instant"
)

type pluralEntry struct {
	key        string
	one        string
	other      string
	germanOne  string
	germanMany string
}

var pluralEntries = []pluralEntry{
	{keyYears, "%d year", "%d years", "%d Jahr", "%d Jahre"},
	{keyMonths, "%d month", "%d months", "%d Monat", "%d Monate"},
	{keyWeeks, "%d week", "%d weeks", "%d Woche", "%d Wochen"},
	{keyDays, "%d day", "%d days", "%d Tag", "%d Tage"},
	{keyHours, "%d hour", "%d hours", "%d Stunde", "%d Stunden"},
	{keyMinutes, "%d minute", "%d minutes", "%d Minute", "%d Minuten"},
	{keySeconds, "%d second", "%d seconds", "%d Sekunde", "%d Sekunden"},
}

// newCatalog builds the English and German messages. Other languages fall
// back to English wording with their own number formatting.
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for _, e := range pluralEntries {
		if err := b.Set(language.English, e.key,
			plural.Selectf(1, "%d", "=1", e.one, plural.Other, e.other)); err != nil {
			return nil, err
		}
		if err := b.Set(language.German, e.key,
			plural.Selectf(1, "%d", "=1", e.germanOne, plural.Other, e.germanMany)); err != nil {
			return nil, err
		}
	}

	words := map[string]string{
		keyLater:   "später",
		keyEarlier: "früher",
		keySame:    "gleicher Zeitpunkt",
	}
	for key, german := range words {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.German, key, german); err != nil {
			return nil, err
		}
	}

	return b, nil
}
