package units

import (
	"strings"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
)

// Category is a conversion category. Categories are disjoint: a unit id
// belongs to exactly one of them.
type Category string

const (
	Length      Category = "length"
	Mass        Category = "mass"
	Temperature Category = "temperature"
	Volume      Category = "volume"
	Area        Category = "area"
	Speed       Category = "speed"
)

// categoryOrder is the display order of the builtin categories
var categoryOrder = []Category{Length, Mass, Temperature, Volume, Area, Speed}

var categoryAliases = map[string]Category{
	"weight":   Mass,
	"distance": Length,
	"temp":     Temperature,
	"velocity": Speed,
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name. "weight" is accepted for mass.
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := categoryAliases[key]; ok {
		return alias, nil
	}
	c := Category(key)
	if !c.IsValid() {
		return "", mdwerror.Newf("unknown category %q", name).
			WithCode(mdwerror.CodeUnknownCategory).
			WithOperation("units.ParseCategory").
			WithDetail("category", name)
	}
	return c, nil
}
