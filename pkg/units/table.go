package units

import (
	"strings"

	"github.com/msto63/unitcal/foundation/utils/mathx"
)

// Table is an immutable registry of unit definitions grouped by category.
type Table struct {
	categories []Category
	units      map[Category][]UnitDefinition
	byID       map[string]UnitDefinition
}

// NewTable builds a table from definitions. Every category present must have
// exactly one base unit, unit ids must be unique across categories and every
// scale must be finite and non-zero.
func NewTable(defs []UnitDefinition) (*Table, error) {
	t := &Table{
		units: make(map[Category][]UnitDefinition),
		byID:  make(map[string]UnitDefinition, len(defs)),
	}

	for _, def := range defs {
		def.ID = normalizeID(def.ID)
		if def.ID == "" {
			return nil, invalidTableError("unit definition without id")
		}
		if !def.Category.IsValid() {
			return nil, invalidTableError("unit %q has unknown category %q", def.ID, def.Category).
				WithDetail("unit", def.ID)
		}
		if !mathx.IsFinite(def.Scale) || def.Scale == 0 {
			return nil, invalidTableError("unit %q has invalid scale %v", def.ID, def.Scale).
				WithDetail("unit", def.ID)
		}
		if !mathx.IsFinite(def.Offset) {
			return nil, invalidTableError("unit %q has invalid offset %v", def.ID, def.Offset).
				WithDetail("unit", def.ID)
		}
		if existing, ok := t.byID[def.ID]; ok {
			return nil, invalidTableError("unit %q defined in %s and %s", def.ID, existing.Category, def.Category).
				WithDetail("unit", def.ID)
		}
		if def.Name == "" {
			def.Name = def.ID
		}
		if def.Symbol == "" {
			def.Symbol = def.ID
		}

		t.byID[def.ID] = def
		t.units[def.Category] = append(t.units[def.Category], def)
	}

	for _, c := range categoryOrder {
		list, ok := t.units[c]
		if !ok {
			continue
		}
		bases := 0
		for _, def := range list {
			if def.IsBase() {
				bases++
			}
		}
		if bases != 1 {
			return nil, invalidTableError("category %s has %d base units, want exactly one", c, bases).
				WithDetail("category", string(c))
		}
		t.categories = append(t.categories, c)
	}

	return t, nil
}

// MustTable is like NewTable but panics on invalid definitions
func MustTable(defs []UnitDefinition) *Table {
	t, err := NewTable(defs)
	if err != nil {
		panic(err)
	}
	return t
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Categories returns the categories present in the table in display order
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// UnitsOf returns the units of a category in definition order.
// The returned slice is a copy.
func (t *Table) UnitsOf(category Category) []UnitDefinition {
	list := t.units[category]
	out := make([]UnitDefinition, len(list))
	copy(out, list)
	return out
}

// Lookup resolves a unit id within a category. Ids are matched
// case-insensitively. A unit that exists in another category is not found.
func (t *Table) Lookup(category Category, unitID string) (UnitDefinition, error) {
	if _, ok := t.units[category]; !ok {
		return UnitDefinition{}, unknownCategoryError("units.Lookup", category)
	}
	def, ok := t.byID[normalizeID(unitID)]
	if !ok || def.Category != category {
		return UnitDefinition{}, unknownUnitError("units.Lookup", category, unitID)
	}
	return def, nil
}

// CategoryOf returns the category that owns unitID
func (t *Table) CategoryOf(unitID string) (Category, error) {
	def, ok := t.byID[normalizeID(unitID)]
	if !ok {
		return "", unknownUnitError("units.CategoryOf", "", unitID)
	}
	return def.Category, nil
}

// BaseOf returns the base unit of a category
func (t *Table) BaseOf(category Category) (UnitDefinition, error) {
	for _, def := range t.units[category] {
		if def.IsBase() {
			return def, nil
		}
	}
	return UnitDefinition{}, unknownCategoryError("units.BaseOf", category)
}

// Extend returns a new table holding the receiver's units plus defs.
// The receiver is not modified.
func (t *Table) Extend(defs ...UnitDefinition) (*Table, error) {
	all := make([]UnitDefinition, 0, len(t.byID)+len(defs))
	for _, c := range t.categories {
		all = append(all, t.units[c]...)
	}
	all = append(all, defs...)
	return NewTable(all)
}
