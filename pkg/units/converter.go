// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     units
// Description: Value conversion through the category base unit
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package units

// Convert converts value from one unit to another within category.
// Both ids must resolve in category; a unit from a different category is an
// unknown unit. Converting a unit to itself returns value unchanged. No
// rounding and no plausibility checks are applied.
func (t *Table) Convert(value float64, fromID, toID string, category Category) (float64, error) {
	from, err := t.Lookup(category, fromID)
	if err != nil {
		return 0, err
	}
	to, err := t.Lookup(category, toID)
	if err != nil {
		return 0, err
	}
	return convert(value, from, to), nil
}

// ConvertQuantity converts q into the unit toID of q's category
func (t *Table) ConvertQuantity(q Quantity, toID string) (Quantity, error) {
	from, err := t.Lookup(q.Unit.Category, q.Unit.ID)
	if err != nil {
		return Quantity{}, err
	}
	to, err := t.Lookup(q.Unit.Category, toID)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: convert(q.Value, from, to), Unit: to}, nil
}

// Quantity resolves unitID in category and pairs it with value
func (t *Table) Quantity(value float64, unitID string, category Category) (Quantity, error) {
	def, err := t.Lookup(category, unitID)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: def}, nil
}

func convert(value float64, from, to UnitDefinition) float64 {
	if from.ID == to.ID {
		return value
	}
	return to.FromBase(from.ToBase(value))
}

// Convert converts value using the builtin table
func Convert(value float64, fromID, toID string, category Category) (float64, error) {
	return builtin.Convert(value, fromID, toID, category)
}

// UnitsOf lists the builtin units of category
func UnitsOf(category Category) []UnitDefinition {
	return builtin.UnitsOf(category)
}

// Lookup resolves unitID in the builtin table
func Lookup(category Category, unitID string) (UnitDefinition, error) {
	return builtin.Lookup(category, unitID)
}
