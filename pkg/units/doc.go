// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     units
// Description: Unit conversion table and converter
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package units converts quantities between units of one category.
//
// Every unit is an affine map onto its category's base unit:
//
//	base  = (value - Offset) * Scale
//	value = base / Scale + Offset
//
// Offset is the unit's reading at the base zero point and is non-zero only
// for temperature units (Fahrenheit 32, Kelvin 273.15). Scale is the number
// of base units per unit step (km 1000, Fahrenheit 5/9). New units, including
// temperature units, are table data only:
//
//	table, err := units.Builtin().Extend(units.UnitDefinition{
//		ID: "rankine", Name: "Rankine", Symbol: "°R",
//		Category: units.Temperature, Scale: 5.0 / 9.0, Offset: 491.67,
//	})
//
// Tables are immutable after construction and safe for concurrent use.
package units
