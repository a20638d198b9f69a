package units

// UnitDefinition describes one unit relative to its category's base unit.
type UnitDefinition struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Symbol   string   `yaml:"symbol"`
	Category Category `yaml:"category"`
	// Scale is the number of base units per unit step.
	Scale float64 `yaml:"scale"`
	// Offset is the unit's reading when the base quantity is zero.
	Offset float64 `yaml:"offset"`
}

// IsBase reports whether the definition is the identity map onto the base unit
func (d UnitDefinition) IsBase() bool {
	return d.Scale == 1 && d.Offset == 0
}

// IsAffine reports whether the unit has a shifted zero point
func (d UnitDefinition) IsAffine() bool {
	return d.Offset != 0
}

// ToBase maps a value in this unit onto the base unit
func (d UnitDefinition) ToBase(value float64) float64 {
	return (value - d.Offset) * d.Scale
}

// FromBase maps a base-unit value onto this unit
func (d UnitDefinition) FromBase(base float64) float64 {
	return base/d.Scale + d.Offset
}

// Quantity is a value together with its unit
type Quantity struct {
	Value float64
	Unit  UnitDefinition
}
