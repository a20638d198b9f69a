package units

// builtinDefinitions lists the units shipped with unitcal. The first unit of
// each category is its base.
var builtinDefinitions = []UnitDefinition{
	// length, base metre
	{ID: "m", Name: "Meter", Symbol: "m", Category: Length, Scale: 1},
	{ID: "km", Name: "Kilometer", Symbol: "km", Category: Length, Scale: 1000},
	{ID: "cm", Name: "Zentimeter", Symbol: "cm", Category: Length, Scale: 0.01},
	{ID: "mm", Name: "Millimeter", Symbol: "mm", Category: Length, Scale: 0.001},
	{ID: "mi", Name: "Meile", Symbol: "mi", Category: Length, Scale: 1609.344},
	{ID: "yd", Name: "Yard", Symbol: "yd", Category: Length, Scale: 0.9144},
	{ID: "ft", Name: "Fuß", Symbol: "ft", Category: Length, Scale: 0.3048},
	{ID: "in", Name: "Zoll", Symbol: "in", Category: Length, Scale: 0.0254},
	{ID: "nmi", Name: "Seemeile", Symbol: "sm", Category: Length, Scale: 1852},

	// mass, base kilogram
	{ID: "kg", Name: "Kilogramm", Symbol: "kg", Category: Mass, Scale: 1},
	{ID: "g", Name: "Gramm", Symbol: "g", Category: Mass, Scale: 0.001},
	{ID: "mg", Name: "Milligramm", Symbol: "mg", Category: Mass, Scale: 1e-6},
	{ID: "t", Name: "Tonne", Symbol: "t", Category: Mass, Scale: 1000},
	{ID: "lb", Name: "Pfund (avoirdupois)", Symbol: "lb", Category: Mass, Scale: 0.45359237},
	{ID: "oz", Name: "Unze", Symbol: "oz", Category: Mass, Scale: 0.028349523125},
	{ID: "st", Name: "Stone", Symbol: "st", Category: Mass, Scale: 6.35029318},

	// temperature, base degree Celsius
	{ID: "celsius", Name: "Grad Celsius", Symbol: "°C", Category: Temperature, Scale: 1},
	{ID: "fahrenheit", Name: "Grad Fahrenheit", Symbol: "°F", Category: Temperature, Scale: 5.0 / 9.0, Offset: 32},
	{ID: "kelvin", Name: "Kelvin", Symbol: "K", Category: Temperature, Scale: 1, Offset: 273.15},

	// volume, base litre
	{ID: "l", Name: "Liter", Symbol: "l", Category: Volume, Scale: 1},
	{ID: "ml", Name: "Milliliter", Symbol: "ml", Category: Volume, Scale: 0.001},
	{ID: "m3", Name: "Kubikmeter", Symbol: "m³", Category: Volume, Scale: 1000},
	{ID: "gal", Name: "US-Gallone", Symbol: "gal", Category: Volume, Scale: 3.785411784},
	{ID: "qt", Name: "US-Quart", Symbol: "qt", Category: Volume, Scale: 0.946352946},
	{ID: "pt", Name: "US-Pint", Symbol: "pt", Category: Volume, Scale: 0.473176473},
	{ID: "cup", Name: "US-Cup", Symbol: "cup", Category: Volume, Scale: 0.2365882365},
	{ID: "fl_oz", Name: "US-Flüssigunze", Symbol: "fl oz", Category: Volume, Scale: 0.0295735295625},

	// area, base square metre
	{ID: "m2", Name: "Quadratmeter", Symbol: "m²", Category: Area, Scale: 1},
	{ID: "km2", Name: "Quadratkilometer", Symbol: "km²", Category: Area, Scale: 1e6},
	{ID: "cm2", Name: "Quadratzentimeter", Symbol: "cm²", Category: Area, Scale: 1e-4},
	{ID: "ha", Name: "Hektar", Symbol: "ha", Category: Area, Scale: 10000},
	{ID: "acre", Name: "Acre", Symbol: "ac", Category: Area, Scale: 4046.8564224},
	{ID: "ft2", Name: "Quadratfuß", Symbol: "ft²", Category: Area, Scale: 0.09290304},
	{ID: "mi2", Name: "Quadratmeile", Symbol: "mi²", Category: Area, Scale: 2589988.110336},

	// speed, base metre per second
	{ID: "m/s", Name: "Meter pro Sekunde", Symbol: "m/s", Category: Speed, Scale: 1},
	{ID: "km/h", Name: "Kilometer pro Stunde", Symbol: "km/h", Category: Speed, Scale: 1 / 3.6},
	{ID: "mph", Name: "Meilen pro Stunde", Symbol: "mph", Category: Speed, Scale: 0.44704},
	{ID: "kn", Name: "Knoten", Symbol: "kn", Category: Speed, Scale: 1852.0 / 3600.0},
	{ID: "ft/s", Name: "Fuß pro Sekunde", Symbol: "ft/s", Category: Speed, Scale: 0.3048},
}

var builtin = MustTable(builtinDefinitions)

// Builtin returns the table of units shipped with unitcal
func Builtin() *Table {
	return builtin
}
