package units

// Temperature is the kind for thermodynamic temperature: Kelvin,
// Celsius, Fahrenheit, and Rankine, linked by their well-known affine
// relationships rather than a common multiplicative base unit.
var Temperature = NewKind("temperature", KindConfig{
	Units: []UnitDef{
		{Symbol: "K", Prefixes: 0},
		{Symbol: "C", Prefixes: 0},
		{Symbol: "F", Prefixes: 0},
		{Symbol: "Ra", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "C", Final: "K", Multiplier: 1, Offset: 273.15},
		{Initial: "F", Final: "C", Multiplier: 5.0 / 9.0, Offset: -160.0 / 9.0},
		{Initial: "Ra", Final: "K", Multiplier: 5.0 / 9.0, Offset: 0},
	},
}, WithDisplay(DisplayConfig{FormatUnit: temperatureSymbol}))

func temperatureSymbol(symbol string) string {
	switch symbol {
	case "C":
		return "°C"
	case "F":
		return "°F"
	case "Ra":
		return "°Ra"
	default:
		return symbol
	}
}
