package units

// Volume is the kind for three-dimensional capacity: the metric cubic
// metre and litre (both prefixable), the imperial cubic foot, and the
// US customary gallon/quart/pint.
var Volume = NewKind("volume", KindConfig{
	Units: []UnitDef{
		{Symbol: "m3", Prefixes: Metric},
		{Symbol: "l", Prefixes: Metric},
		{Symbol: "ft3", Prefixes: 0},
		{Symbol: "gal", Prefixes: 0},
		{Symbol: "qt", Prefixes: 0},
		{Symbol: "pt", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "l", Final: "m3", Multiplier: 0.001},
		{Initial: "ft3", Final: "m3", Multiplier: 0.0283168466},
		{Initial: "gal", Final: "l", Multiplier: 3.785411784},
		{Initial: "qt", Final: "gal", Multiplier: 0.25},
		{Initial: "pt", Final: "qt", Multiplier: 0.5},
	},
})
