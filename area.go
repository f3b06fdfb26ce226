package units

// Area is the kind for two-dimensional extent: the metric square metre
// (itself prefixable, so "km2" and "cm2" are legal), the imperial
// square units, the acre, and the hectare.
var Area = NewKind("area", KindConfig{
	Units: []UnitDef{
		{Symbol: "m2", Prefixes: Metric},
		{Symbol: "ft2", Prefixes: 0},
		{Symbol: "in2", Prefixes: 0},
		{Symbol: "acre", Prefixes: 0},
		{Symbol: "hectare", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "in2", Final: "m2", Multiplier: 0.0254 * 0.0254},
		{Initial: "ft2", Final: "in2", Multiplier: 144},
		{Initial: "acre", Final: "ft2", Multiplier: 43560},
		{Initial: "hectare", Final: "m2", Multiplier: 10000},
	},
})
