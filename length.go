package units

// Length is the kind for distance measurements: the metric metre plus
// the imperial units in common use, all discoverable from one another
// through the metre.
var Length = NewKind("length", KindConfig{
	Units: []UnitDef{
		{Symbol: "m", Prefixes: Metric},
		{Symbol: "in", Prefixes: 0},
		{Symbol: "ft", Prefixes: 0},
		{Symbol: "yd", Prefixes: 0},
		{Symbol: "mi", Prefixes: 0},
		{Symbol: "nmi", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "in", Final: "m", Multiplier: 0.0254},
		{Initial: "ft", Final: "in", Multiplier: 12},
		{Initial: "yd", Final: "ft", Multiplier: 3},
		{Initial: "mi", Final: "yd", Multiplier: 1760},
		{Initial: "nmi", Final: "m", Multiplier: 1852},
	},
})
