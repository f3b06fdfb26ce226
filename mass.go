package units

// Mass is the kind for weight/mass measurements: the metric gram plus
// the avoirdupois units and the metric tonne.
var Mass = NewKind("mass", KindConfig{
	Units: []UnitDef{
		{Symbol: "g", Prefixes: Metric},
		{Symbol: "lb", Prefixes: 0},
		{Symbol: "oz", Prefixes: 0},
		{Symbol: "st", Prefixes: 0},
		{Symbol: "tonne", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "lb", Final: "g", Multiplier: 453.59237},
		{Initial: "oz", Final: "lb", Multiplier: 0.0625},
		{Initial: "st", Final: "lb", Multiplier: 14},
		{Initial: "tonne", Final: "g", Multiplier: 1000000},
	},
})
