package units

// Memory is the kind for digital storage and transfer: bytes and
// bits, each available with the full metric and binary (IEC) prefix
// families, so "KiB", "Mb", and "GB" are all legal symbols.
var Memory = NewKind("memory", KindConfig{
	Units: []UnitDef{
		{Symbol: "B", Prefixes: All},
		{Symbol: "b", Prefixes: All},
	},
	Conversions: []ConversionDef{
		{Initial: "B", Final: "b", Multiplier: 8},
	},
})
