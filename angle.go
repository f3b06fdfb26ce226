package units

import "math"

// Angle is the kind for plane angles: radians, degrees, gradians,
// arcminutes, arcseconds, and whole turns, plus a degrees/arcminutes/
// arcseconds parts breakdown and trigonometric adapters.
var Angle = NewKind("angle", KindConfig{
	Units: []UnitDef{
		{Symbol: "rad", Prefixes: 0},
		{Symbol: "deg", Prefixes: 0},
		{Symbol: "grad", Prefixes: 0},
		{Symbol: "arcmin", Prefixes: 0},
		{Symbol: "arcsec", Prefixes: 0},
		{Symbol: "turn", Prefixes: 0},
	},
	Conversions: []ConversionDef{
		{Initial: "deg", Final: "rad", Multiplier: math.Pi / 180},
		{Initial: "grad", Final: "deg", Multiplier: 0.9},
		{Initial: "arcmin", Final: "deg", Multiplier: 1.0 / 60},
		{Initial: "arcsec", Final: "arcmin", Multiplier: 1.0 / 60},
		{Initial: "turn", Final: "rad", Multiplier: 2 * math.Pi},
	},
}, WithParts(PartsConfig{PartUnits: []string{"deg", "arcmin", "arcsec"}}),
	WithDisplay(DisplayConfig{FormatUnit: angleSymbol}),
	WithApproxEqual(ApproxEqualConfig{Tolerance: 1e-9, Absolute: true, CompareUnit: "rad"}))

func angleSymbol(symbol string) string {
	switch symbol {
	case "deg":
		return "°"
	case "arcmin":
		return "′"
	case "arcsec":
		return "″"
	default:
		return symbol
	}
}

// Sin returns the sine of m, an Angle measurement.
func Sin(m Measurement) (float64, error) {
	radians, err := m.To("rad")
	if err != nil {
		return 0, err
	}
	return math.Sin(radians.Value()), nil
}

// Cos returns the cosine of m, an Angle measurement.
func Cos(m Measurement) (float64, error) {
	radians, err := m.To("rad")
	if err != nil {
		return 0, err
	}
	return math.Cos(radians.Value()), nil
}

// Tan returns the tangent of m, an Angle measurement.
func Tan(m Measurement) (float64, error) {
	radians, err := m.To("rad")
	if err != nil {
		return 0, err
	}
	return math.Tan(radians.Value()), nil
}

// Asin returns the angle whose sine is ratio, as an Angle measurement
// in radians.
func Asin(ratio float64) (Measurement, error) {
	return New(Angle, math.Asin(ratio), "rad")
}

// Acos returns the angle whose cosine is ratio, as an Angle
// measurement in radians.
func Acos(ratio float64) (Measurement, error) {
	return New(Angle, math.Acos(ratio), "rad")
}

// Atan returns the angle whose tangent is ratio, as an Angle
// measurement in radians.
func Atan(ratio float64) (Measurement, error) {
	return New(Angle, math.Atan(ratio), "rad")
}

// Wrap normalizes m into the half-open interval [0, one full turn) in
// m's own unit, for example wrapping 370 degrees to 10 degrees or -10
// degrees to 350 degrees.
func Wrap(m Measurement) (Measurement, error) {
	turnInUnit, err := New(Angle, 1, "turn")
	if err != nil {
		return Measurement{}, err
	}
	full, err := turnInUnit.To(m.Unit())
	if err != nil {
		return Measurement{}, err
	}
	wrapped := math.Mod(m.Value(), full.Value())
	if wrapped < 0 {
		wrapped += full.Value()
	}
	return New(Angle, wrapped, m.Unit())
}
