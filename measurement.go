package units

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Measurement is a value paired with a unit and a Kind that knows how
// to convert, compare, and format it. It is the facade everything in
// this package is built to support; callers construct one with New
// and rarely touch Converter or Kind directly.
type Measurement struct {
	kind  *Kind
	unit  string
	value ErrTracked
}

// New constructs a Measurement of the given kind, value, and unit. It
// fails if kind's Converter cannot be built, or if unit is not one of
// its legal symbols.
func New(kind *Kind, value float64, unit string) (Measurement, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Measurement{}, newValueError("measurement value must be finite, got %v", value)
	}
	conv, err := kind.converterOrErr()
	if err != nil {
		return Measurement{}, err
	}
	if _, err := conv.GetUnit(unit); err != nil {
		return Measurement{}, err
	}
	return Measurement{kind: kind, unit: unit, value: NewErrTracked(value)}, nil
}

// Kind returns the measurement's kind.
func (m Measurement) Kind() *Kind { return m.kind }

// Unit returns the measurement's current unit symbol.
func (m Measurement) Unit() string { return m.unit }

// Value returns the measurement's numeric value in its current unit.
func (m Measurement) Value() float64 { return m.value.Value }

// AbsErr returns the propagated absolute error of the measurement's
// numeric value.
func (m Measurement) AbsErr() float64 { return m.value.AbsErr }

// To converts m to the given unit.
func (m Measurement) To(unit string) (Measurement, error) {
	conv, err := m.kind.converterOrErr()
	if err != nil {
		return Measurement{}, err
	}
	c, err := conv.GetConversion(m.unit, unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{kind: m.kind, unit: unit, value: c.Apply(m.value.Value)}, nil
}

// valueIn returns m's value expressed in unit, without changing m.
func (m Measurement) valueIn(unit string) (ErrTracked, error) {
	if unit == m.unit {
		return m.value, nil
	}
	converted, err := m.To(unit)
	if err != nil {
		return ErrTracked{}, err
	}
	return converted.value, nil
}

func sameKind(a, b Measurement) error {
	if a.kind != b.kind {
		return newTypeError("measurements of different kinds (%s, %s) cannot be combined", a.kind.Name, b.kind.Name)
	}
	return nil
}

// Add2 returns a+b, expressed in a's unit.
func Add2(a, b Measurement) (Measurement, error) {
	if err := sameKind(a, b); err != nil {
		return Measurement{}, err
	}
	bv, err := b.valueIn(a.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{kind: a.kind, unit: a.unit, value: Add(a.value, bv)}, nil
}

// Sub2 returns a-b, expressed in a's unit.
func Sub2(a, b Measurement) (Measurement, error) {
	if err := sameKind(a, b); err != nil {
		return Measurement{}, err
	}
	bv, err := b.valueIn(a.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{kind: a.kind, unit: a.unit, value: Sub(a.value, bv)}, nil
}

// AddValue returns m with value added to its numeric value, in m's
// current unit.
func (m Measurement) AddValue(value float64) Measurement {
	return Measurement{kind: m.kind, unit: m.unit, value: Add(m.value, NewErrTracked(value))}
}

// SubValue returns m with value subtracted from its numeric value, in
// m's current unit.
func (m Measurement) SubValue(value float64) Measurement {
	return Measurement{kind: m.kind, unit: m.unit, value: Sub(m.value, NewErrTracked(value))}
}

// Neg returns -m.
func (m Measurement) Neg() Measurement {
	return Measurement{kind: m.kind, unit: m.unit, value: Neg(m.value)}
}

// Abs returns |m|.
func (m Measurement) Abs() Measurement {
	v := m.value
	v.Value = math.Abs(v.Value)
	return Measurement{kind: m.kind, unit: m.unit, value: v}
}

// MulScalar returns m scaled by factor, in m's current unit.
func (m Measurement) MulScalar(factor float64) Measurement {
	return Measurement{kind: m.kind, unit: m.unit, value: Mul(m.value, NewErrTracked(factor))}
}

// DivScalar returns m divided by factor, in m's current unit.
func (m Measurement) DivScalar(factor float64) (Measurement, error) {
	v, err := Div(m.value, NewErrTracked(factor))
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{kind: m.kind, unit: m.unit, value: v}, nil
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b, after converting b into a's unit.
func Compare(a, b Measurement) (int, error) {
	if err := sameKind(a, b); err != nil {
		return 0, err
	}
	bv, err := b.valueIn(a.unit)
	if err != nil {
		return 0, err
	}
	switch {
	case a.value.Value < bv.Value:
		return -1, nil
	case a.value.Value > bv.Value:
		return 1, nil
	default:
		return 0, nil
	}
}

// ApproxEqual reports whether a and b are equal within a's kind's
// configured tolerance (relative, 1e-9, when unconfigured).
func ApproxEqual(a, b Measurement) (bool, error) {
	return ApproxEqualTol(a, b, a.kind.tolerance())
}

// ApproxEqualTol reports whether a and b are equal within an explicit
// tolerance. It never returns an error for a kind mismatch — per
// spec.md §4.5/§7, approxEqual is a boolean predicate and reports a
// type mismatch as simply not equal, not a thrown error. A kind's
// ApproxEqualConfig may redirect the comparison to a canonical unit
// (CompareUnit) and/or switch from a relative to an absolute
// tolerance (Absolute).
func ApproxEqualTol(a, b Measurement, tolerance float64) (bool, error) {
	if err := sameKind(a, b); err != nil {
		return false, nil
	}
	compareUnit := a.unit
	if cu, ok := a.kind.compareUnit(); ok {
		compareUnit = cu
	}
	av, err := a.valueIn(compareUnit)
	if err != nil {
		return false, err
	}
	bv, err := b.valueIn(compareUnit)
	if err != nil {
		return false, err
	}
	if av.Value == bv.Value {
		return true, nil
	}
	if a.kind.absoluteTolerance() {
		return math.Abs(av.Value-bv.Value) <= tolerance, nil
	}
	scale := math.Max(math.Abs(av.Value), math.Abs(bv.Value))
	if scale == 0 {
		return true, nil
	}
	return math.Abs(av.Value-bv.Value)/scale <= tolerance, nil
}

// displaySymbol renders m's unit for output, honoring the kind's
// DisplayConfig when present.
func (m Measurement) displaySymbol() string {
	return m.kind.formatUnit(m.unit)
}

// ToString renders m using the %g format specifier with no explicit
// precision, and the kind's display form of its unit. A value of
// negative zero (as produced by, for example, Neg of a zero
// measurement) is normalized to positive zero per spec.md §4.5, since
// strconv.FormatFloat would otherwise print a spurious "-0".
func (m Measurement) ToString() string {
	v := m
	if v.value.Value == 0 {
		v.value.Value = 0
	}
	s, _ := v.Format('g', -1)
	return s
}

// String implements fmt.Stringer via ToString.
func (m Measurement) String() string { return m.ToString() }

// Format renders m's numeric value using one of the verbs e, E, f, F,
// g, or G (matching strconv.FormatFloat), followed by a space and the
// kind's display form of m's unit. A negative precision means "use
// the shortest representation that round-trips", matching
// strconv.FormatFloat's convention.
func (m Measurement) Format(verb byte, precision int) (string, error) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		return "", newValueError("unsupported format verb %q", string(verb))
	}
	numeric := strconv.FormatFloat(m.value.Value, verb, precision, 64)
	return numeric + " " + m.displaySymbol(), nil
}

// FromParts builds a Measurement from a largest-to-smallest breakdown
// matching kind's PartsConfig (for example hours, minutes, seconds),
// expressed in the kind's finest configured part unit. A negative
// first part makes the whole sum negative; the remaining parts must be
// non-negative.
func FromParts(kind *Kind, parts ...float64) (Measurement, error) {
	units, ok := kind.partUnits()
	if !ok {
		return Measurement{}, newConfigurationError("kind %q has no parts configuration", kind.Name)
	}
	if len(parts) == 0 || len(parts) > len(units) {
		return Measurement{}, newValueError("kind %q accepts 1 to %d parts, got %d", kind.Name, len(units), len(parts))
	}

	finest := units[len(units)-1]
	total, err := New(kind, 0, finest)
	if err != nil {
		return Measurement{}, err
	}
	negative := math.Signbit(parts[0])
	for i, p := range parts {
		unit := units[i]
		if i == 0 {
			p = math.Abs(p)
		} else if p < 0 {
			return Measurement{}, newValueError("part %d (%s) must be non-negative, got %v", i, unit, p)
		}
		component, err := New(kind, p, unit)
		if err != nil {
			return Measurement{}, err
		}
		inFinest, err := component.To(finest)
		if err != nil {
			return Measurement{}, err
		}
		total = Measurement{kind: kind, unit: finest, value: Add(total.value, inFinest.value)}
	}
	if negative {
		total = total.Neg()
	}
	return total, nil
}

func indexOf(xs []string, x string) int {
	for i, s := range xs {
		if s == x {
			return i
		}
	}
	return -1
}

// truncatedPartUnits returns k's configured part units, largest-to-
// smallest, cut off after smallest (inclusive). It lets a caller
// decompose down to, say, minutes without generating a spurious
// always-zero seconds part.
func truncatedPartUnits(k *Kind, smallest string) ([]string, error) {
	units, ok := k.partUnits()
	if !ok {
		return nil, newConfigurationError("kind %q has no parts configuration", k.Name)
	}
	i := indexOf(units, smallest)
	if i < 0 {
		return nil, newValueError("kind %q has no part unit %q", k.Name, smallest)
	}
	return units[:i+1], nil
}

// ToParts decomposes m into m.kind's configured part units from
// largest down to smallest, with every part but the last truncated to
// an integer and the last carrying the remainder, rounded to precision
// digits past the decimal point. A rounded finest-unit value that
// reaches one whole unit of the next-coarser part is carried up
// through the coarser parts (so 29 degrees, 59 arcminutes, 59.9999 arcseconds rounds to
// 30 degrees, 0 arcminutes, 0 arcseconds rather than spuriously
// reporting 60 of the finest unit).
//
// m's sign is reported separately as +1 or -1 (zero measurements
// report +1); the parts themselves always decompose m's magnitude, so
// a negative measurement never produces a negative intermediate part.
func ToParts(m Measurement, smallest string, precision int) (sign int, parts []float64, err error) {
	units, err := truncatedPartUnits(m.kind, smallest)
	if err != nil {
		return 0, nil, err
	}

	sign = 1
	if m.value.Value < 0 {
		sign = -1
	}
	magnitude := m.Abs()

	remaining, err := magnitude.To(units[0])
	if err != nil {
		return 0, nil, err
	}
	parts = make([]float64, len(units))
	for i := 0; i < len(units)-1; i++ {
		whole := math.Trunc(remaining.Value())
		parts[i] = whole
		fracInThisUnit, err := New(m.kind, remaining.Value()-whole, units[i])
		if err != nil {
			return 0, nil, err
		}
		remaining, err = fracInThisUnit.To(units[i+1])
		if err != nil {
			return 0, nil, err
		}
	}
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(remaining.Value()*scale) / scale
	parts[len(units)-1] = rounded

	conv, err := m.kind.converterOrErr()
	if err != nil {
		return 0, nil, err
	}
	for i := len(units) - 1; i > 0; i-- {
		ratio, err := conv.Convert(1, units[i-1], units[i])
		if err != nil {
			return 0, nil, err
		}
		if parts[i] < ratio {
			break
		}
		parts[i] -= ratio
		parts[i-1]++
	}
	return sign, parts, nil
}

// FormatParts renders m's parts decomposition as a space-separated
// string, one token per configured part unit from largest down to
// smallest, using each unit's display form (for example
// "45° 30′ 15.1″"). By default (showZeros=false) zero-valued parts
// are omitted entirely; with showZeros=true, any zero part at or
// after the first non-zero part is kept (the DMS convention, where
// "30° 0′ 0″" is clearer than "30°"). A negative measurement's
// rendering is prefixed with a single leading "-"; the individual
// part tokens are never themselves signed.
func FormatParts(m Measurement, smallest string, precision int, showZeros bool) (string, error) {
	sign, parts, err := ToParts(m, smallest, precision)
	if err != nil {
		return "", err
	}
	units, _ := truncatedPartUnits(m.kind, smallest)

	var tokens []string
	seenNonZero := false
	for i, p := range parts {
		if p != 0 {
			seenNonZero = true
		}
		if p == 0 && !(showZeros && seenNonZero) {
			continue
		}
		numeric := strconv.FormatFloat(p, 'f', -1, 64)
		if i == len(parts)-1 && precision >= 0 {
			numeric = strconv.FormatFloat(p, 'f', precision, 64)
		}
		tokens = append(tokens, numeric+m.kind.formatUnit(units[i]))
	}
	if len(tokens) == 0 {
		last := len(parts) - 1
		numeric := strconv.FormatFloat(parts[last], 'f', -1, 64)
		if precision >= 0 {
			numeric = strconv.FormatFloat(parts[last], 'f', precision, 64)
		}
		tokens = []string{numeric + m.kind.formatUnit(units[last])}
	}
	out := strings.Join(tokens, " ")
	if sign < 0 {
		out = "-" + out
	}
	return out, nil
}

// Parse parses a string like "1.5e3 ms" into a Measurement of the
// given kind: a signed decimal, optional whitespace, then one of the
// kind's legal unit symbols. Longer symbols are tried before their
// prefixes of shorter ones (so "min" is not mistaken for "mi" plus a
// trailing "n") by sorting the alternation longest-first.
func Parse(kind *Kind, s string) (Measurement, error) {
	conv, err := kind.converterOrErr()
	if err != nil {
		return Measurement{}, err
	}
	pattern, err := parsePatternFor(conv)
	if err != nil {
		return Measurement{}, err
	}
	m := pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Measurement{}, newValueError("%q is not a valid measurement", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Measurement{}, newValueError("%q is not a valid measurement", s)
	}
	return New(kind, value, m[2])
}

// TryParse parses s as Parse does, returning ok=false instead of an
// error on failure.
func TryParse(kind *Kind, s string) (m Measurement, ok bool) {
	m, err := Parse(kind, s)
	return m, err == nil
}

func parsePatternFor(conv *Converter) (*regexp.Regexp, error) {
	symbols := conv.GetUnitSymbols()
	sort.Slice(symbols, func(i, j int) bool { return len(symbols[i]) > len(symbols[j]) })
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.Compile(`^([+-]?[0-9]*\.?[0-9]+(?:[eE][+-]?[0-9]+)?)\s*(` + strings.Join(quoted, "|") + `)$`)
}

// MarshalJSON renders m as its canonical string form, "<value> <unit>".
// There is deliberately no generic UnmarshalJSON: a bare JSON string
// carries no Kind to parse against, so round-tripping requires a
// kind-specific helper built on top of New.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.ToString())), nil
}
