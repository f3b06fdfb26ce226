package units

import "sync"

// KindConfig declares the unit and conversion tables for one
// measurement kind (length, mass, time, ...). It is the only
// mandatory configuration surface; a kind with nothing else set
// behaves like a bare numeric-with-units type.
type KindConfig struct {
	Units       []UnitDef
	Conversions []ConversionDef
}

// PartsConfig optionally declares the ordered, largest-to-smallest
// unit breakdown a kind supports for FromParts/ToParts/FormatParts
// (for example degrees/arcminutes/arcseconds, or days/hours/minutes/
// seconds). A kind with no PartsConfig does not support parts.
type PartsConfig struct {
	PartUnits []string
}

// DisplayConfig optionally overrides how a unit symbol is rendered in
// Measurement.ToString, for kinds whose conventional display differs
// from the canonical symbol (for example Celsius as "°C").
type DisplayConfig struct {
	FormatUnit func(symbol string) string
}

// ApproxEqualConfig optionally overrides how ApproxEqual compares two
// measurements of this kind. By default the comparison is relative,
// on the operands' own units. A kind may instead set CompareUnit to
// convert both operands to a canonical unit first (Angle uses this to
// compare in radians regardless of the operands' units), and set
// Absolute to compare the raw difference against Tolerance rather
// than scaling it by the operands' magnitude.
type ApproxEqualConfig struct {
	Tolerance   float64
	Absolute    bool
	CompareUnit string
}

// Kind is an immutable descriptor for one measurement kind: its name
// and the three optional configuration blocks above. Its Converter is
// built lazily, once, the first time it is needed, and then reused for
// the lifetime of the process.
//
// Kind deliberately has no exported fields beyond Name: the
// configuration passed to NewKind is captured and never changed. A
// Kind holds a sync.Once, so it is used through the *Kind that NewKind
// returns and compared by pointer, never copied.
type Kind struct {
	Name string

	config  KindConfig
	parts   *PartsConfig
	display *DisplayConfig
	approx  *ApproxEqualConfig

	once      sync.Once
	converter *Converter
	buildErr  error
}

// NewKind builds a Kind descriptor. It does not build the Converter;
// that happens lazily on first use, so declaring many Kinds is cheap
// even if most are never exercised in a given process.
func NewKind(name string, config KindConfig, opts ...func(*Kind)) *Kind {
	k := &Kind{Name: name, config: config}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// WithParts attaches a PartsConfig to a Kind under construction.
func WithParts(p PartsConfig) func(*Kind) {
	return func(k *Kind) { k.parts = &p }
}

// WithDisplay attaches a DisplayConfig to a Kind under construction.
func WithDisplay(d DisplayConfig) func(*Kind) {
	return func(k *Kind) { k.display = &d }
}

// WithApproxEqual attaches an ApproxEqualConfig to a Kind under
// construction.
func WithApproxEqual(a ApproxEqualConfig) func(*Kind) {
	return func(k *Kind) { k.approx = &a }
}

// converterOrErr builds (once) and returns this Kind's Converter.
func (k *Kind) converterOrErr() (*Converter, error) {
	k.once.Do(func() {
		k.converter, k.buildErr = NewConverter(k.config.Units, k.config.Conversions)
	})
	return k.converter, k.buildErr
}

// defaultApproxTolerance is used by ApproxEqual when a
// Kind carries no ApproxEqualConfig.
const defaultApproxTolerance = 1e-9

func (k *Kind) tolerance() float64 {
	if k.approx != nil {
		return k.approx.Tolerance
	}
	return defaultApproxTolerance
}

func (k *Kind) absoluteTolerance() bool {
	return k.approx != nil && k.approx.Absolute
}

func (k *Kind) compareUnit() (string, bool) {
	if k.approx != nil && k.approx.CompareUnit != "" {
		return k.approx.CompareUnit, true
	}
	return "", false
}

func (k *Kind) partUnits() ([]string, bool) {
	if k.parts == nil {
		return nil, false
	}
	return k.parts.PartUnits, true
}

func (k *Kind) formatUnit(symbol string) string {
	if k.display != nil && k.display.FormatUnit != nil {
		return k.display.FormatUnit(symbol)
	}
	u, err := k.converter.GetUnit(symbol)
	if err != nil {
		return symbol
	}
	return u.Display()
}
