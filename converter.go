package units

import (
	"sort"
	"sync"
)

// UnitDef declares one derived (unprefixed) unit for a kind, and the
// prefix families it accepts. Order matters: it fixes the iteration
// order generateNextConversion uses, which in turn fixes tie-breaking
// among equally-good candidate conversions.
type UnitDef struct {
	Symbol   string
	Prefixes PrefixSet
}

// ConversionDef declares one directed affine edge between two unit
// symbols (derived or prefixed). Offset defaults to zero.
type ConversionDef struct {
	Initial    string
	Final      string
	Multiplier float64
	Offset     float64
}

// Converter is a per-kind registry: it materializes the legal unit
// symbols from a sparse set of unit declarations, and discovers
// conversions between any two of them by combining the declared
// conversions through the affine algebra in conversion.go.
//
// A Converter is safe for concurrent use: every exported method takes
// a single mutex for its duration, matching the synchronous,
// single-instance model described for this engine.
type Converter struct {
	mu sync.Mutex

	unitDefs       []UnitDef
	conversionDefs []ConversionDef

	units       map[string]Unit
	conversions map[string]map[string]Conversion
}

// NewConverter validates unitDefs and conversionDefs and builds a
// ready-to-use Converter.
func NewConverter(unitDefs []UnitDef, conversionDefs []ConversionDef) (*Converter, error) {
	c := &Converter{}
	if err := c.rebuild(unitDefs, conversionDefs); err != nil {
		return nil, err
	}
	return c, nil
}

// rebuild validates the proposed definitions and, only on success,
// replaces the Converter's state. A failed rebuild leaves the
// Converter exactly as it was.
func (c *Converter) rebuild(unitDefs []UnitDef, conversionDefs []ConversionDef) error {
	if len(unitDefs) == 0 {
		return newConfigurationError("unit table must declare at least one unit")
	}

	units := make(map[string]Unit)
	for _, ud := range unitDefs {
		base, exponent, err := parseDerivedSymbol(ud.Symbol)
		if err != nil {
			return newConfigurationError("unit %q: %v", ud.Symbol, err)
		}
		if ud.Prefixes&^All != 0 {
			return newConfigurationError("unit %q: prefix flags %d outside 0..%d", ud.Symbol, ud.Prefixes, All)
		}
		units[ud.Symbol] = Unit{Base: base, Exponent: exponent, PrefixMultiplier: 1}
		for prefix, factor := range prefixesForSet(ud.Prefixes) {
			units[prefix+ud.Symbol] = Unit{Prefix: prefix, Base: base, Exponent: exponent, PrefixMultiplier: factor}
		}
	}

	conversions := make(map[string]map[string]Conversion)
	addEdge := func(initial, final string, conv Conversion) {
		inner, ok := conversions[initial]
		if !ok {
			inner = make(map[string]Conversion)
			conversions[initial] = inner
		}
		inner[final] = conv
	}
	getEdge := func(initial, final string) (Conversion, bool) {
		inner, ok := conversions[initial]
		if !ok {
			return Conversion{}, false
		}
		conv, ok := inner[final]
		return conv, ok
	}

	for _, cd := range conversionDefs {
		initUnit, ok := units[cd.Initial]
		if !ok {
			return newConfigurationError("conversion %s->%s: %q is not a declared unit", cd.Initial, cd.Final, cd.Initial)
		}
		finUnit, ok := units[cd.Final]
		if !ok {
			return newConfigurationError("conversion %s->%s: %q is not a declared unit", cd.Initial, cd.Final, cd.Final)
		}
		conv, err := newConversion(cd.Initial, cd.Final, cd.Multiplier, cd.Offset)
		if err != nil {
			return err
		}
		addEdge(cd.Initial, cd.Final, conv)

		di, df := initUnit.Derived(), finUnit.Derived()
		if (initUnit.Prefix != "" || finUnit.Prefix != "") && di != df {
			if _, exists := getEdge(di, df); !exists {
				derivedConv, err := alterConversionPrefix(conv, initUnit, finUnit, units[di], units[df])
				if err != nil {
					return err
				}
				addEdge(di, df, derivedConv)
			}
		}
	}

	c.unitDefs = unitDefs
	c.conversionDefs = conversionDefs
	c.units = units
	c.conversions = conversions
	return nil
}

// alterConversionPrefix recomputes conv (declared between oldInit and
// oldFin) for a pair of units that share the same bases and
// exponents but carry different prefixes:
//
//	m' = m * (pf_c * pi_n) / (pf_n * pi_c)
//	k' = k * (pf_c / pf_n)
//
// where pi/pf are the initial/final prefix multipliers, _c the
// current (declared) ones and _n the new (target) ones. Prefix
// removal is this operation with empty-prefix targets.
func alterConversionPrefix(conv Conversion, oldInit, oldFin, newInit, newFin Unit) (Conversion, error) {
	piC := NewErrTracked(oldInit.Multiplier())
	pfC := NewErrTracked(oldFin.Multiplier())
	piN := NewErrTracked(newInit.Multiplier())
	pfN := NewErrTracked(newFin.Multiplier())

	numerator := Mul(pfC, piN)
	denominator := Mul(pfN, piC)
	ratio, err := Div(numerator, denominator)
	if err != nil {
		return Conversion{}, err
	}
	m := Mul(conv.Multiplier, ratio)

	kRatio, err := Div(pfC, pfN)
	if err != nil {
		return Conversion{}, err
	}
	k := Mul(conv.Offset, kRatio)

	return Conversion{
		InitialUnit: newInit.Prefixed(),
		FinalUnit:   newFin.Prefixed(),
		Multiplier:  m,
		Offset:      k,
	}, nil
}

// getConversionLocked is the unlocked, internal lookup used both by
// getConversion's cache check and by generateNextConversion's search;
// it never triggers a search itself.
func (c *Converter) getConversionLocked(initial, final string) (Conversion, bool) {
	inner, ok := c.conversions[initial]
	if !ok {
		return Conversion{}, false
	}
	conv, ok := inner[final]
	return conv, ok
}

func (c *Converter) setConversionLocked(initial, final string, conv Conversion) {
	inner, ok := c.conversions[initial]
	if !ok {
		inner = make(map[string]Conversion)
		c.conversions[initial] = inner
	}
	inner[final] = conv
}

// generateNextConversion runs a single best-first pass over the
// sub-graph restricted to derived (unprefixed) symbols, installing
// the single globally-best new edge it finds. It returns true when it
// made progress and false when the pass produced no candidate at all.
func (c *Converter) generateNextConversion() bool {
	derived := make([]string, len(c.unitDefs))
	for i, ud := range c.unitDefs {
		derived[i] = ud.Symbol
	}

	var (
		found        bool
		bestErr      float64
		bestI, bestF string
		best         Conversion
	)
	consider := func(cand Conversion, err error, i, f string) {
		if err != nil {
			return
		}
		total := cand.TotalAbsErr()
		if !found || total < bestErr {
			found, bestErr, bestI, bestF, best = true, total, i, f, cand
		}
	}

	for _, i := range derived {
		for _, f := range derived {
			if i == f {
				continue
			}
			if _, exists := c.getConversionLocked(i, f); exists {
				continue
			}

			if inv, ok := c.getConversionLocked(f, i); ok {
				cand, err := invertConversion(inv)
				consider(cand, err, i, f)
			}

			for _, pivot := range derived {
				if pivot == i || pivot == f {
					continue
				}
				ic, icOK := c.getConversionLocked(i, pivot)
				ci, ciOK := c.getConversionLocked(pivot, i)
				fc, fcOK := c.getConversionLocked(f, pivot)
				cf, cfOK := c.getConversionLocked(pivot, f)

				if icOK && cfOK {
					consider(sequentialConversion(ic, cf), nil, i, f)
				}
				if icOK && fcOK {
					cand, err := convergentConversion(ic, fc)
					consider(cand, err, i, f)
				}
				if ciOK && cfOK {
					cand, err := divergentConversion(ci, cf)
					consider(cand, err, i, f)
				}
				if ciOK && fcOK {
					cand, err := oppositeConversion(ci, fc)
					consider(cand, err, i, f)
				}
			}
		}
	}

	if !found {
		return false
	}
	c.setConversionLocked(bestI, bestF, best)
	return true
}

// GetUnit returns the materialized Unit for symbol.
func (c *Converter) GetUnit(symbol string) (Unit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.units[symbol]
	if !ok {
		return Unit{}, newValueError("unknown unit %q", symbol)
	}
	return u, nil
}

// GetUnitSymbols returns every legal unit symbol for this kind, in
// ascending lexical order.
func (c *Converter) GetUnitSymbols() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.units))
	for s := range c.units {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// GetConversion returns the Conversion from i to f, generating it by
// best-first search if it has not been discovered yet.
func (c *Converter) GetConversion(i, f string) (Conversion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getConversion(i, f)
}

func (c *Converter) getConversion(i, f string) (Conversion, error) {
	initUnit, ok := c.units[i]
	if !ok {
		return Conversion{}, newValueError("unknown unit %q", i)
	}
	finUnit, ok := c.units[f]
	if !ok {
		return Conversion{}, newValueError("unknown unit %q", f)
	}

	if i == f {
		return identityConversion(i), nil
	}
	if conv, ok := c.getConversionLocked(i, f); ok {
		return conv, nil
	}

	di, df := initUnit.Derived(), finUnit.Derived()

	var derivedConv Conversion
	if di == df {
		derivedConv = identityConversion(di)
	} else {
		conv, ok := c.getConversionLocked(di, df)
		for !ok {
			if !c.generateNextConversion() {
				return Conversion{}, &NoPathError{From: i, To: f}
			}
			conv, ok = c.getConversionLocked(di, df)
		}
		derivedConv = conv
	}

	if initUnit.Prefix == "" && finUnit.Prefix == "" {
		return derivedConv, nil
	}

	specialized, err := alterConversionPrefix(derivedConv, c.units[di], c.units[df], initUnit, finUnit)
	if err != nil {
		return Conversion{}, err
	}
	specialized.InitialUnit, specialized.FinalUnit = i, f
	c.setConversionLocked(i, f, specialized)
	return specialized, nil
}

// Convert converts value from unit i to unit f.
func (c *Converter) Convert(value float64, i, f string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	conv, err := c.getConversion(i, f)
	if err != nil {
		return 0, err
	}
	return conv.Apply(value).Value, nil
}

// AddUnit declares a new unit, or replaces the prefix flags of an
// existing declaration with the same symbol, then rebuilds the
// Converter from the updated definitions.
func (c *Converter) AddUnit(symbol string, prefixes PrefixSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]UnitDef, len(c.unitDefs))
	copy(next, c.unitDefs)
	replaced := false
	for i, ud := range next {
		if ud.Symbol == symbol {
			next[i].Prefixes = prefixes
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, UnitDef{Symbol: symbol, Prefixes: prefixes})
	}
	return c.rebuild(next, c.conversionDefs)
}

// RemoveUnit removes a declared unit, then rebuilds the Converter.
// Rebuilding fails with a configuration error if a remaining
// conversion still references the removed unit.
func (c *Converter) RemoveUnit(symbol string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]UnitDef, 0, len(c.unitDefs))
	for _, ud := range c.unitDefs {
		if ud.Symbol != symbol {
			next = append(next, ud)
		}
	}
	return c.rebuild(next, c.conversionDefs)
}

// AddConversion declares a new conversion, replacing any existing
// declaration with the same endpoints, then rebuilds the Converter.
func (c *Converter) AddConversion(initial, final string, multiplier, offset float64) error {
	if multiplier == 0 {
		return newConfigurationError("conversion %s->%s: multiplier must be nonzero", initial, final)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]ConversionDef, len(c.conversionDefs))
	copy(next, c.conversionDefs)
	replaced := false
	for i, cd := range next {
		if cd.Initial == initial && cd.Final == final {
			next[i] = ConversionDef{Initial: initial, Final: final, Multiplier: multiplier, Offset: offset}
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, ConversionDef{Initial: initial, Final: final, Multiplier: multiplier, Offset: offset})
	}
	return c.rebuild(c.unitDefs, next)
}

// RemoveConversion removes a declared conversion, then rebuilds the
// Converter.
func (c *Converter) RemoveConversion(initial, final string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]ConversionDef, 0, len(c.conversionDefs))
	for _, cd := range c.conversionDefs {
		if !(cd.Initial == initial && cd.Final == final) {
			next = append(next, cd)
		}
	}
	return c.rebuild(c.unitDefs, next)
}
