package units

import "math"

// Conversion is an affine map y = m*x + k between two unit symbols.
// Both coefficients are ErrTracked so totalAbsErr reflects how much
// numerical noise each algebraic combination introduced, which is
// exactly the quantity the search in converter.go minimizes.
type Conversion struct {
	InitialUnit string
	FinalUnit   string
	Multiplier  ErrTracked
	Offset      ErrTracked
}

// newConversion builds a Conversion from a declared multiplier and
// offset, rejecting a zero or non-finite multiplier.
func newConversion(initial, final string, multiplier, offset float64) (Conversion, error) {
	if multiplier == 0 || isNaNOrInf(multiplier) {
		return Conversion{}, newConfigurationError("conversion %s->%s: multiplier must be finite and nonzero, got %v", initial, final, multiplier)
	}
	if isNaNOrInf(offset) {
		return Conversion{}, newConfigurationError("conversion %s->%s: offset must be finite, got %v", initial, final, offset)
	}
	return Conversion{
		InitialUnit: initial,
		FinalUnit:   final,
		Multiplier:  NewErrTracked(multiplier),
		Offset:      NewErrTracked(offset),
	}, nil
}

func identityConversion(symbol string) Conversion {
	return Conversion{
		InitialUnit: symbol,
		FinalUnit:   symbol,
		Multiplier:  NewErrTracked(1),
		Offset:      NewErrTracked(0),
	}
}

// TotalAbsErr sums the multiplier's and offset's absolute error. The
// search in generateNextConversion prefers the candidate with the
// smallest value here.
func (c Conversion) TotalAbsErr() float64 {
	return c.Multiplier.AbsErr + c.Offset.AbsErr
}

// Apply evaluates y = m*x + k, treating x as a fresh ErrTracked value
// with the default error convention (zero for an exact integer, half
// a ULP otherwise).
func (c Conversion) Apply(x float64) ErrTracked {
	product := Mul(NewErrTracked(x), c.Multiplier)
	return Add(product, c.Offset)
}

// invertConversion computes B->A from A->B: m' = 1/m, k' = -k/m.
func invertConversion(ab Conversion) (Conversion, error) {
	m, err := Inv(ab.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	negK := Neg(ab.Offset)
	k, err := Div(negK, ab.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{InitialUnit: ab.FinalUnit, FinalUnit: ab.InitialUnit, Multiplier: m, Offset: k}, nil
}

// sequentialConversion composes A->B and B->C into A->C:
// m' = m1*m2, k' = k1*m2 + k2.
func sequentialConversion(ab, bc Conversion) Conversion {
	m := Mul(ab.Multiplier, bc.Multiplier)
	k := Add(Mul(ab.Offset, bc.Multiplier), bc.Offset)
	return Conversion{InitialUnit: ab.InitialUnit, FinalUnit: bc.FinalUnit, Multiplier: m, Offset: k}
}

// convergentConversion composes A->C and B->C, which share a final
// unit, into A->B: m' = m1/m2, k' = (k1-k2)/m2.
func convergentConversion(ac, bc Conversion) (Conversion, error) {
	m, err := Div(ac.Multiplier, bc.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	k, err := Div(Sub(ac.Offset, bc.Offset), bc.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{InitialUnit: ac.InitialUnit, FinalUnit: bc.InitialUnit, Multiplier: m, Offset: k}, nil
}

// divergentConversion composes C->A and C->B, which share an initial
// unit, into A->B: m' = m2/m1, k' = k2 - k1*m2/m1.
func divergentConversion(ca, cb Conversion) (Conversion, error) {
	ratio, err := Div(cb.Multiplier, ca.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	k := Sub(cb.Offset, Mul(ca.Offset, ratio))
	return Conversion{InitialUnit: ca.FinalUnit, FinalUnit: cb.FinalUnit, Multiplier: ratio, Offset: k}, nil
}

// oppositeConversion composes C->A and B->C into A->B:
// m' = 1/(m1*m2), k' = (-k2 - k1/m1)/m2.
func oppositeConversion(ca, bc Conversion) (Conversion, error) {
	m1m2 := Mul(ca.Multiplier, bc.Multiplier)
	m, err := Inv(m1m2)
	if err != nil {
		return Conversion{}, err
	}
	k1OverM1, err := Div(ca.Offset, ca.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	numerator := Neg(Add(bc.Offset, k1OverM1))
	k, err := Div(numerator, bc.Multiplier)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{InitialUnit: ca.FinalUnit, FinalUnit: bc.InitialUnit, Multiplier: m, Offset: k}, nil
}

func isNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
