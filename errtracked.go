package units

import "math"

// ErrTracked is a floating-point value paired with a propagated
// absolute error. The conversion engine uses it for every multiplier
// and offset so the best-first search has a meaningful quality metric:
// shorter, better-conditioned conversion chains accumulate less error.
type ErrTracked struct {
	Value  float64
	AbsErr float64
}

// NewErrTracked wraps value with its default error: half a ULP when
// value is not an exact integer, zero otherwise. Use this for values
// that entered the system without a caller-supplied uncertainty (a
// declared conversion multiplier, a prefix factor).
func NewErrTracked(value float64) ErrTracked {
	if isExactInteger(value) {
		return ErrTracked{Value: value}
	}
	return ErrTracked{Value: value, AbsErr: halfULP(value)}
}

// NewErrTrackedWithErr wraps value with an explicit absolute error.
func NewErrTrackedWithErr(value, absErr float64) ErrTracked {
	return ErrTracked{Value: value, AbsErr: absErr}
}

// RelErr returns the relative error, with the conventions that a
// zero value with zero error has zero relative error, and a zero
// value with nonzero error has infinite relative error.
func (e ErrTracked) RelErr() float64 {
	if e.Value == 0 {
		if e.AbsErr == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(e.AbsErr / e.Value)
}

// SignificantDigits returns floor(-log10(relErr)), clamped to be
// non-negative. infinite is true when AbsErr is exactly zero (the
// value carries no measurable error at all).
func (e ErrTracked) SignificantDigits() (digits int, infinite bool) {
	if e.AbsErr == 0 {
		return 0, true
	}
	r := e.RelErr()
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, false
	}
	d := math.Floor(-math.Log10(r))
	if d < 0 {
		d = 0
	}
	return int(d), false
}

// Add returns a+b, inflating the summed absolute error by half a ULP
// of the result once any error has entered the computation.
func Add(a, b ErrTracked) ErrTracked {
	value := a.Value + b.Value
	absErr := a.AbsErr + b.AbsErr
	if absErr > 0 {
		absErr += halfULP(value)
	}
	return ErrTracked{Value: value, AbsErr: absErr}
}

// Sub returns a-b, with the same worst-case absolute error handling
// as Add.
func Sub(a, b ErrTracked) ErrTracked {
	value := a.Value - b.Value
	absErr := a.AbsErr + b.AbsErr
	if absErr > 0 {
		absErr += halfULP(value)
	}
	return ErrTracked{Value: value, AbsErr: absErr}
}

// Neg returns -a. Negation is exact; the error is unchanged.
func Neg(a ErrTracked) ErrTracked {
	return ErrTracked{Value: -a.Value, AbsErr: a.AbsErr}
}

// Mul returns a*b, summing relative errors and inflating by half a
// ULP once the product already carries error.
func Mul(a, b ErrTracked) ErrTracked {
	value := a.Value * b.Value
	relErr := a.RelErr() + b.RelErr()
	absErr := math.Abs(value) * relErr
	if math.IsNaN(absErr) {
		absErr = 0
	}
	if absErr > 0 {
		absErr += halfULP(value)
	}
	return ErrTracked{Value: value, AbsErr: absErr}
}

// Div returns a/b. It returns ErrDivisionByZero when b.Value is zero.
// Unlike Mul, the half-ULP inflation also applies when the quotient
// is not an exact integer, since division is where rounding most
// commonly bites even on otherwise error-free operands.
func Div(a, b ErrTracked) (ErrTracked, error) {
	if b.Value == 0 {
		return ErrTracked{}, ErrDivisionByZero
	}
	value := a.Value / b.Value
	relErr := a.RelErr() + b.RelErr()
	absErr := math.Abs(value) * relErr
	if math.IsNaN(absErr) {
		absErr = 0
	}
	if absErr > 0 || !isExactInteger(value) {
		absErr += halfULP(value)
	}
	return ErrTracked{Value: value, AbsErr: absErr}, nil
}

// Inv returns 1/a, i.e. Div(NewErrTracked(1), a).
func Inv(a ErrTracked) (ErrTracked, error) {
	return Div(NewErrTracked(1), a)
}

func isExactInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// halfULP returns half the unit in the last place of v, the rounding
// error modelled by one additional floating-point operation on v.
func halfULP(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.Inf(1)
	}
	if v == 0 {
		return 0
	}
	var ulp float64
	if v > 0 {
		ulp = math.Nextafter(v, math.Inf(1)) - v
	} else {
		ulp = v - math.Nextafter(v, math.Inf(-1))
	}
	return ulp / 2
}
