package units

import "testing"

func TestIdentityConversion(t *testing.T) {
	c := identityConversion("m")
	got := c.Apply(5).Value
	if got != 5 {
		t.Errorf("identity conversion: got %v, want 5", got)
	}
}

func TestNewConversionRejectsZeroMultiplier(t *testing.T) {
	if _, err := newConversion("a", "b", 0, 0); err == nil {
		t.Error("expected error for zero multiplier")
	}
}

func TestInvertConversion(t *testing.T) {
	ab, err := newConversion("C", "K", 1, 273.15)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := invertConversion(ab)
	if err != nil {
		t.Fatal(err)
	}
	got := ba.Apply(373.15).Value
	assertFloatClose(t, got, 100, 1e-9, "invert(C->K)(373.15)")
}

func TestSequentialConversion(t *testing.T) {
	abConv, _ := newConversion("a", "b", 2, 0)
	bcConv, _ := newConversion("b", "c", 3, 1)
	ac := sequentialConversion(abConv, bcConv)
	got := ac.Apply(5).Value
	want := 3.0*(2.0*5) + 1
	assertFloatClose(t, got, want, 1e-9, "sequential(a->b, b->c)(5)")
}

func TestConvergentConversion(t *testing.T) {
	acConv, _ := newConversion("a", "c", 2, 1)
	bcConv, _ := newConversion("b", "c", 4, 2)
	ab, err := convergentConversion(acConv, bcConv)
	if err != nil {
		t.Fatal(err)
	}
	x := 5.0
	cValue := 2*x + 1
	wantB := (cValue - 2) / 4
	got := ab.Apply(x).Value
	assertFloatClose(t, got, wantB, 1e-9, "convergent(a->c, b->c)(5)")
}

func TestDivergentConversion(t *testing.T) {
	caConv, _ := newConversion("c", "a", 2, 1)
	cbConv, _ := newConversion("c", "b", 4, 2)
	ab, err := divergentConversion(caConv, cbConv)
	if err != nil {
		t.Fatal(err)
	}
	cVal := 10.0
	aVal := 2*cVal + 1
	bVal := 4*cVal + 2
	got := ab.Apply(aVal).Value
	assertFloatClose(t, got, bVal, 1e-6, "divergent(c->a, c->b) applied to a-value")
}

func TestOppositeConversion(t *testing.T) {
	caConv, _ := newConversion("c", "a", 2, 1)
	bcConv, _ := newConversion("b", "c", 3, 4)
	ab, err := oppositeConversion(caConv, bcConv)
	if err != nil {
		t.Fatal(err)
	}
	cVal := 6.0
	aVal := 2*cVal + 1
	bVal := (cVal - 4) / 3
	got := ab.Apply(aVal).Value
	assertFloatClose(t, got, bVal, 1e-6, "opposite(c->a, b->c) applied to a-value")
}
