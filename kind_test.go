package units

import "testing"

func TestKindConverterBuiltLazilyAndCached(t *testing.T) {
	k := NewKind("test-kind", KindConfig{
		Units: []UnitDef{{Symbol: "x", Prefixes: 0}},
	})
	first, err := k.converterOrErr()
	if err != nil {
		t.Fatal(err)
	}
	second, err := k.converterOrErr()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the same Converter instance across calls")
	}
}

func TestKindConverterBuildErrorIsSticky(t *testing.T) {
	k := NewKind("bad-kind", KindConfig{})
	if _, err := k.converterOrErr(); err == nil {
		t.Error("expected configuration error for an empty unit table")
	}
	if _, err := k.converterOrErr(); err == nil {
		t.Error("expected the same configuration error on a second call")
	}
}

func TestWithApproxEqualOverridesTolerance(t *testing.T) {
	k := NewKind("toleranced", KindConfig{
		Units: []UnitDef{{Symbol: "x", Prefixes: 0}},
	}, WithApproxEqual(ApproxEqualConfig{Tolerance: 0.5}))
	if got := k.tolerance(); got != 0.5 {
		t.Errorf("tolerance() = %v, want 0.5", got)
	}
}

func TestKindDefaultTolerance(t *testing.T) {
	k := NewKind("plain", KindConfig{
		Units: []UnitDef{{Symbol: "x", Prefixes: 0}},
	})
	if got := k.tolerance(); got != defaultApproxTolerance {
		t.Errorf("tolerance() = %v, want default %v", got, defaultApproxTolerance)
	}
}
