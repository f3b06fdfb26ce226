package units

import "testing"

func TestParseDerivedSymbol(t *testing.T) {
	cases := []struct {
		in       string
		wantBase string
		wantExp  int
		wantErr  bool
	}{
		{"m", "m", 1, false},
		{"m2", "m", 2, false},
		{"s-1", "s", -1, false},
		{"ft3", "ft", 3, false},
		{"m1", "", 0, true},
		{"m0", "", 0, true},
		{"", "", 0, true},
	}
	for _, c := range cases {
		base, exp, err := parseDerivedSymbol(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseDerivedSymbol(%q): expected error, got base=%q exp=%d", c.in, base, exp)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDerivedSymbol(%q): unexpected error: %v", c.in, err)
			continue
		}
		if base != c.wantBase || exp != c.wantExp {
			t.Errorf("parseDerivedSymbol(%q) = (%q, %d), want (%q, %d)", c.in, base, exp, c.wantBase, c.wantExp)
		}
	}
}

func TestUnitDerivedAndPrefixed(t *testing.T) {
	u := Unit{Prefix: "k", Base: "m", Exponent: 2, PrefixMultiplier: 1000}
	if got := u.Derived(); got != "m2" {
		t.Errorf("Derived() = %q, want m2", got)
	}
	if got := u.Prefixed(); got != "km2" {
		t.Errorf("Prefixed() = %q, want km2", got)
	}
}

func TestUnitMultiplierRaisedToExponent(t *testing.T) {
	u := Unit{Prefix: "k", Base: "m", Exponent: 2, PrefixMultiplier: 1000}
	if got, want := u.Multiplier(), 1e6; got != want {
		t.Errorf("Multiplier() = %v, want %v", got, want)
	}
}

func TestUnitDisplayMicroAndSuperscript(t *testing.T) {
	u := Unit{Prefix: "u", Base: "m", Exponent: 3, PrefixMultiplier: 1e-6}
	want := "μm³"
	if got := u.Display(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestUnitDisplayNegativeExponent(t *testing.T) {
	u := Unit{Base: "s", Exponent: -1, PrefixMultiplier: 1}
	if got, want := u.Display(), "s⁻¹"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}
