package units

import "testing"

func testLengthConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := NewConverter(
		[]UnitDef{
			{Symbol: "m", Prefixes: Metric},
			{Symbol: "in", Prefixes: 0},
			{Symbol: "ft", Prefixes: 0},
		},
		[]ConversionDef{
			{Initial: "in", Final: "m", Multiplier: 0.0254},
			{Initial: "ft", Final: "in", Multiplier: 12},
		},
	)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return c
}

func TestConvertIdentity(t *testing.T) {
	c := testLengthConverter(t)
	got, err := c.Convert(42, "m", "m")
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("convert(x, u, u) = %v, want 42", got)
	}
}

func TestConvertDiscoveredPath(t *testing.T) {
	c := testLengthConverter(t)
	got, err := c.Convert(1, "ft", "m")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, got, 0.3048, 1e-9, "convert(1, ft, m)")
}

func TestConvertRoundTrip(t *testing.T) {
	c := testLengthConverter(t)
	mid, err := c.Convert(10, "ft", "m")
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Convert(mid, "m", "ft")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, back, 10, 1e-9, "round-trip ft->m->ft")
}

func TestConvertPrefixed(t *testing.T) {
	c := testLengthConverter(t)
	got, err := c.Convert(1, "km", "m")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, got, 1000, 1e-9, "convert(1, km, m)")
}

func TestConvertNoPath(t *testing.T) {
	c, err := NewConverter(
		[]UnitDef{{Symbol: "m", Prefixes: 0}, {Symbol: "kg", Prefixes: 0}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Convert(1, "m", "kg"); err == nil {
		t.Error("expected no-path error")
	} else if _, ok := err.(*NoPathError); !ok {
		t.Errorf("expected *NoPathError, got %T: %v", err, err)
	}
}

func TestAreaPrefixSquared(t *testing.T) {
	c, err := NewConverter(
		[]UnitDef{{Symbol: "m2", Prefixes: Metric}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Convert(1, "km2", "m2")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, got, 1e6, 1e-6, "convert(1, km2, m2)")

	got2, err := c.Convert(1, "cm2", "m2")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, got2, 1e-4, 1e-12, "convert(1, cm2, m2)")
}

func TestAddRemoveUnitAndConversion(t *testing.T) {
	c := testLengthConverter(t)
	if err := c.AddUnit("yd", 0); err != nil {
		t.Fatal(err)
	}
	if err := c.AddConversion("yd", "ft", 3, 0); err != nil {
		t.Fatal(err)
	}
	got, err := c.Convert(1, "yd", "m")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, got, 0.9144, 1e-9, "convert(1, yd, m)")

	if err := c.RemoveConversion("yd", "ft"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Convert(1, "yd", "m"); err == nil {
		t.Error("expected no-path error after removing the only edge into yd")
	}
}

func TestAddConversionRejectsZeroMultiplier(t *testing.T) {
	c := testLengthConverter(t)
	if err := c.AddConversion("in", "m", 0, 0); err == nil {
		t.Error("expected error for zero multiplier")
	}
}

func TestRemoveUnitRejectsWhenConversionsReferenceIt(t *testing.T) {
	c := testLengthConverter(t)
	if err := c.RemoveUnit("in"); err == nil {
		t.Error("expected configuration error removing a unit still referenced by a conversion")
	}
}

func TestGetUnitSymbolsSatisfyGrammar(t *testing.T) {
	c := testLengthConverter(t)
	for _, s := range c.GetUnitSymbols() {
		if !derivedUnitSymbolIsLegal(c, s) {
			t.Errorf("symbol %q does not satisfy the unit grammar", s)
		}
	}
}

func derivedUnitSymbolIsLegal(c *Converter, symbol string) bool {
	if _, _, err := parseDerivedSymbol(symbol); err != nil {
		return false
	}
	u, err := c.GetUnit(symbol)
	if err != nil {
		return false
	}
	_, _, err = parseDerivedSymbol(u.Derived())
	return err == nil
}
