package units

import "testing"

func TestMassConversions(t *testing.T) {
	lb, err := New(Mass, 1, "lb")
	if err != nil {
		t.Fatal(err)
	}
	g, err := lb.To("g")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, g.Value(), 453.59237, 1e-6, "1 lb in g")

	st, err := New(Mass, 1, "st")
	if err != nil {
		t.Fatal(err)
	}
	inLb, err := st.To("lb")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, inLb.Value(), 14, 1e-9, "1 st in lb")
}

func TestAreaHectareAndAcre(t *testing.T) {
	ha, err := New(Area, 1, "hectare")
	if err != nil {
		t.Fatal(err)
	}
	m2, err := ha.To("m2")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, m2.Value(), 10000, 1e-6, "1 hectare in m2")

	acre, err := New(Area, 1, "acre")
	if err != nil {
		t.Fatal(err)
	}
	ft2, err := acre.To("ft2")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, ft2.Value(), 43560, 1e-3, "1 acre in ft2")
}

func TestVolumeGallonToLitre(t *testing.T) {
	gal, err := New(Volume, 1, "gal")
	if err != nil {
		t.Fatal(err)
	}
	l, err := gal.To("l")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, l.Value(), 3.785411784, 1e-9, "1 gal in litres")

	pt, err := New(Volume, 8, "pt")
	if err != nil {
		t.Fatal(err)
	}
	gals, err := pt.To("gal")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, gals.Value(), 1, 1e-9, "8 pt in gal")
}

func TestAngleTrigAndWrap(t *testing.T) {
	right, err := New(Angle, 90, "deg")
	if err != nil {
		t.Fatal(err)
	}
	sin, err := Sin(right)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, sin, 1, 1e-9, "sin(90deg)")

	over, err := New(Angle, 370, "deg")
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err := Wrap(over)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, wrapped.Value(), 10, 1e-9, "wrap(370 deg)")

	under, err := New(Angle, -10, "deg")
	if err != nil {
		t.Fatal(err)
	}
	wrappedNeg, err := Wrap(under)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatClose(t, wrappedNeg.Value(), 350, 1e-9, "wrap(-10 deg)")
}
