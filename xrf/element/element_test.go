package element

import (
	"math"
	"testing"
)

func TestGetKnownElement(t *testing.T) {
	fe, ok := Get("Fe")
	if !ok {
		t.Fatal("Fe missing from table")
	}

	if fe.Z != 26 {
		t.Fatalf("Fe Z mismatch: got %d", fe.Z)
	}

	e, ok := fe.LineEnergy(Ka1)
	if !ok {
		t.Fatal("Fe Ka1 missing")
	}

	if math.Abs(e-6.404) > 1e-9 {
		t.Fatalf("Fe Ka1 energy mismatch: got %f", e)
	}
}

func TestGetUnknownElement(t *testing.T) {
	if _, ok := Get("Xx"); ok {
		t.Fatal("expected lookup failure for unknown symbol")
	}
}

func TestLinesSortedByIntensity(t *testing.T) {
	cu := MustGet("Cu")

	lines := cu.Lines(GroupK)
	if len(lines) < 3 {
		t.Fatalf("Cu K lines: got %d, want >= 3", len(lines))
	}

	if lines[0].Line != Ka1 || lines[0].Ratio != 1.0 {
		t.Fatalf("strongest Cu K line should be Ka1, got %v", lines[0].Line)
	}

	for i := 1; i < len(lines); i++ {
		if lines[i].Ratio > lines[i-1].Ratio {
			t.Fatalf("lines not sorted by ratio at %d", i)
		}
	}
}

func TestActivation(t *testing.T) {
	fe := MustGet("Fe")

	if fe.Activated(GroupK, 5.0) {
		t.Fatal("Fe K should not be activated below the 7.112 keV edge")
	}

	if !fe.Activated(GroupK, 12.0) {
		t.Fatal("Fe K should be activated at 12 keV")
	}

	// Fe has no L data; never activated.
	if fe.Activated(GroupL, 12.0) {
		t.Fatal("Fe L should not be activated without tabulated data")
	}
}

func TestParseSuffixes(t *testing.T) {
	cases := []struct {
		name  string
		sym   string
		group Group
	}{
		{"Fe", "Fe", GroupK},
		{"Pb_L", "Pb", GroupL},
		{"Au_M", "Au", GroupM},
	}

	for _, tc := range cases {
		e, g, ok := Parse(tc.name)
		if !ok {
			t.Fatalf("Parse(%q) failed", tc.name)
		}

		if e.Symbol != tc.sym || g != tc.group {
			t.Fatalf("Parse(%q): got %s/%v, want %s/%v", tc.name, e.Symbol, g, tc.sym, tc.group)
		}
	}

	if _, _, ok := Parse("Zz_L"); ok {
		t.Fatal("expected Parse failure for unknown symbol")
	}
}

func TestSeriesLists(t *testing.T) {
	k := KSeries()
	if len(k) != 43 {
		t.Fatalf("K series length: got %d, want 43", len(k))
	}

	if k[0] != "Na" || k[len(k)-1] != "I" {
		t.Fatalf("K series bounds: got %s..%s", k[0], k[len(k)-1])
	}

	for _, name := range LSeries() {
		if len(name) < 3 || name[len(name)-2:] != "_L" {
			t.Fatalf("L series name missing suffix: %q", name)
		}
	}

	m := MSeries()
	if len(m) != 5 {
		t.Fatalf("M series length: got %d, want 5", len(m))
	}
}

func TestKLineMonotonicInZ(t *testing.T) {
	prevKa1 := 0.0
	prevEdge := 0.0

	for _, name := range KSeries() {
		e := MustGet(name)

		ka1, ok := e.LineEnergy(Ka1)
		if !ok {
			t.Fatalf("%s missing Ka1", name)
		}

		if ka1 <= prevKa1 {
			t.Fatalf("%s Ka1 %.3f not above previous %.3f", name, ka1, prevKa1)
		}

		if e.KEdge <= prevEdge {
			t.Fatalf("%s K edge %.3f not above previous %.3f", name, e.KEdge, prevEdge)
		}

		// The Ka1 line is always below the ionization edge that produces it.
		if ka1 >= e.KEdge {
			t.Fatalf("%s Ka1 %.3f above K edge %.3f", name, ka1, e.KEdge)
		}

		prevKa1, prevEdge = ka1, e.KEdge
	}
}
