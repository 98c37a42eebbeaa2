package maze

import (
	"testing"
)

func TestNewGrid_Invalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		if _, err := NewGrid(dims[0], dims[1], Empty); err == nil {
			t.Errorf("NewGrid(%d,%d): expected error", dims[0], dims[1])
		}
	}
}

func TestParseGrid_Ragged(t *testing.T) {
	if _, err := ParseGrid("###", "#."); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := ParseGrid(); err == nil {
		t.Error("expected error for no rows")
	}
}

func TestGrid_String(t *testing.T) {
	g := mustParse(t, "#.", "*v", "?#")
	want := "██  \n()..\n??██\n"
	if got := g.String(); got != want {
		t.Errorf("String:\ngot  %q\nwant %q", got, want)
	}
}

func TestGrid_StringSingleAllocation(t *testing.T) {
	// Walls render as multi-byte runes; the buffer must still be sized up front.
	for _, in := range [][]string{bordered, {"####", "####"}, {"....", "...."}} {
		g := mustParse(t, in...)
		allocs := testing.AllocsPerRun(10, func() { _ = g.String() })
		if allocs != 1 {
			t.Errorf("%q: String allocated %v times, want 1", in, allocs)
		}
	}
}

func TestGrid_CountsAndPoints(t *testing.T) {
	g := mustParse(t, bordered...)
	counts := g.Counts()
	if counts[Empty] != 24 || counts[Wall] != 39 {
		t.Errorf("Counts: got %v", counts)
	}
	walls := g.Points(Wall)
	if len(walls) != counts[Wall] {
		t.Errorf("Points(Wall): got %d, want %d", len(walls), counts[Wall])
	}
	if walls[0] != (Point{0, 0}) {
		t.Errorf("first wall: got %v, want (0,0)", walls[0])
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := mustParse(t, "..")
	c := g.Clone()
	c.Set(Point{0, 0}, Wall)
	if g.At(Point{0, 0}) != Empty {
		t.Error("Clone shares cells with the original")
	}
}

func TestDefaultEndpoints(t *testing.T) {
	g := mustParse(t, bordered...)
	start, stop := DefaultEndpoints(g)
	if start != (Point{1, 1}) || stop != (Point{7, 5}) {
		t.Errorf("got %v %v, want (1,1) (7,5)", start, stop)
	}
}
