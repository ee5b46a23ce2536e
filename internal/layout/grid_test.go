package layout_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mapgen/internal/layout"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default", layout.DefaultWidth, layout.DefaultHeight, false},
		{"single row", 5, 1, false},
		{"single column", 1, 5, false},
		{"two cells", 2, 1, false},
		{"zero width", 0, 5, true},
		{"zero height", 5, 0, true},
		{"negative", -3, 4, true},
		{"single cell", 1, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := layout.NewGrid(tc.w, tc.h)
			if tc.wantErr {
				if !errors.Is(err, layout.ErrInvalidDimension) {
					t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", tc.w, tc.h, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGrid(%d, %d) failed: %v", tc.w, tc.h, err)
			}
			if g.CarvedCount() != 0 {
				t.Errorf("new grid has %d carved cells, want 0", g.CarvedCount())
			}
			if len(g.Cells()) != tc.w*tc.h {
				t.Errorf("expected %d cells, got %d", tc.w*tc.h, len(g.Cells()))
			}
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g := mustGrid(t, 5, 4)

	testCases := []struct {
		coord    layout.Coord
		expected bool
	}{
		{layout.C(0, 0), true},
		{layout.C(4, 3), true},
		{layout.C(2, 2), true},
		{layout.C(-1, 0), false},
		{layout.C(0, -1), false},
		{layout.C(5, 0), false},
		{layout.C(0, 4), false},
		{layout.C(5, 4), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestGridStateAtOutOfRange(t *testing.T) {
	g := mustGrid(t, 3, 3)

	for _, c := range []layout.Coord{layout.C(-1, 0), layout.C(3, 0), layout.C(0, 3), layout.C(10, 10)} {
		if _, err := g.StateAt(c); !errors.Is(err, layout.ErrOutOfRange) {
			t.Errorf("StateAt(%v) error = %v, want ErrOutOfRange", c, err)
		}
		if err := g.Upgrade(c); !errors.Is(err, layout.ErrOutOfRange) {
			t.Errorf("Upgrade(%v) error = %v, want ErrOutOfRange", c, err)
		}
	}
}

func TestGridUpgradeChain(t *testing.T) {
	g := mustGrid(t, 3, 3)
	c := layout.C(1, 1)

	want := []layout.CellState{
		layout.CellHallway,
		layout.CellIntersection,
		layout.CellIntersection,
		layout.CellIntersection,
	}
	for i, w := range want {
		if err := g.Upgrade(c); err != nil {
			t.Fatalf("Upgrade #%d failed: %v", i+1, err)
		}
		if got := stateAt(t, g, c); got != w {
			t.Errorf("after %d upgrades: expected %v, got %v", i+1, w, got)
		}
	}

	// Neighbours are untouched
	if got := stateAt(t, g, layout.C(0, 1)); got != layout.CellEmpty {
		t.Errorf("neighbour changed to %v", got)
	}
}

func TestGridUpgradeMonotonic(t *testing.T) {
	g := mustGrid(t, 6, 6)
	rng := layout.NewRNG(7)
	prev := g.Cells()

	for i := 0; i < 500; i++ {
		c := layout.C(rng.Intn(g.W), rng.Intn(g.H))
		if err := g.Upgrade(c); err != nil {
			t.Fatalf("Upgrade(%v) failed: %v", c, err)
		}
		cur := g.Cells()
		for j := range cur {
			if cur[j] < prev[j] {
				t.Fatalf("cell %d moved backwards: %v -> %v", j, prev[j], cur[j])
			}
		}
		prev = cur
	}
}

func TestGridResetAndClone(t *testing.T) {
	g := mustGrid(t, 4, 4)
	_ = g.Upgrade(layout.C(1, 2))
	_ = g.Upgrade(layout.C(1, 2))
	_ = g.Upgrade(layout.C(3, 0))

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should be equal to original")
	}
	if clone.Count(layout.CellIntersection) != 1 || clone.Count(layout.CellHallway) != 1 {
		t.Errorf("unexpected clone counts: %d intersections, %d hallways",
			clone.Count(layout.CellIntersection), clone.Count(layout.CellHallway))
	}

	g.Reset()
	if g.CarvedCount() != 0 {
		t.Errorf("expected empty grid after Reset, got %d carved", g.CarvedCount())
	}
	if clone.CarvedCount() != 2 {
		t.Error("clone should not be affected by Reset on the original")
	}
}

func TestGridCellsIsCopy(t *testing.T) {
	g := mustGrid(t, 2, 2)
	cells := g.Cells()
	cells[0] = layout.CellIntersection

	if got := stateAt(t, g, layout.C(0, 0)); got != layout.CellEmpty {
		t.Errorf("writing to Cells() leaked into grid: %v", got)
	}
}

func TestRenderGrid(t *testing.T) {
	g := mustGrid(t, 3, 2)
	_ = g.Upgrade(layout.C(0, 0))
	_ = g.Upgrade(layout.C(2, 1))
	_ = g.Upgrade(layout.C(2, 1))

	// North (y=1) is the first line
	want := "..+\n#..\n"
	if got := layout.RenderGrid(g); got != want {
		t.Errorf("RenderGrid:\n%s\nwant:\n%s", got, want)
	}
	if got := layout.RenderGridCompact(g); got != "#....+" {
		t.Errorf("RenderGridCompact = %q", got)
	}
}

func mustGrid(t *testing.T, w, h int) *layout.Grid {
	t.Helper()
	g, err := layout.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func stateAt(t *testing.T, g *layout.Grid, c layout.Coord) layout.CellState {
	t.Helper()
	s, err := g.StateAt(c)
	if err != nil {
		t.Fatalf("StateAt(%v) failed: %v", c, err)
	}
	return s
}
