package layout_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mapgen/internal/layout"
)

func TestRandomWalkZeroLifetime(t *testing.T) {
	g := mustGrid(t, 5, 5)

	err := layout.Carve(g, layout.RandomWalk{Walkers: 1, Lifetime: 0}, layout.NewRNG(1))
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	if g.CarvedCount() != 1 {
		t.Fatalf("expected exactly 1 carved cell, got %d", g.CarvedCount())
	}
	if got := stateAt(t, g, layout.C(2, 2)); got != layout.CellHallway {
		t.Errorf("expected Hallway at (2,2), got %v", got)
	}

	placements := layout.Classify(g)
	if len(placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(placements))
	}
	p := placements[0]
	if p.Coord != layout.C(2, 2) || p.Kind != layout.TileFloor {
		t.Errorf("unexpected placement %s", layout.FormatPlacement(p))
	}
	for _, d := range layout.Cardinals {
		if !p.Walls.Has(d) {
			t.Errorf("expected %v wall on lone cell", d)
		}
	}
}

func TestRandomWalkSharedSpawn(t *testing.T) {
	g := mustGrid(t, 8, 6)

	err := layout.Carve(g, layout.RandomWalk{Walkers: 2, Lifetime: 0}, layout.NewRNG(1))
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	// Each walker upgrades the shared spawn cell once
	if got := stateAt(t, g, layout.C(4, 3)); got != layout.CellIntersection {
		t.Errorf("expected Intersection at spawn, got %v", got)
	}
	if g.CarvedCount() != 1 {
		t.Errorf("expected only the spawn cell carved, got %d", g.CarvedCount())
	}
}

// TestRandomWalkIntersectionsAreRevisits replays the walk with the same seed
// and checks each cell's state against its visit count.
func TestRandomWalkIntersectionsAreRevisits(t *testing.T) {
	const seed = 2024
	s := layout.RandomWalk{Walkers: 3, Lifetime: 40}

	g := mustGrid(t, 20, 20)
	if err := layout.Carve(g, s, layout.NewRNG(seed)); err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	shadow := mustGrid(t, 20, 20)
	rng := layout.NewRNG(seed)
	visits := make(map[layout.Coord]int)
	walkers := make([]*layout.Walker, s.Walkers)
	for i := range walkers {
		walkers[i] = layout.NewWalker(shadow.Center(), shadow)
		visits[shadow.Center()]++
	}
	for tick := 0; tick < s.Lifetime; tick++ {
		for _, w := range walkers {
			visits[w.Move(rng)]++
		}
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := layout.C(x, y)
			want := layout.CellEmpty
			switch n := visits[c]; {
			case n == 1:
				want = layout.CellHallway
			case n >= 2:
				want = layout.CellIntersection
			}
			if got := stateAt(t, g, c); got != want {
				t.Errorf("%v visited %d times: expected %v, got %v", c, visits[c], want, got)
			}
		}
	}

	if bound := s.Walkers * (s.Lifetime + 1); g.CarvedCount() > bound {
		t.Errorf("carved %d cells, bound is %d", g.CarvedCount(), bound)
	}
}

func TestCarveDeterministic(t *testing.T) {
	strategies := []layout.Strategy{
		layout.RandomWalk{Walkers: 4, Lifetime: 60},
		layout.SliceCarve{},
	}

	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			g1 := mustGrid(t, 20, 20)
			g2 := mustGrid(t, 20, 20)
			if err := layout.Carve(g1, s, layout.NewRNG(12345)); err != nil {
				t.Fatalf("Carve failed: %v", err)
			}
			if err := layout.Carve(g2, s, layout.NewRNG(12345)); err != nil {
				t.Fatalf("Carve failed: %v", err)
			}
			if !g1.Equal(g2) {
				t.Errorf("same seed produced different grids:\n%s\nvs\n%s",
					layout.RenderGrid(g1), layout.RenderGrid(g2))
			}
		})
	}
}

func TestSliceCarveMidpointRow(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := mustGrid(t, 20, 20)
		if err := layout.Carve(g, layout.SliceCarve{}, layout.NewRNG(seed)); err != nil {
			t.Fatalf("seed %d: Carve failed: %v", seed, err)
		}
		// Spans leave at most 2 open cells at each end
		for x := 2; x <= 17; x++ {
			if got := stateAt(t, g, layout.C(x, 10)); got == layout.CellEmpty {
				t.Fatalf("seed %d: midpoint row not carved at x=%d\n%s", seed, x, layout.RenderGrid(g))
			}
		}
	}
}

func TestSliceCarveVariesWithSeed(t *testing.T) {
	base := mustGrid(t, 20, 20)
	if err := layout.Carve(base, layout.SliceCarve{}, layout.NewRNG(1)); err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	for seed := uint64(2); seed <= 20; seed++ {
		g := mustGrid(t, 20, 20)
		if err := layout.Carve(g, layout.SliceCarve{}, layout.NewRNG(seed)); err != nil {
			t.Fatalf("Carve failed: %v", err)
		}
		if !g.Equal(base) {
			return
		}
	}
	t.Error("slice carving produced the same layout for 20 different seeds")
}

func TestSliceCarveSmallGrids(t *testing.T) {
	sizes := []struct{ w, h int }{{2, 1}, {1, 2}, {3, 3}, {6, 6}, {7, 4}}

	for _, sz := range sizes {
		g := mustGrid(t, sz.w, sz.h)
		if err := layout.Carve(g, layout.SliceCarve{}, layout.NewRNG(5)); err != nil {
			t.Errorf("%dx%d: Carve failed: %v", sz.w, sz.h, err)
			continue
		}
		if g.CarvedCount() == 0 {
			t.Errorf("%dx%d: nothing carved", sz.w, sz.h)
		}
	}
}

func TestCarveInvalidStrategy(t *testing.T) {
	tests := []struct {
		name string
		s    layout.Strategy
	}{
		{"nil", nil},
		{"no walkers", layout.RandomWalk{Walkers: 0, Lifetime: 10}},
		{"negative lifetime", layout.RandomWalk{Walkers: 1, Lifetime: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 5, 5)
			err := layout.Carve(g, tc.s, layout.NewRNG(1))
			if !errors.Is(err, layout.ErrInvalidStrategy) {
				t.Fatalf("expected ErrInvalidStrategy, got %v", err)
			}
			if g.CarvedCount() != 0 {
				t.Errorf("failed carve touched %d cells", g.CarvedCount())
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    layout.Strategy
		wantErr bool
	}{
		{"random-walk", layout.RandomWalk{Walkers: 2, Lifetime: 30}, false},
		{"walk", layout.RandomWalk{Walkers: 2, Lifetime: 30}, false},
		{"slice", layout.SliceCarve{}, false},
		{"slice-carve", layout.SliceCarve{}, false},
		{"bsp", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := layout.ParseStrategy(tc.name, 2, 30)
			if tc.wantErr {
				if !errors.Is(err, layout.ErrInvalidStrategy) {
					t.Fatalf("expected ErrInvalidStrategy, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseStrategy(%q) = %#v, want %#v", tc.name, got, tc.want)
			}
		})
	}
}
