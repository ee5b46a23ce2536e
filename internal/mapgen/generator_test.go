package mapgen_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
	"github.com/vovakirdan/mapgen/internal/telemetry"
)

func TestGenerateSingleCell(t *testing.T) {
	g, err := mapgen.New(mapgen.Config{
		Width:    5,
		Height:   5,
		Strategy: layout.RandomWalk{Walkers: 1, Lifetime: 0},
		Seed:     42,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(res.Placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(res.Placements))
	}
	p := res.Placements[0]
	if p.Coord != layout.C(2, 2) || p.Kind != layout.TileFloor || p.Walls.Len() != 4 {
		t.Errorf("unexpected placement %s", layout.FormatPlacement(p))
	}

	grid := g.Grid()
	if s, _ := grid.StateAt(layout.C(2, 2)); s != layout.CellHallway {
		t.Errorf("expected Hallway at (2,2), got %v", s)
	}
	if grid.CarvedCount() != 1 {
		t.Errorf("expected 1 carved cell, got %d", grid.CarvedCount())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	strategies := []layout.Strategy{
		layout.RandomWalk{Walkers: 3, Lifetime: 70},
		layout.SliceCarve{},
	}

	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			cfg := mapgen.Config{Width: 20, Height: 20, Strategy: s, Seed: 987654321}
			a := mustGenerator(t, cfg)
			b := mustGenerator(t, cfg)

			ra := mustGenerate(t, a)
			rb := mustGenerate(t, b)

			if !a.Grid().Equal(b.Grid()) {
				t.Error("same seed produced different grids")
			}
			if !reflect.DeepEqual(ra, rb) {
				t.Error("same seed produced different results")
			}

			// Regenerating on the same instance resets first
			again := mustGenerate(t, a)
			if !reflect.DeepEqual(ra, again) {
				t.Error("second pass on the same generator differs from the first")
			}
		})
	}
}

func TestGenerateReseed(t *testing.T) {
	g := mustGenerator(t, mapgen.Config{Width: 20, Height: 20, Strategy: layout.RandomWalk{Walkers: 2, Lifetime: 60}, Seed: 1})
	mustGenerate(t, g)
	first := g.Grid()

	g.Reseed(2)
	res := mustGenerate(t, g)
	if res.Seed != 2 {
		t.Errorf("result seed = %d, want 2", res.Seed)
	}
	if g.Grid().Equal(first) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestGenerateStatsMatchGrid(t *testing.T) {
	g := mustGenerator(t, mapgen.Config{Width: 16, Height: 16, Strategy: layout.RandomWalk{Walkers: 5, Lifetime: 100}, Seed: 3})
	res := mustGenerate(t, g)
	grid := g.Grid()

	if res.Stats.Carved() != grid.CarvedCount() {
		t.Errorf("stats carved %d, grid carved %d", res.Stats.Carved(), grid.CarvedCount())
	}
	if res.Stats.Floors+res.Stats.Interiors != len(res.Placements) {
		t.Errorf("stats tiles %d, placements %d", res.Stats.Floors+res.Stats.Interiors, len(res.Placements))
	}
	if res.Strategy != "random-walk" {
		t.Errorf("strategy = %q", res.Strategy)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  mapgen.Config
		want error
	}{
		{"zero width", mapgen.Config{Width: 0, Height: 10}, layout.ErrInvalidDimension},
		{"negative height", mapgen.Config{Width: 10, Height: -1}, layout.ErrInvalidDimension},
		{"single cell", mapgen.Config{Width: 1, Height: 1}, layout.ErrInvalidDimension},
		{"no walkers", mapgen.Config{Width: 10, Height: 10, Strategy: layout.RandomWalk{}}, layout.ErrInvalidStrategy},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapgen.New(tc.cfg)
			if !errors.Is(err, tc.want) {
				t.Errorf("New error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewDefaultsStrategy(t *testing.T) {
	g := mustGenerator(t, mapgen.Config{Width: 10, Height: 10})
	if _, ok := g.Config().Strategy.(layout.RandomWalk); !ok {
		t.Errorf("expected default random walk, got %T", g.Config().Strategy)
	}

	def := mapgen.DefaultConfig()
	if def.Width != 20 || def.Height != 20 {
		t.Errorf("default size %dx%d, want 20x20", def.Width, def.Height)
	}
}

func TestGridAccessorIsCopy(t *testing.T) {
	g := mustGenerator(t, mapgen.DefaultConfig())
	mustGenerate(t, g)

	snapshot := g.Grid()
	snapshot.Reset()
	if g.Grid().CarvedCount() == 0 {
		t.Error("resetting the snapshot cleared the generator's grid")
	}
}

func TestWithSourceAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := mustGenerator(t, mapgen.DefaultConfig(),
		mapgen.WithSource(rand.New(rand.NewSource(7))),
		mapgen.WithLogger(logger),
		mapgen.WithTracer(telemetry.NoopTracer()),
	)
	res := mustGenerate(t, g)
	if len(res.Placements) == 0 {
		t.Fatal("expected placements")
	}
	if !strings.Contains(buf.String(), "layout generated") {
		t.Errorf("expected debug summary in log output, got %q", buf.String())
	}
}

func mustGenerator(t *testing.T, cfg mapgen.Config, opts ...mapgen.Option) *mapgen.Generator {
	t.Helper()
	g, err := mapgen.New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func mustGenerate(t *testing.T, g *mapgen.Generator) mapgen.Result {
	t.Helper()
	res, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}
