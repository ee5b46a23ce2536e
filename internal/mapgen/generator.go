// Package mapgen runs complete generation passes: it owns the grid, carves
// it with the configured strategy and classifies the result into tile
// placements for a renderer.
package mapgen

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/telemetry"
)

// Config describes one generator.
type Config struct {
	Width    int
	Height   int
	Strategy layout.Strategy
	Seed     uint64 // every pass starts from this seed
}

// DefaultConfig returns a 20x20 single-walker random walk.
func DefaultConfig() Config {
	return Config{
		Width:    layout.DefaultWidth,
		Height:   layout.DefaultHeight,
		Strategy: layout.DefaultStrategy(),
	}
}

// Result is the output of one generation pass.
type Result struct {
	Seed       uint64
	Strategy   string
	Placements []layout.Placement
	Stats      layout.Stats
}

// Option customises a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for pass summaries.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithTracer sets the tracer used for pass spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) {
		g.tracer = t
	}
}

// WithSource makes every pass draw from src instead of a fresh seeded RNG.
// Passes are then only reproducible if src is.
func WithSource(src layout.Source) Option {
	return func(g *Generator) {
		g.source = src
	}
}

// Generator owns one grid and regenerates it on every Generate call.
// It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	grid   *layout.Grid
	source layout.Source
	logger *log.Logger
	tracer trace.Tracer
}

// New validates cfg and allocates the grid.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if cfg.Strategy == nil {
		cfg.Strategy = layout.DefaultStrategy()
	}
	grid, err := layout.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	if err := cfg.Strategy.Validate(); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}

	g := &Generator{
		cfg:    cfg,
		grid:   grid,
		tracer: telemetry.Tracer("mapgen"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Reseed changes the seed used by subsequent passes.
func (g *Generator) Reseed(seed uint64) {
	g.cfg.Seed = seed
}

// Grid returns a copy of the cell states from the last pass.
func (g *Generator) Grid() *layout.Grid {
	return g.grid.Clone()
}

// Generate resets the grid, carves it and classifies the result.
// With the default source, equal configs always produce equal results.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	ctx, span := g.tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	start := time.Now()
	rng := g.source
	if rng == nil {
		rng = layout.NewRNG(g.cfg.Seed)
	}

	g.grid.Reset()
	if err := g.carve(ctx, rng); err != nil {
		g.grid.Reset()
		span.RecordError(err)
		return Result{}, fmt.Errorf("mapgen: carve: %w", err)
	}

	placements := g.classify(ctx)
	res := Result{
		Seed:       g.cfg.Seed,
		Strategy:   g.cfg.Strategy.Name(),
		Placements: placements,
		Stats:      layout.Summarize(g.grid, placements),
	}

	span.SetAttributes(
		attribute.Int("grid.width", g.grid.W),
		attribute.Int("grid.height", g.grid.H),
		attribute.String("carve.strategy", res.Strategy),
		attribute.Int64("carve.seed", int64(res.Seed)),
		attribute.Int("layout.hallways", res.Stats.Hallways),
		attribute.Int("layout.intersections", res.Stats.Intersections),
		attribute.Int("layout.interiors", res.Stats.Interiors),
		attribute.Int("layout.walls", res.Stats.Walls),
		attribute.Int64("layout.generation_us", time.Since(start).Microseconds()),
	)

	if g.logger != nil {
		g.logger.Debug("layout generated",
			"strategy", res.Strategy,
			"seed", res.Seed,
			"size", fmt.Sprintf("%dx%d", g.grid.W, g.grid.H),
			"carved", res.Stats.Carved(),
			"intersections", res.Stats.Intersections,
			"interiors", res.Stats.Interiors,
		)
	}
	return res, nil
}

func (g *Generator) carve(ctx context.Context, rng layout.Source) error {
	_, span := g.tracer.Start(ctx, "mapgen.carve")
	defer span.End()
	return layout.Carve(g.grid, g.cfg.Strategy, rng)
}

func (g *Generator) classify(ctx context.Context) []layout.Placement {
	_, span := g.tracer.Start(ctx, "mapgen.classify")
	defer span.End()
	return layout.Classify(g.grid)
}
