// Package config provides YAML-based generator configuration loading.
package config

import (
	"fmt"

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
)

// GeneratorConfig contains all configuration for a generation run.
type GeneratorConfig struct {
	Archetype string       `yaml:"archetype,omitempty"` // Named preset applied on top, e.g. "arena"
	Seed      uint64       `yaml:"seed"`                // 0 = random based on time
	Grid      GridConfig   `yaml:"grid"`
	Strategy  string       `yaml:"strategy"` // "random-walk" or "slice"
	Walkers   WalkerConfig `yaml:"walkers"`
	Render    RenderConfig `yaml:"render"`
}

// GridConfig defines the grid dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WalkerConfig defines random-walk parameters. Ignored by slice carving.
type WalkerConfig struct {
	Count    int `yaml:"count"`
	Lifetime int `yaml:"lifetime"`
}

// RenderConfig defines grid-to-world mapping for exported placements.
type RenderConfig struct {
	TileSize float64 `yaml:"tile_size"`
}

// BuildStrategy converts the strategy section into a layout strategy.
func (c GeneratorConfig) BuildStrategy() (layout.Strategy, error) {
	s, err := layout.ParseStrategy(c.Strategy, c.Walkers.Count, c.Walkers.Lifetime)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// Validate checks the config without allocating a grid.
func (c GeneratorConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 || (c.Grid.Width == 1 && c.Grid.Height == 1) {
		return fmt.Errorf("config: %w: %dx%d", layout.ErrInvalidDimension, c.Grid.Width, c.Grid.Height)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %v", c.Render.TileSize)
	}
	_, err := c.BuildStrategy()
	return err
}

// MapgenConfig converts the config into generator settings.
func (c GeneratorConfig) MapgenConfig() (mapgen.Config, error) {
	if err := c.Validate(); err != nil {
		return mapgen.Config{}, err
	}
	s, err := c.BuildStrategy()
	if err != nil {
		return mapgen.Config{}, err
	}
	return mapgen.Config{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		Strategy: s,
		Seed:     c.Seed,
	}, nil
}
