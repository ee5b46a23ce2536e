package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mapgen/internal/layout"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	if err := yaml.Unmarshal(defaultGeneratorYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultGeneratorConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultGeneratorConfig())
	}
}

func TestLoadGeneratorCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("strategy: slice\nseed: 77\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadGenerator(path)
	if err != nil {
		t.Fatalf("LoadGenerator failed: %v", err)
	}
	if cfg.Strategy != "slice" || cfg.Seed != 77 {
		t.Errorf("unexpected config %+v", cfg)
	}
	// Unset keys keep defaults
	if cfg.Grid.Width != layout.DefaultWidth || cfg.Render.TileSize != layout.DefaultTileSize {
		t.Errorf("defaults lost: %+v", cfg)
	}

	s, err := cfg.BuildStrategy()
	if err != nil {
		t.Fatalf("BuildStrategy failed: %v", err)
	}
	if _, ok := s.(layout.SliceCarve); !ok {
		t.Errorf("expected SliceCarve, got %T", s)
	}
}

func TestLoadGeneratorErrors(t *testing.T) {
	if _, err := LoadGenerator(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadGenerator(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
		want   error
	}{
		{"defaults", func(*GeneratorConfig) {}, nil},
		{"zero width", func(c *GeneratorConfig) { c.Grid.Width = 0 }, layout.ErrInvalidDimension},
		{"single cell", func(c *GeneratorConfig) { c.Grid.Width, c.Grid.Height = 1, 1 }, layout.ErrInvalidDimension},
		{"unknown strategy", func(c *GeneratorConfig) { c.Strategy = "bsp" }, layout.ErrInvalidStrategy},
		{"no walkers", func(c *GeneratorConfig) { c.Walkers.Count = 0 }, layout.ErrInvalidStrategy},
		{"slice ignores walkers", func(c *GeneratorConfig) { c.Strategy, c.Walkers.Count = "slice", 0 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}

	cfg := DefaultGeneratorConfig()
	cfg.Render.TileSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero tile size")
	}
}

func TestMapgenConfig(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Seed = 9
	cfg.Walkers.Count = 3

	mc, err := cfg.MapgenConfig()
	if err != nil {
		t.Fatalf("MapgenConfig failed: %v", err)
	}
	want := layout.RandomWalk{Walkers: 3, Lifetime: layout.DefaultLifetime}
	if mc.Width != 20 || mc.Height != 20 || mc.Seed != 9 || mc.Strategy != want {
		t.Errorf("unexpected mapgen config %+v", mc)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWidth, "32")
	t.Setenv(EnvHeight, "24")
	t.Setenv(EnvStrategy, "slice")
	t.Setenv(EnvSeed, "123")
	t.Setenv(EnvArchetype, "arena")

	cfg := DefaultGeneratorConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Grid.Width != 32 || cfg.Grid.Height != 24 || cfg.Strategy != "slice" || cfg.Seed != 123 || cfg.Archetype != "arena" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Walkers.Count != layout.DefaultWalkers {
		t.Errorf("unset variable changed walkers to %d", cfg.Walkers.Count)
	}

	t.Setenv(EnvWalkers, "many")
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected error for non-numeric walker count")
	}
}
