package config

import (
	_ "embed"

	"github.com/vovakirdan/mapgen/internal/layout"
)

//go:embed defaults/mapgen.yaml
var defaultGeneratorYAML []byte

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Grid: GridConfig{
			Width:  layout.DefaultWidth,
			Height: layout.DefaultHeight,
		},
		Strategy: "random-walk",
		Walkers: WalkerConfig{
			Count:    layout.DefaultWalkers,
			Lifetime: layout.DefaultLifetime,
		},
		Render: RenderConfig{
			TileSize: layout.DefaultTileSize,
		},
	}
}
