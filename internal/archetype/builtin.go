package archetype

import "github.com/vovakirdan/mapgen/internal/config"

func init() {
	Register(Archetype{
		ID:          "maze",
		Title:       "Maze",
		Description: "A single walker wandering from the centre; long thin corridors.",
		Apply: func(cfg *config.GeneratorConfig) {
			cfg.Strategy = "random-walk"
			cfg.Walkers = config.WalkerConfig{Count: 1, Lifetime: 50}
		},
	})

	Register(Archetype{
		ID:          "sprawl",
		Title:       "Sprawl",
		Description: "Several walkers sharing a spawn; branching halls with open pockets.",
		Apply: func(cfg *config.GeneratorConfig) {
			cfg.Strategy = "random-walk"
			cfg.Walkers = config.WalkerConfig{Count: 4, Lifetime: 80}
		},
	})

	Register(Archetype{
		ID:          "arena",
		Title:       "Arena",
		Description: "Three rows and three columns sliced across the map; a cross-hatch of long halls.",
		Apply: func(cfg *config.GeneratorConfig) {
			cfg.Strategy = "slice"
		},
	})
}
