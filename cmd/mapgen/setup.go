package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/archetype"
	"github.com/vovakirdan/mapgen/internal/config"
	"github.com/vovakirdan/mapgen/internal/mapgen"
	"github.com/vovakirdan/mapgen/internal/storage"
)

// Generator flags shared by generate, view and serve.
var (
	flagArchetype string
	flagWidth     int
	flagHeight    int
	flagStrategy  string
	flagWalkers   int
	flagLifetime  int
)

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagArchetype, "archetype", "a", "", "Archetype preset (see 'mapgen list')")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells")
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", "Carve strategy: random-walk or slice")
	cmd.Flags().IntVar(&flagWalkers, "walkers", 0, "Number of random walkers")
	cmd.Flags().IntVar(&flagLifetime, "lifetime", 0, "Steps per walker")
}

// loadGeneratorConfig resolves the generator config for cmd.
// Precedence: config file, environment, archetype preset, flags.
func loadGeneratorConfig(cmd *cobra.Command) (config.GeneratorConfig, error) {
	cfg, err := config.LoadGenerator(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	id := cfg.Archetype
	if flagArchetype != "" {
		id = flagArchetype
	}
	if err := archetype.Apply(&cfg, id); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("strategy") {
		cfg.Strategy = flagStrategy
	}
	if flags.Changed("walkers") {
		cfg.Walkers.Count = flagWalkers
	}
	if flags.Changed("lifetime") {
		cfg.Walkers.Lifetime = flagLifetime
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

// newGenerator builds a generator for cfg wired to the CLI logger.
func newGenerator(cfg mapgen.Config) (*mapgen.Generator, error) {
	return mapgen.New(cfg, mapgen.WithLogger(logger))
}

// openHistory opens the run history, or returns nil with a warning.
func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenHistory opens the run history or exits.
func mustOpenHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// recordRun saves a finished pass. Failures only warn.
func recordRun(store *storage.Store, cfg mapgen.Config, archetypeID string, res mapgen.Result) {
	if store == nil {
		return
	}
	id, err := store.SaveRun(storage.NewRunRecord(cfg, archetypeID, res))
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", id, "seed", res.Seed)
}

func exitOnError(action string, err error) {
	if err == nil {
		return
	}
	shutdownTelemetry()
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
