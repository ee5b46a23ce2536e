// mapgen generates hallway layouts on a grid and classifies them into
// floor, interior and wall placements.
//
// Usage:
//
//	mapgen generate          - Generate a layout and print it
//	mapgen list              - List archetype presets
//	mapgen view              - Browse layouts interactively
//	mapgen serve             - Serve the layout viewer over SSH
//	mapgen history           - Show recorded runs
//	mapgen replay <id>       - Regenerate a recorded run
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set history database path (default: ~/.mapgen/history.db)
//	--config <path> - Use a custom generator config YAML
//	--verbose       - Enable debug logging
//	--trace         - Export OpenTelemetry traces over OTLP HTTP
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/telemetry"
)

var (
	// Global flags
	flagSeed    uint64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
	flagTrace   bool
)

var (
	logger            *log.Logger
	telemetryShutdown func(context.Context) error
)

func main() {
	// Optional local .env with MAPGEN_* and OTEL_* variables
	_ = godotenv.Load()

	err := rootCmd.Execute()
	shutdownTelemetry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mapgen",
	Short: "mapgen - Procedural hallway layouts",
	Long: `mapgen carves hallway layouts into a grid with random walkers or
slice carving, then classifies every carved cell into a floor or interior
tile with boundary walls.

Available commands:
  generate - Generate a layout and print it
  list     - Show archetype presets
  view     - Browse layouts by seed in the terminal
  serve    - Start SSH server for the layout viewer
  history  - Show recorded runs
  replay   - Regenerate a recorded run from its seed

Examples:
  mapgen generate --seed 42
  mapgen generate --archetype arena --format tiles
  mapgen view --archetype sprawl
  mapgen replay 3f2a9c1e`,
	PersistentPreRunE: setupRuntime,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mapgen/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom generator config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "Export traces via OTLP HTTP (OTEL_EXPORTER_OTLP_ENDPOINT)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
}

// setupRuntime builds the logger and, with --trace, the tracer provider.
func setupRuntime(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mapgen",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagTrace {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			return fmt.Errorf("cannot set up tracing: %w", err)
		}
		telemetryShutdown = shutdown
		logger.Debug("tracing enabled")
	}
	return nil
}

func shutdownTelemetry() {
	if telemetryShutdown == nil {
		return
	}
	if err := telemetryShutdown(context.Background()); err != nil && logger != nil {
		logger.Warn("could not flush traces", "error", err)
	}
	telemetryShutdown = nil
}
