package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/config"
	"github.com/vovakirdan/mapgen/internal/export"
	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
)

// Output formats for generate and replay.
const (
	formatASCII      = "ascii"
	formatTiles      = "tiles"
	formatPlacements = "placements"
	formatYAML       = "yaml"
)

var (
	flagFormat   string
	flagNoRecord bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a layout and print it",
	Long: `Carve a layout, classify it and print the result.

Formats:
  ascii       - Cell states, North up ('.' empty, '#' hallway, '+' intersection)
  tiles       - Tiles, North up ('~' interior, digit = wall count of a floor tile)
  placements  - One placement per line in row-major order
  yaml        - Placements with world-space tile, minimap and wall anchors

Every run is recorded in the history database unless --no-record is set.

Examples:
  mapgen generate --seed 42
  mapgen generate --archetype sprawl --format tiles
  mapgen generate --strategy slice --width 30 --height 20 --format yaml > level.yaml`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	addGeneratorFlags(generateCmd)
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", formatASCII, "Output format: ascii, tiles, placements, yaml")
	generateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run in history")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	cfg, err := loadGeneratorConfig(cmd)
	exitOnError("loading config", err)

	mcfg, err := cfg.MapgenConfig()
	exitOnError("loading config", err)

	gen, err := newGenerator(mcfg)
	exitOnError("creating generator", err)

	res, err := gen.Generate(cmd.Context())
	exitOnError("generating layout", err)

	exitOnError("writing output", printResult(flagFormat, gen, res, cfg))

	if !flagNoRecord {
		store := openHistory()
		if store != nil {
			recordRun(store, mcfg, cfg.Archetype, res)
			store.Close()
		}
	}
}

// printResult writes res to stdout in the given format.
func printResult(format string, gen *mapgen.Generator, res mapgen.Result, cfg config.GeneratorConfig) error {
	grid := gen.Grid()

	switch format {
	case formatASCII:
		printSummary(res, grid)
		fmt.Print(layout.RenderGrid(grid))
	case formatTiles:
		printSummary(res, grid)
		fmt.Print(layout.RenderPlacements(grid.W, grid.H, res.Placements))
	case formatPlacements:
		for _, p := range res.Placements {
			fmt.Println(layout.FormatPlacement(p))
		}
	case formatYAML:
		doc := export.Build(res, grid.W, grid.H, cfg.Render.TileSize)
		return export.WriteYAML(os.Stdout, doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func printSummary(res mapgen.Result, grid *layout.Grid) {
	s := res.Stats
	fmt.Printf("%s %dx%d seed=%d\n", res.Strategy, grid.W, grid.H, res.Seed)
	fmt.Printf("hallways=%d intersections=%d floors=%d interiors=%d walls=%d\n\n",
		s.Hallways, s.Intersections, s.Floors, s.Interiors, s.Walls)
}

// generateOnce runs a single pass, used by replay.
func generateOnce(ctx context.Context, mcfg mapgen.Config) (*mapgen.Generator, mapgen.Result, error) {
	gen, err := newGenerator(mcfg)
	if err != nil {
		return nil, mapgen.Result{}, err
	}
	res, err := gen.Generate(ctx)
	return gen, res, err
}
