package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mapgen/internal/mapgen"
	"github.com/vovakirdan/mapgen/internal/platform/tui"
	"github.com/vovakirdan/mapgen/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse layouts interactively",
	Long: `Open the layout viewer. Every seed you visit is recorded in history
unless --no-record is set.

Controls:
  n/Right    - Next seed
  p/Left     - Previous seed
  r/Space    - Random seed
  t/Tab      - Toggle cell states and tiles
  Q/Ctrl+C   - Quit

Examples:
  mapgen view
  mapgen view --archetype arena
  mapgen view --width 30 --height 16 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	addGeneratorFlags(viewCmd)
	viewCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record visited seeds in history")
}

func runView(cmd *cobra.Command, _ []string) {
	cfg, err := loadGeneratorConfig(cmd)
	exitOnError("loading config", err)

	mcfg, err := cfg.MapgenConfig()
	exitOnError("loading config", err)

	// Each cell is drawn two columns wide inside a border
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if needW, needH := mcfg.Width*2+2, mcfg.Height+8; needW > w || needH > h {
			fmt.Fprintf(os.Stderr, "Warning: a %dx%d grid needs a %dx%d terminal, have %dx%d\n",
				mcfg.Width, mcfg.Height, needW, needH, w, h)
		}
	}

	gen, err := newGenerator(mcfg)
	exitOnError("creating generator", err)

	var opts []tui.ViewerOption
	var store *storage.Store
	if !flagNoRecord {
		store = openHistory()
		opts = append(opts, tui.WithRecorder(func(c mapgen.Config, res mapgen.Result) {
			recordRun(store, c, cfg.Archetype, res)
		}))
	}

	title := "MAPGEN"
	if cfg.Archetype != "" {
		title = fmt.Sprintf("MAPGEN - %s", cfg.Archetype)
	}
	runErr := tui.RunViewer(gen, title, opts...)

	if store != nil {
		store.Close()
	}
	exitOnError("running viewer", runErr)
}
