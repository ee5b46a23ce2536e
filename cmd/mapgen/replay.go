package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/config"
	"github.com/vovakirdan/mapgen/internal/storage"
)

var flagReplayFormat string

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Regenerate a recorded run",
	Long: `Regenerate the layout of a recorded run from its seed and parameters.
A unique ID prefix (as shown by 'mapgen history') is enough.

Examples:
  mapgen replay 3f2a9c1e
  mapgen replay 3f2a9c1e --format yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&flagReplayFormat, "format", "f", formatASCII, "Output format: ascii, tiles, placements, yaml")
}

func runReplay(cmd *cobra.Command, args []string) {
	store := mustOpenHistory()
	run, err := findRun(store, args[0])
	store.Close()
	exitOnError("finding run", err)

	replayRun(cmd, *run, flagReplayFormat)
}

// findRun looks a run up by full ID or by unique prefix among recent runs.
func findRun(store *storage.Store, id string) (*storage.RunRecord, error) {
	run, err := store.RunByID(id)
	if err != nil {
		return nil, err
	}
	if run != nil {
		return run, nil
	}

	runs, err := store.RecentRuns(1000)
	if err != nil {
		return nil, err
	}
	var match *storage.RunRecord
	for i := range runs {
		if !strings.HasPrefix(runs[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("run prefix %q is ambiguous", id)
		}
		match = &runs[i]
	}
	if match == nil {
		return nil, fmt.Errorf("no run with id %q", id)
	}
	return match, nil
}

// replayRun regenerates run and prints it. The regenerated stats must match
// the recorded ones.
func replayRun(cmd *cobra.Command, run storage.RunRecord, format string) {
	mcfg, err := run.MapgenConfig()
	exitOnError("rebuilding run", err)

	gen, res, err := generateOnce(cmd.Context(), mcfg)
	exitOnError("generating layout", err)

	if res.Stats.Hallways != run.Hallways || res.Stats.Intersections != run.Intersections ||
		res.Stats.Interiors != run.Interiors || res.Stats.Walls != run.Walls {
		logger.Warn("replayed layout differs from recorded run", "id", run.ID)
	}

	exitOnError("writing output", printResult(format, gen, res, config.DefaultGeneratorConfig()))

	if format != formatYAML && format != formatPlacements {
		fmt.Fprintf(os.Stdout, "\nreplayed run %s\n", run.ID)
	}
}
