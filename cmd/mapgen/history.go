package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/platform/tui"
	"github.com/vovakirdan/mapgen/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `List recently recorded runs, most recent first. Only the seed,
parameters and summary of each run are stored; use 'mapgen replay <id>'
to regenerate a layout.

Examples:
  mapgen history
  mapgen history --limit 50
  mapgen history -i          # browse and replay interactively
  mapgen history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table and replay the selected one")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, _ []string) {
	store := mustOpenHistory()
	defer store.Close()

	if flagClear {
		exitOnError("clearing history", store.ClearRuns())
		fmt.Println("History cleared.")
		return
	}

	if flagInteractive {
		run, err := tui.RunHistory(store)
		exitOnError("browsing history", err)
		if run != nil {
			replayRun(cmd, *run, formatASCII)
		}
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	exitOnError("retrieving runs", err)

	total, err := store.CountRuns()
	exitOnError("counting runs", err)

	fmt.Printf("Run History (%d of %d)\n", len(runs), total)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mapgen generate' to record the first one!")
		return
	}

	printRunTable(runs)
}

func printRunTable(runs []storage.RunRecord) {
	fmt.Printf("  %-8s  %-9s  %-11s  %-7s  %-20s  %-6s  %s\n",
		"ID", "Archetype", "Strategy", "Size", "Seed", "Carved", "Date")
	fmt.Printf("  %-8s  %-9s  %-11s  %-7s  %-20s  %-6s  %s\n",
		"--", "---------", "--------", "----", "----", "------", "----")

	for _, r := range runs {
		row := tui.HistoryRow(r)
		fmt.Printf("  %-8s  %-9s  %-11s  %-7s  %-20s  %-6s  %s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}
}
