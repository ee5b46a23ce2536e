package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapgen/internal/archetype"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archetype presets",
	Long:  `Shows the named archetype presets that can be passed with --archetype.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	archetypes := archetype.List()

	if len(archetypes) == 0 {
		fmt.Println("No archetypes available.")
		return
	}

	idStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println("Available archetypes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, a := range archetypes {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, a := range archetypes {
		id := idStyle.Render(fmt.Sprintf("%-*s", maxIDLen, a.ID))
		fmt.Printf("  %s  %s\n", id, a.Title)
		fmt.Printf("  %-*s  %s\n", maxIDLen, "", descStyle.Render(a.Description))
	}

	fmt.Println()
	fmt.Println("Run 'mapgen generate --archetype <id>' to use a preset.")
}
