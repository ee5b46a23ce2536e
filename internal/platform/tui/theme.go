package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// LayoutTheme contains the visual styles for the layout viewer.
type LayoutTheme struct {
	// Cell state overlay
	EmptyCell        lipgloss.Style
	HallwayCell      lipgloss.Style
	IntersectionCell lipgloss.Style

	// Tile view
	FloorTile    lipgloss.Style
	InteriorTile lipgloss.Style

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDWarning  lipgloss.Style
	HUDControls lipgloss.Style
	MapBorder   lipgloss.Style
}

// DefaultLayoutTheme returns the default visual theme.
// Cell colours follow the editor overlay: gray empty, white hallway, cyan intersection.
func DefaultLayoutTheme() LayoutTheme {
	return LayoutTheme{
		EmptyCell:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HallwayCell:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		IntersectionCell: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),

		FloorTile:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")), // Sand
		InteriorTile: lipgloss.NewStyle().Foreground(lipgloss.Color("70")),  // Grass

		HUDTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HUDWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MapBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

// cellStyle returns the style for a cell state.
func (t LayoutTheme) cellStyle(r rune) lipgloss.Style {
	switch r {
	case '#':
		return t.HallwayCell
	case '+':
		return t.IntersectionCell
	default:
		return t.EmptyCell
	}
}
