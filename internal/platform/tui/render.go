package tui

import (
	"strings"

	"github.com/vovakirdan/mapgen/internal/layout"
)

// RenderCells renders the cell-state overlay, North up, two columns per
// cell so the map looks square in a terminal.
func RenderCells(g *layout.Grid, theme LayoutTheme) string {
	return styleRows(layout.RenderGrid(g), func(r rune) string {
		return theme.cellStyle(r).Render(string(r) + " ")
	})
}

// RenderTiles renders the classified tiles: '~' interior, wall count for
// floor tiles, '.' for empty cells.
func RenderTiles(w, h int, placements []layout.Placement, theme LayoutTheme) string {
	return styleRows(layout.RenderPlacements(w, h, placements), func(r rune) string {
		cell := string(r) + " "
		switch {
		case r == '~':
			return theme.InteriorTile.Render(cell)
		case r >= '0' && r <= '4':
			return theme.FloorTile.Render(cell)
		default:
			return theme.EmptyCell.Render(cell)
		}
	})
}

// styleRows applies style to every rune of a newline-separated ASCII map.
func styleRows(ascii string, style func(rune) string) string {
	lines := strings.Split(strings.TrimSuffix(ascii, "\n"), "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, r := range line {
			sb.WriteString(style(r))
		}
	}
	return sb.String()
}
