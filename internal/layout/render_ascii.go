package layout

import (
	"fmt"
	"strings"
)

// RenderGrid renders the cell states, top row first so that North is up.
// Empty='.', Hallway='#', Intersection='+'.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.cells[g.index(C(x, y))].Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGridCompact renders the grid as a single row-major line (for hashing/comparison).
func RenderGridCompact(g *Grid) string {
	var sb strings.Builder
	for _, s := range g.cells {
		sb.WriteRune(s.Char())
	}
	return sb.String()
}

// RenderPlacements renders a classified map, North up.
// Interior tiles are '~', floor tiles show their wall count, empty cells '.'.
func RenderPlacements(w, h int, placements []Placement) string {
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(".", w))
	}
	for _, p := range placements {
		if p.Coord.X < 0 || p.Coord.X >= w || p.Coord.Y < 0 || p.Coord.Y >= h {
			continue
		}
		r := '~'
		if p.Kind == TileFloor {
			r = rune('0' + p.Walls.Len())
		}
		rows[p.Coord.Y][p.Coord.X] = r
	}

	var sb strings.Builder
	for y := h - 1; y >= 0; y-- {
		sb.WriteString(string(rows[y]))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatPlacement renders a placement as "x,y Kind walls".
func FormatPlacement(p Placement) string {
	return fmt.Sprintf("%d,%d %s %s", p.Coord.X, p.Coord.Y, p.Kind, p.Walls)
}
