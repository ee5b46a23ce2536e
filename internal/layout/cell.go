// Package layout provides the procedural level-layout generator.
// It carves hallways into a grid and classifies the result into tile
// placements for a renderer. The package is UI-agnostic, performs no I/O
// and is deterministic for a given random source.
package layout

// CellState is the carving state of a single grid cell.
// States only ever move forward: Empty -> Hallway -> Intersection.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellHallway
	CellIntersection
)

// String returns the name of the state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellHallway:
		return "Hallway"
	case CellIntersection:
		return "Intersection"
	default:
		return "Unknown"
	}
}

// Char returns the debug overlay character for the state.
func (s CellState) Char() rune {
	switch s {
	case CellHallway:
		return '#'
	case CellIntersection:
		return '+'
	default:
		return '.'
	}
}

// next returns the state one upgrade step ahead.
func (s CellState) next() CellState {
	if s >= CellIntersection {
		return CellIntersection
	}
	return s + 1
}

// Coord is an integer grid position.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}
