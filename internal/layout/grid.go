package layout

import (
	"errors"
	"fmt"
)

// Default grid dimensions.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

var (
	// ErrInvalidDimension is returned when a grid cannot be built with the
	// requested size.
	ErrInvalidDimension = errors.New("layout: invalid grid dimension")

	// ErrOutOfRange is returned when a coordinate outside the grid is queried
	// or upgraded directly.
	ErrOutOfRange = errors.New("layout: coordinate out of range")
)

// Grid is the carving surface.
// Cells are stored in row-major order: index = y*W + x.
// The only way to change a cell is Upgrade, so states never move backwards.
type Grid struct {
	W     int
	H     int
	cells []CellState
}

// NewGrid creates a grid with every cell empty.
// A 1x1 grid is rejected: no walker step from its only cell stays in bounds.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if w == 1 && h == 1 {
		return nil, fmt.Errorf("%w: 1x1 grid has no walkable step", ErrInvalidDimension)
	}
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]CellState, w*h),
	}, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Center returns the spawn cell used by walkers, (W/2, H/2).
func (g *Grid) Center() Coord {
	return C(g.W/2, g.H/2)
}

// StateAt returns the state of the cell at c.
func (g *Grid) StateAt(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return CellEmpty, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfRange, c, g.W, g.H)
	}
	return g.cells[g.index(c)], nil
}

// occupied reports whether c is a carved cell. Out-of-bounds counts as empty.
func (g *Grid) occupied(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != CellEmpty
}

// Upgrade advances the cell at c one step:
// Empty -> Hallway, Hallway -> Intersection, Intersection stays.
func (g *Grid) Upgrade(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: upgrade %v in %dx%d grid", ErrOutOfRange, c, g.W, g.H)
	}
	i := g.index(c)
	g.cells[i] = g.cells[i].next()
	return nil
}

// Reset returns every cell to CellEmpty.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

// Cells returns a row-major copy of the cell states.
func (g *Grid) Cells() []CellState {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: g.Cells(),
	}
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(state CellState) int {
	count := 0
	for _, s := range g.cells {
		if s == state {
			count++
		}
	}
	return count
}

// CarvedCount returns the number of non-empty cells.
func (g *Grid) CarvedCount() int {
	return len(g.cells) - g.Count(CellEmpty)
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, s := range g.cells {
		if s != other.cells[i] {
			return false
		}
	}
	return true
}
