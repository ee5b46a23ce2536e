package layout

// Walker is a carving agent that takes random single steps inside a grid.
// It only reads the grid for bounds checks; the caller decides what to carve.
type Walker struct {
	pos  Coord
	grid *Grid // not owned
}

// NewWalker creates a walker at start on grid g.
func NewWalker(start Coord, g *Grid) *Walker {
	return &Walker{pos: start, grid: g}
}

// Position returns the walker's current cell.
func (w *Walker) Position() Coord {
	return w.pos
}

// Move steps one cell in a uniformly random cardinal direction, resampling
// until the step lands in bounds, and returns the new position.
// NewGrid rejects 1x1 grids, so some direction is always valid.
func (w *Walker) Move(rng Source) Coord {
	for {
		next := w.pos.Step(Cardinals[rng.Intn(len(Cardinals))])
		if w.grid.InBounds(next) {
			w.pos = next
			return next
		}
	}
}
