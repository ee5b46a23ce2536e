package layout

// Stats summarises one generation pass.
type Stats struct {
	Hallways      int
	Intersections int
	Floors        int
	Interiors     int
	Walls         int
}

// Carved returns the number of non-empty cells.
func (s Stats) Carved() int {
	return s.Hallways + s.Intersections
}

// Summarize counts cell states in g and tile kinds and walls in placements.
func Summarize(g *Grid, placements []Placement) Stats {
	st := Stats{
		Hallways:      g.Count(CellHallway),
		Intersections: g.Count(CellIntersection),
	}
	for _, p := range placements {
		if p.Kind == TileInterior {
			st.Interiors++
		} else {
			st.Floors++
		}
		st.Walls += p.Walls.Len()
	}
	return st
}
