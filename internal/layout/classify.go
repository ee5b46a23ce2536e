package layout

// TileKind is the visual tile a carved cell receives.
type TileKind uint8

const (
	// TileFloor is a carved cell with at least one empty neighbour.
	TileFloor TileKind = iota
	// TileInterior is a carved cell whose 8 neighbours are all carved.
	TileInterior
)

// String returns the name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "Floor"
	case TileInterior:
		return "Interior"
	default:
		return "Unknown"
	}
}

// Placement tells a renderer what to build at one carved cell.
type Placement struct {
	Coord Coord
	Kind  TileKind
	Walls WallSet // edges bordering an empty or out-of-bounds cell
}

// diagonals are the four corner offsets checked for interior tiles.
var diagonals = [4]Coord{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Classify scans g once and returns one placement per carved cell,
// in row-major order (y ascending, then x ascending).
// Neighbours outside the grid count as empty.
func Classify(g *Grid) []Placement {
	placements := make([]Placement, 0, g.CarvedCount())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if !g.occupied(c) {
				continue
			}
			placements = append(placements, classifyCell(g, c))
		}
	}
	return placements
}

// classifyCell builds the placement for a single carved cell.
func classifyCell(g *Grid, c Coord) Placement {
	var walls WallSet
	for _, d := range Cardinals {
		if !g.occupied(c.Step(d)) {
			walls = walls.With(d)
		}
	}

	enclosed := walls == 0
	for _, off := range diagonals {
		if !enclosed {
			break
		}
		enclosed = g.occupied(c.Add(off.X, off.Y))
	}

	kind := TileFloor
	if enclosed {
		kind = TileInterior
	}
	return Placement{Coord: c, Kind: kind, Walls: walls}
}
