package layout

import "strings"

// Dir is a cardinal direction in grid space.
// North points to increasing Y.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Cardinals lists the four directions in the order walkers sample them.
var Cardinals = [4]Dir{North, East, South, West}

// String returns the name of the direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// WallSet is a set of cardinal directions, one bit per Dir.
type WallSet uint8

// Has reports whether d is in the set.
func (w WallSet) Has(d Dir) bool {
	return w&(1<<d) != 0
}

// With returns the set with d added.
func (w WallSet) With(d Dir) WallSet {
	return w | 1<<d
}

// Len returns the number of directions in the set.
func (w WallSet) Len() int {
	n := 0
	for _, d := range Cardinals {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Dirs returns the directions in the set in North, East, South, West order.
func (w WallSet) Dirs() []Dir {
	dirs := make([]Dir, 0, 4)
	for _, d := range Cardinals {
		if w.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String returns the set as compact letters, e.g. "NES".
func (w WallSet) String() string {
	var sb strings.Builder
	for _, d := range w.Dirs() {
		sb.WriteByte(d.String()[0])
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
