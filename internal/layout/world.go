package layout

// DefaultTileSize is the world-space edge length of one grid cell.
const DefaultTileSize = 10.0

// Wall and minimap offsets in world units.
const (
	wallHeight    = 2.0
	wallInset     = 0.5
	minimapOffset = -10.0
)

// Vec3 is a world-space position. Y is up; grid Y maps to world Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// TileOrigin returns the world position of the tile at c.
func TileOrigin(c Coord, tileSize float64) Vec3 {
	return Vec3{X: float64(c.X) * tileSize, Z: float64(c.Y) * tileSize}
}

// MinimapOrigin returns where the minimap marker for c sits, directly
// below the tile.
func MinimapOrigin(c Coord, tileSize float64) Vec3 {
	return TileOrigin(c, tileSize).Add(Vec3{Y: minimapOffset})
}

// WallAnchor returns the position and yaw in degrees of the wall segment on
// side d of the tile at c. Walls sit on the edge midpoint facing outward,
// nudged half a unit along the edge so adjoining segments overlap cleanly.
func WallAnchor(c Coord, d Dir, tileSize float64) (pos Vec3, yaw float64) {
	half := tileSize / 2
	var off Vec3
	switch d {
	case North:
		off, yaw = Vec3{X: -wallInset, Y: wallHeight, Z: half}, 0
	case East:
		off, yaw = Vec3{X: half, Y: wallHeight, Z: wallInset}, 90
	case South:
		off, yaw = Vec3{X: wallInset, Y: wallHeight, Z: -half}, 180
	case West:
		off, yaw = Vec3{X: -half, Y: wallHeight, Z: -wallInset}, 270
	}
	return TileOrigin(c, tileSize).Add(off), yaw
}
