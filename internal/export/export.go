// Package export turns generation results into documents a renderer can
// consume: every placement with its world-space tile, minimap and wall
// anchors.
package export

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
)

// Document is the exported form of one generation pass.
type Document struct {
	Seed     uint64  `yaml:"seed"`
	Strategy string  `yaml:"strategy"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
	Stats    Stats   `yaml:"stats"`
	Tiles    []Tile  `yaml:"tiles"`
}

// Stats mirrors layout.Stats.
type Stats struct {
	Hallways      int `yaml:"hallways"`
	Intersections int `yaml:"intersections"`
	Floors        int `yaml:"floors"`
	Interiors     int `yaml:"interiors"`
	Walls         int `yaml:"walls"`
}

// Tile is one placement with its world anchors.
type Tile struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Kind    string `yaml:"kind"`
	Origin  Vec    `yaml:"origin,flow"`
	Minimap Vec    `yaml:"minimap,flow"`
	Walls   []Wall `yaml:"walls,omitempty"`
}

// Wall is one boundary wall segment.
type Wall struct {
	Side     string  `yaml:"side"`
	Position Vec     `yaml:"position,flow"`
	Yaw      float64 `yaml:"yaw"`
}

// Vec is a world-space position.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func vec(v layout.Vec3) Vec {
	return Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Build converts a result on a w x h grid into a document.
// Tiles keep the placement order (row-major).
func Build(res mapgen.Result, w, h int, tileSize float64) Document {
	doc := Document{
		Seed:     res.Seed,
		Strategy: res.Strategy,
		Width:    w,
		Height:   h,
		TileSize: tileSize,
		Stats: Stats{
			Hallways:      res.Stats.Hallways,
			Intersections: res.Stats.Intersections,
			Floors:        res.Stats.Floors,
			Interiors:     res.Stats.Interiors,
			Walls:         res.Stats.Walls,
		},
		Tiles: make([]Tile, 0, len(res.Placements)),
	}

	for _, p := range res.Placements {
		t := Tile{
			X:       p.Coord.X,
			Y:       p.Coord.Y,
			Kind:    strings.ToLower(p.Kind.String()),
			Origin:  vec(layout.TileOrigin(p.Coord, tileSize)),
			Minimap: vec(layout.MinimapOrigin(p.Coord, tileSize)),
		}
		for _, d := range p.Walls.Dirs() {
			pos, yaw := layout.WallAnchor(p.Coord, d, tileSize)
			t.Walls = append(t.Walls, Wall{
				Side:     strings.ToLower(d.String()),
				Position: vec(pos),
				Yaw:      yaw,
			})
		}
		doc.Tiles = append(doc.Tiles, t)
	}
	return doc
}

// WriteYAML encodes doc to w.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return enc.Close()
}
