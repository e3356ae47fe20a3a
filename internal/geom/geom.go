// Package geom holds the coordinate type shared by the raster grid,
// block extractor, and navigator — the only geometric primitive the
// Language's codel space needs.
package geom

// Coord is a codel-space coordinate; origin top-left, x rightward, y downward.
type Coord struct {
	X, Y int
}

// Add returns c + d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}
