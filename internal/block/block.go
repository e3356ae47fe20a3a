// Package block implements 4-connected flood fill: given a seed
// codel, compute the maximal region of same-colored codels reachable
// from it (spec §4.2).
package block

import (
	"github.com/pietgo/piet/internal/chroma"
	"github.com/pietgo/piet/internal/geom"
	"github.com/pietgo/piet/internal/pool"
	"github.com/pietgo/piet/internal/raster"
)

// Block is a maximal 4-connected set of same-colored codels.
type Block struct {
	Color  chroma.RGB
	Coords []geom.Coord // insertion order from the flood fill, seed first
}

// Size is the block's cardinality.
func (b *Block) Size() int {
	return len(b.Coords)
}

// Contains reports whether c is a member of the block.
func (b *Block) Contains(c geom.Coord) bool {
	for _, m := range b.Coords {
		if m == c {
			return true
		}
	}
	return false
}

var directions = [4]geom.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// Extract returns the 4-connected component of seed's color
// containing seed. The visited set is a pooled bitset (package pool)
// rather than a per-call allocation, since the interpreter loop calls
// Extract once per navigation step.
func Extract(grid *raster.Grid, seed geom.Coord) *Block {
	color, ok := grid.At(seed)
	if !ok {
		return &Block{}
	}

	numCodels := grid.Width * grid.Height
	bits := pool.GetBitset(numCodels)
	defer pool.PutBitset(bits)

	index := func(c geom.Coord) int { return c.Y*grid.Width + c.X }
	visited := func(i int) bool { return bits[i>>3]&(1<<uint(i&7)) != 0 }
	visit := func(i int) { bits[i>>3] |= 1 << uint(i&7) }

	stack := make([]geom.Coord, 0, 64)
	stack = append(stack, seed)
	visit(index(seed))

	var coords []geom.Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		coords = append(coords, c)

		for _, d := range directions {
			n := c.Add(d)
			if !grid.InBounds(n) {
				continue
			}
			i := index(n)
			if visited(i) {
				continue
			}
			nc, _ := grid.At(n)
			if nc != color {
				continue
			}
			visit(i)
			stack = append(stack, n)
		}
	}

	return &Block{Color: color, Coords: coords}
}

// SlideFurthest walks from seed in direction step, one codel at a
// time, stopping at the last codel whose color matches seed's before
// either the color changes or the image edge is reached. It backs the
// white-block edge case of spec §4.2 ("the extractor returns a
// special singleton containing only the furthest codel reached by
// sliding"), which the navigator uses while traversing white regions.
func SlideFurthest(grid *raster.Grid, seed geom.Coord, step geom.Coord) geom.Coord {
	color, ok := grid.At(seed)
	if !ok {
		return seed
	}
	cur := seed
	for {
		next := cur.Add(step)
		nc, ok := grid.At(next)
		if !ok || nc != color {
			return cur
		}
		cur = next
	}
}
