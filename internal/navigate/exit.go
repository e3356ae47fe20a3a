package navigate

import (
	"github.com/pietgo/piet/internal/block"
	"github.com/pietgo/piet/internal/geom"
)

// ExitCodel picks the single codel within blk that the interpreter
// attempts to leave from, given the current DP and CC (spec §4.3).
//
// The codel is chosen in two passes: first, the codels furthest along
// DP; second, among those, the one furthest along DP rotated 90
// degrees clockwise (CC right) or counterclockwise (CC left). The two
// projections always pick out exactly one codel, since a tie in both
// would mean two distinct codels at the same position.
func ExitCodel(blk *block.Block, dp Direction, cc Chooser) geom.Coord {
	primary := dp.Vector()
	var secondary geom.Coord
	if cc == CCRight {
		secondary = dp.Clockwise().Vector()
	} else {
		secondary = dp.CounterClockwise().Vector()
	}

	best := blk.Coords[0]
	bestPrimary := project(best, primary)
	bestSecondary := project(best, secondary)
	for _, c := range blk.Coords[1:] {
		p := project(c, primary)
		s := project(c, secondary)
		if p > bestPrimary || (p == bestPrimary && s > bestSecondary) {
			best, bestPrimary, bestSecondary = c, p, s
		}
	}
	return best
}

func project(c, v geom.Coord) int {
	return c.X*v.X + c.Y*v.Y
}
