package navigate

import (
	"github.com/pietgo/piet/internal/block"
	"github.com/pietgo/piet/internal/chroma"
	"github.com/pietgo/piet/internal/geom"
	"github.com/pietgo/piet/internal/raster"
)

// maxAttempts is the number of (exit attempt, escalate) rounds the
// interpreter tries before concluding it is trapped and halting: four
// DP rotations, each tried with both CC settings.
const maxAttempts = 8

// State is the interpreter's full navigational state between steps.
type State struct {
	Pos geom.Coord
	DP  Direction
	CC  Chooser
}

// slideState is the (position, DP) pair used to detect a white slide
// that has returned to a state it already tried, which would
// otherwise escalate forever between a small ring of white codels.
type slideState struct {
	pos geom.Coord
	dp  Direction
}

func classify(grid *raster.Grid, c geom.Coord) chroma.Color {
	rgb, ok := grid.At(c)
	if !ok {
		return chroma.Color{Kind: chroma.KindBlack}
	}
	return chroma.Fold(chroma.Classify(rgb))
}

// Step advances from st by one block transition: either a normal
// chromatic block exit, or — when standing on a white codel — a
// slide through consecutive white codels to the next non-white one.
// It reports false when the interpreter is trapped and must halt.
func Step(grid *raster.Grid, st State) (State, bool) {
	if classify(grid, st.Pos).Kind == chroma.KindWhite {
		return stepWhite(grid, st)
	}
	return stepChromatic(grid, st)
}

func stepChromatic(grid *raster.Grid, st State) (State, bool) {
	blk := block.Extract(grid, st.Pos)
	dp, cc := st.DP, st.CC

	for attempts := 0; attempts < maxAttempts; attempts++ {
		exit := ExitCodel(blk, dp, cc)
		next := exit.Add(dp.Vector())
		if grid.InBounds(next) && classify(grid, next).Kind != chroma.KindBlack {
			return State{Pos: next, DP: dp, CC: cc}, true
		}
		if attempts%2 == 0 {
			cc = cc.Toggle()
		} else {
			dp = dp.Clockwise()
		}
	}
	return st, false
}

// slideWhite rides consecutive white codels from pos in direction dp,
// using the block extractor's SlideFurthest to skip each uniformly
// colored white-like run in one jump, stopping either at the first
// non-white landing codel (ok == true) or at the last white codel
// reached before the slide is blocked by an edge or black (ok ==
// false).
func slideWhite(grid *raster.Grid, pos geom.Coord, dp Direction) (stop geom.Coord, ok bool) {
	cur := pos
	for {
		last := block.SlideFurthest(grid, cur, dp.Vector())
		next := last.Add(dp.Vector())
		k := classify(grid, next)
		if !grid.InBounds(next) || k.Kind == chroma.KindBlack {
			return last, false
		}
		if k.Kind != chroma.KindWhite {
			return next, true
		}
		cur = next
	}
}

func stepWhite(grid *raster.Grid, st State) (State, bool) {
	pos, dp, cc := st.Pos, st.DP, st.CC
	seen := make(map[slideState]bool)

	for attempts := 0; attempts < maxAttempts; attempts++ {
		key := slideState{pos, dp}
		if seen[key] {
			return st, false
		}
		seen[key] = true

		stop, ok := slideWhite(grid, pos, dp)
		if ok {
			return State{Pos: stop, DP: dp, CC: cc}, true
		}

		// Blocked: resume from the last white codel actually reached,
		// then escalate cc and dp together (spec §4.4) on every failed
		// probe, unlike the chromatic exit's alternating escalation.
		pos = stop
		cc = cc.Toggle()
		dp = dp.Clockwise()
	}
	return st, false
}
