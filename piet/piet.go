// Package piet implements the interpreter loop that ties the raster
// decoder, block extractor, navigator and stack machine together
// (spec §4.6).
package piet

import (
	"io"

	"github.com/pietgo/piet/internal/block"
	"github.com/pietgo/piet/internal/chroma"
	"github.com/pietgo/piet/internal/exec"
	"github.com/pietgo/piet/internal/geom"
	"github.com/pietgo/piet/internal/navigate"
	"github.com/pietgo/piet/internal/raster"
)

// Interpreter runs a decoded program to completion.
type Interpreter struct {
	grid *raster.Grid
}

// New wraps a decoded codel grid for execution.
func New(grid *raster.Grid) *Interpreter {
	return &Interpreter{grid: grid}
}

func classify(grid *raster.Grid, c geom.Coord) chroma.Color {
	rgb, ok := grid.At(c)
	if !ok {
		return chroma.Color{Kind: chroma.KindBlack}
	}
	return chroma.Fold(chroma.Classify(rgb))
}

// Run executes the program, reading in-number/in-char input from in
// and writing out-number/out-char output to out. It returns the
// machine's final state when the navigator reports eight consecutive
// failed exit attempts — ordinary program completion, not an error.
func (ip *Interpreter) Run(in io.Reader, out io.Writer) *exec.Machine {
	pos := geom.Coord{X: 0, Y: 0}
	m := exec.NewMachine(in, out, navigate.Right, navigate.CCLeft)

	for {
		prevColor := classify(ip.grid, pos)
		prevBlock := block.Extract(ip.grid, pos)

		next, ok := navigate.Step(ip.grid, navigate.State{Pos: pos, DP: m.DP, CC: m.CC})
		if !ok {
			return m
		}

		nextColor := classify(ip.grid, next.Pos)
		if prevColor.Kind == chroma.KindChromatic && nextColor.Kind == chroma.KindChromatic {
			hue := chroma.HueShift(prevColor, nextColor)
			light := chroma.LightShift(prevColor, nextColor)
			exec.Dispatch(hue, light, prevBlock.Size(), m)
		}

		pos = next.Pos
		m.DP = next.DP
		m.CC = next.CC
	}
}
