package raster

import (
	"fmt"
	"io"

	"github.com/pietgo/piet/internal/chroma"
)

// InferCodelSize scans the first pixel row and first pixel column for
// the shortest run of identical-color pixels and returns that run
// length if it evenly divides both image dimensions. Otherwise it
// falls back to 1 and writes a diagnostic to warn (spec §4.7).
func InferCodelSize(img *Image, warn io.Writer) int {
	if img.Width == 0 || img.Height == 0 {
		return 1
	}
	row := img.Pix[0]
	col := make([]chroma.RGB, img.Height)
	for y := range col {
		col[y] = img.Pix[y][0]
	}

	candidate := minRunLength(row)
	if c := minRunLength(col); c < candidate {
		candidate = c
	}
	if candidate < 1 {
		candidate = 1
	}

	if img.Width%candidate == 0 && img.Height%candidate == 0 {
		return candidate
	}
	if warn != nil {
		fmt.Fprintf(warn, "piet: could not infer a codel size evenly dividing %dx%d; assuming 1\n", img.Width, img.Height)
	}
	return 1
}

// minRunLength returns the length of the shortest maximal run of
// identical consecutive samples in seq.
func minRunLength(seq []chroma.RGB) int {
	if len(seq) == 0 {
		return 1
	}
	min := len(seq)
	run := 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			run++
			continue
		}
		if run < min {
			min = run
		}
		run = 1
	}
	if run < min {
		min = run
	}
	return min
}
