package raster

import (
	"fmt"

	"github.com/pietgo/piet/internal/chroma"
)

// Scanline filter type bytes, per the PNG spec.
const (
	filterNone    = 0
	filterSub     = 1
	filterUp      = 2
	filterAverage = 3
	filterPaeth   = 4
)

// unfilter reverses the per-scanline PNG filters over the inflated
// IDAT stream and resolves indexed samples through palette, producing
// a row-major RGB pixel grid.
func unfilter(data []byte, hdr header, palette []chroma.RGB) ([][]chroma.RGB, error) {
	channels := hdr.channels()
	stride := hdr.width * channels
	rowSize := stride + 1 // +1 for the leading filter-type byte

	pix := make([][]chroma.RGB, hdr.height)
	prev := make([]byte, stride) // defaults to zero, matching the spec's "prior row of zeros" rule

	for y := 0; y < hdr.height; y++ {
		start := y * rowSize
		if start+rowSize > len(data) {
			return nil, fmt.Errorf("%w: row %d truncated", ErrTruncatedChunk, y)
		}
		filterType := data[start]
		raw := make([]byte, stride)
		copy(raw, data[start+1:start+rowSize])

		if err := applyFilter(raw, prev, filterType, channels); err != nil {
			return nil, err
		}

		pix[y] = rowToRGB(raw, hdr.colorType, palette)
		prev = raw
	}
	return pix, nil
}

// applyFilter reconstructs raw (currently holding the filtered bytes)
// into true sample values in place, using prev (the already-
// reconstructed previous row) and bpp (bytes per pixel).
func applyFilter(raw, prev []byte, filterType byte, bpp int) error {
	for i := range raw {
		var left, up, upLeft byte
		if i >= bpp {
			left = raw[i-bpp]
			upLeft = prev[i-bpp]
		}
		up = prev[i]

		switch filterType {
		case filterNone:
			// raw[i] already holds the true value.
		case filterSub:
			raw[i] += left
		case filterUp:
			raw[i] += up
		case filterAverage:
			raw[i] += byte((int(left) + int(up)) / 2)
		case filterPaeth:
			raw[i] += paethPredictor(left, up, upLeft)
		default:
			return ErrUnsupportedFilter
		}
	}
	return nil
}

func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rowToRGB(raw []byte, ct colorType, palette []chroma.RGB) []chroma.RGB {
	if ct == colorIndexed {
		out := make([]chroma.RGB, len(raw))
		for x, idx := range raw {
			if int(idx) < len(palette) {
				out[x] = palette[idx]
			}
		}
		return out
	}
	out := make([]chroma.RGB, len(raw)/3)
	for x := range out {
		out[x] = chroma.RGB{R: raw[x*3], G: raw[x*3+1], B: raw[x*3+2]}
	}
	return out
}
