// Package raster decodes the PNG images the Language's programs are
// stored as into a flat grid of RGB samples, and infers the codel
// size when the caller doesn't supply one. It is the "external
// collaborator" input contract of the interpreter: everything here is
// plumbing the interpreter loop depends on but never re-derives.
package raster

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pietgo/piet/internal/chroma"
	"github.com/pietgo/piet/internal/geom"
)

type colorType uint8

const (
	colorTrueColor colorType = 2
	colorIndexed   colorType = 3
)

type header struct {
	width, height int
	bitDepth      uint8
	colorType     colorType
}

func (h header) channels() int {
	if h.colorType == colorIndexed {
		return 1
	}
	return 3
}

// Image is a decoded raster image at pixel resolution.
type Image struct {
	Width, Height int
	Pix           [][]chroma.RGB // row-major, Pix[y][x]
}

// Decode reads a PNG stream and returns its pixel grid. It supports
// exactly what spec §4.7 requires: 8-bit truecolor or indexed (with a
// palette), and rejects everything else (animated, indexed-without-
// palette, unsupported bit depths/color types) with a named error.
func Decode(r io.Reader) (*Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("raster: reading input: %w", err)
	}
	if len(raw) < len(pngSignature) || !bytes.Equal(raw[:len(pngSignature)], pngSignature[:]) {
		return nil, ErrNotPNG
	}

	chunks, err := readChunks(raw[len(pngSignature):])
	if err != nil {
		return nil, err
	}

	var (
		hdr      header
		haveIHDR bool
		palette  []chroma.RGB
		idat     []byte
	)
	for _, c := range chunks {
		switch c.typ {
		case "IHDR":
			hdr, err = parseIHDR(c.data)
			if err != nil {
				return nil, err
			}
			haveIHDR = true
		case "PLTE":
			palette, err = parsePLTE(c.data)
			if err != nil {
				return nil, err
			}
		case "IDAT":
			idat = append(idat, c.data...)
		case "acTL":
			return nil, ErrAnimated
		}
	}
	if !haveIHDR {
		return nil, ErrMissingIHDR
	}
	if hdr.colorType == colorIndexed && palette == nil {
		return nil, ErrMissingPalette
	}

	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return nil, fmt.Errorf("raster: inflating image data: %w", err)
	}
	defer zr.Close()
	inflated, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("raster: inflating image data: %w", err)
	}

	pix, err := unfilter(inflated, hdr, palette)
	if err != nil {
		return nil, err
	}

	return &Image{Width: hdr.width, Height: hdr.height, Pix: pix}, nil
}

func parseIHDR(data []byte) (header, error) {
	if len(data) < 13 {
		return header{}, fmt.Errorf("%w: IHDR too short", ErrTruncatedChunk)
	}
	h := header{
		width:     int(binary.BigEndian.Uint32(data[0:4])),
		height:    int(binary.BigEndian.Uint32(data[4:8])),
		bitDepth:  data[8],
		colorType: colorType(data[9]),
	}
	if h.bitDepth != 8 {
		return header{}, ErrUnsupportedBitDepth
	}
	if h.colorType != colorTrueColor && h.colorType != colorIndexed {
		return header{}, ErrUnsupportedColorType
	}
	return h, nil
}

func parsePLTE(data []byte) ([]chroma.RGB, error) {
	if len(data)%3 != 0 {
		return nil, fmt.Errorf("%w: PLTE length not a multiple of 3", ErrTruncatedChunk)
	}
	pal := make([]chroma.RGB, len(data)/3)
	for i := range pal {
		pal[i] = chroma.RGB{R: data[i*3], G: data[i*3+1], B: data[i*3+2]}
	}
	return pal, nil
}

// Grid is the codel-resolution view of a decoded Image: every
// spec.md navigation and block-extraction operation works in these
// coordinates, never in raw pixel coordinates.
type Grid struct {
	Width, Height int
	codelSize     int
	img           *Image
}

// Codels divides img into a codel grid. codelSize must be positive
// and evenly divide both dimensions (spec §3, "Codel").
func (img *Image) Codels(codelSize int) (*Grid, error) {
	if codelSize <= 0 {
		return nil, ErrInvalidCodelSize
	}
	if img.Width%codelSize != 0 || img.Height%codelSize != 0 {
		return nil, ErrDimensionMismatch
	}
	return &Grid{
		Width:     img.Width / codelSize,
		Height:    img.Height / codelSize,
		codelSize: codelSize,
		img:       img,
	}, nil
}

// InBounds reports whether c is within the codel grid.
func (g *Grid) InBounds(c geom.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// At returns the color of the codel at c, sampling its top-left
// raster pixel (every pixel within a codel shares one color).
func (g *Grid) At(c geom.Coord) (chroma.RGB, bool) {
	if !g.InBounds(c) {
		return chroma.RGB{}, false
	}
	return g.img.Pix[c.Y*g.codelSize][c.X*g.codelSize], true
}
