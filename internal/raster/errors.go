package raster

import "errors"

// Decode and configuration errors, surfaced to the CLI's top-level
// entry point per spec §7 ("configuration errors" / "decode errors").
var (
	ErrNotPNG               = errors.New("raster: not a valid PNG file")
	ErrMissingIHDR          = errors.New("raster: missing IHDR chunk")
	ErrMissingPalette       = errors.New("raster: indexed color-type image has no PLTE chunk")
	ErrUnsupportedBitDepth  = errors.New("raster: unsupported bit depth (only 8 is supported)")
	ErrUnsupportedColorType = errors.New("raster: unsupported color type (only truecolor and indexed are supported)")
	ErrAnimated             = errors.New("raster: animated PNG is not supported")
	ErrTruncatedChunk       = errors.New("raster: truncated chunk")
	ErrUnsupportedFilter    = errors.New("raster: unsupported scanline filter type")
	ErrInvalidCodelSize     = errors.New("raster: codel size must be a positive integer")
	ErrDimensionMismatch    = errors.New("raster: image dimensions are not evenly divisible by codel size")
)
