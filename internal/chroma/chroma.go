// Package chroma classifies the 20 RGB triples the Language recognizes
// and computes the cyclic hue/lightness shifts that key the instruction
// table in package exec.
package chroma

// RGB is a 24-bit truecolor sample.
type RGB struct {
	R, G, B uint8
}

// Hue indexes (red, yellow, green, cyan, blue, magenta), in that cyclic order.
const (
	Red = iota
	Yellow
	Green
	Cyan
	Blue
	Magenta
	NumHues
)

// Lightness indexes, light to dark.
const (
	Light = iota
	Normal
	Dark
	NumLightness
)

// grid is the 3x6 table of recognized chromatic colors, indexed
// grid[lightness][hue].
var grid = [NumLightness][NumHues]RGB{
	Light: {
		Red:     {255, 192, 192},
		Yellow:  {255, 255, 192},
		Green:   {192, 255, 192},
		Cyan:    {192, 255, 255},
		Blue:    {192, 192, 255},
		Magenta: {255, 192, 255},
	},
	Normal: {
		Red:     {255, 0, 0},
		Yellow:  {255, 255, 0},
		Green:   {0, 255, 0},
		Cyan:    {0, 255, 255},
		Blue:    {0, 0, 255},
		Magenta: {255, 0, 255},
	},
	Dark: {
		Red:     {192, 0, 0},
		Yellow:  {192, 192, 0},
		Green:   {0, 192, 0},
		Cyan:    {0, 192, 192},
		Blue:    {0, 0, 192},
		Magenta: {192, 0, 192},
	},
}

// White and Black are the two achromatic recognized colors.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// Kind classifies a color into one of the four buckets the navigator
// and instruction dispatch care about.
type Kind int

const (
	KindChromatic Kind = iota
	KindWhite
	KindBlack
	KindUnknown
)

// Color is the classification of a single RGB triple. Hue and Light
// are meaningful only when Kind == KindChromatic.
type Color struct {
	Kind  Kind
	Hue   int
	Light int
}

// Classify maps rgb to its recognized classification. Colors outside
// the 20 recognized triples come back as KindUnknown; callers decide
// how to fold that (see Fold).
func Classify(rgb RGB) Color {
	if rgb == White {
		return Color{Kind: KindWhite}
	}
	if rgb == Black {
		return Color{Kind: KindBlack}
	}
	for l := 0; l < NumLightness; l++ {
		for h := 0; h < NumHues; h++ {
			if grid[l][h] == rgb {
				return Color{Kind: KindChromatic, Hue: h, Light: l}
			}
		}
	}
	return Color{Kind: KindUnknown}
}

// Fold applies the reference policy for unrecognized colors: treat
// them as white (spec §9, "open question: unrecognized colors").
func Fold(c Color) Color {
	if c.Kind == KindUnknown {
		return Color{Kind: KindWhite}
	}
	return c
}

// HueShift returns the cyclic hue difference (b.Hue - a.Hue) mod 6.
// Both colors must be KindChromatic.
func HueShift(a, b Color) int {
	return ((b.Hue-a.Hue)%NumHues + NumHues) % NumHues
}

// LightShift returns the cyclic lightness difference (b.Light - a.Light) mod 3.
// Both colors must be KindChromatic.
func LightShift(a, b Color) int {
	return ((b.Light-a.Light)%NumLightness + NumLightness) % NumLightness
}
