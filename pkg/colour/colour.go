// Package colour holds the colour value used for series and decorations,
// the default decoration colours and the series palette.
package colour

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Colour is an opaque 8-bit RGB colour.
type Colour struct {
	R, G, B uint8
}

// Default decoration colours.
var (
	GuideLine  = MustParse("#9A9A9A")
	AxisMarker = MustParse("#D2D2D2")
	GridLine   = MustParse("#EFF2FA")
	Text       = MustParse("#000000")
	Debug      = MustParse("#FF00FF")
)

// DefaultWidth is the default stroke width for lines and decorations.
const DefaultWidth = 1.0

// Parse reads a "#rrggbb" or "#rgb" colour.
func Parse(s string) (Colour, error) {
	v := strings.TrimSpace(s)
	if len(v) != 4 && len(v) != 7 {
		return Colour{}, errors.New(errors.ErrCodeInvalidColour, "invalid colour %q", s)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Colour{}, errors.Wrap(errors.ErrCodeInvalidColour, err, "invalid colour %q", s)
	}
	return FromColorful(c), nil
}

// MustParse is Parse for package-level constants; it panics on error.
func MustParse(s string) Colour {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful colour, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Colour {
	r, g, b := c.Clamped().RGB255()
	return Colour{R: r, G: g, B: b}
}

// Colorful converts to a go-colorful colour for blending.
func (c Colour) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" form used in SVG attributes.
func (c Colour) Hex() string { return c.Colorful().Hex() }

func (c Colour) String() string { return c.Hex() }

func (c Colour) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Colour) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Palette is an ordered list of series colours. Lookups wrap around.
type Palette []Colour

// At returns the i-th colour, wrapping past the end. An empty palette
// yields black.
func (p Palette) At(i int) Colour {
	if len(p) == 0 {
		return Colour{}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Generate spreads n hues around the colour wheel by the golden angle at
// fixed chroma and lightness, so neighbouring series stay distinguishable.
func Generate(n int) Palette {
	out := make(Palette, n)
	for i := range out {
		h := math.Mod(float64(i+1)*math.Phi, 1) * 360
		out[i] = FromColorful(colorful.Hcl(h, 0.6, 0.55))
	}
	return out
}

// Extend returns p followed by generated colours, n colours in total. A
// palette that already holds n colours is returned unchanged.
func (p Palette) Extend(n int) Palette {
	if len(p) >= n {
		return p
	}
	out := make(Palette, 0, n)
	out = append(out, p...)
	return append(out, Generate(n)[len(p):]...)
}

// DefaultPalette is used when a chart does not declare one.
var DefaultPalette = Palette{
	MustParse("#1F77B4"),
	MustParse("#FF7F0E"),
	MustParse("#2CA02C"),
	MustParse("#D62728"),
	MustParse("#9467BD"),
	MustParse("#8C564B"),
	MustParse("#E377C2"),
	MustParse("#7F7F7F"),
	MustParse("#BCBD22"),
	MustParse("#17BECF"),
}

// ParsePalette parses a list of hex colours.
func ParsePalette(values []string) (Palette, error) {
	out := make(Palette, 0, len(values))
	for _, v := range values {
		c, err := Parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
