// Package fonts provides the font metrics every size computation in a chart
// is based on.
//
// By default charts render text in a monospace family, so a label's
// horizontal extent is its rune count times the average glyph width, and
// every label is one font height tall. Metrics taken from a [font.Face] or
// a TrueType/OpenType file keep the face and measure labels glyph by glyph.
package fonts

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// FontFamily is the CSS font-family used for all chart text.
const FontFamily = "monospace"

// Metrics holds the font height and average glyph width in pixels. Face,
// when set, measures text widths instead of Width.
type Metrics struct {
	Height float64   `toml:"height" json:"height"`
	Width  float64   `toml:"width" json:"width"`
	Face   font.Face `toml:"-" json:"-"`
}

// Default approximates a 16px monospace font.
var Default = Metrics{Height: 16, Width: 10}

// FromFace derives metrics from a font face: the line height and the
// advance of the digit zero, which is representative for tick labels.
func FromFace(face font.Face) Metrics {
	return Metrics{
		Height: toFloat(face.Metrics().Height),
		Width:  toFloat(font.MeasureString(face, "0")),
		Face:   face,
	}
}

// Load reads a TrueType/OpenType file and returns metrics at the given
// pixel size.
func Load(path string, size float64) (Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Metrics{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "font file %s", path)
		}
		return Metrics{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read font %s", path)
	}
	return Parse(data, size)
}

// Parse measures font data at the given pixel size. The face stays open for
// the lifetime of the metrics.
func Parse(data []byte, size float64) (Metrics, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Metrics{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse font")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return Metrics{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open font face")
	}
	return FromFace(face), nil
}

// TextWidth returns the pixel width of s: the advance through Face when
// there is one, otherwise the rune count times Width.
func (m Metrics) TextWidth(s string) float64 {
	if m.Face != nil {
		return toFloat(font.MeasureString(m.Face, s))
	}
	return float64(utf8.RuneCountInString(s)) * m.Width
}

// Size returns the CSS font-size value for the metrics.
func (m Metrics) Size() string { return fmt.Sprintf("%gpx", m.Height) }

// Truncate shortens label so that it fits in width pixels, marking the cut
// with "..". At least three glyphs are always kept.
func (m Metrics) Truncate(label string, width float64) string {
	if m.Width <= 0 && m.Face == nil {
		return label
	}
	runes := []rune(label)
	if len(runes) <= 3 || m.TextWidth(label) <= width {
		return label
	}
	for n := len(runes) - 1; n > 3; n-- {
		if s := string(runes[:n-2]) + ".."; m.TextWidth(s) <= width {
			return s
		}
	}
	return string(runes[:1]) + ".."
}

// EscapeXML escapes s for use as SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
