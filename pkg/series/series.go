// Package series binds records of an arbitrary type to drawable lines.
//
// A [Series] reads one x value and any number of y values from each
// record. Declaring the series through an [Accumulator] gives every line a
// stable id (its declaration index) and a resolved colour. The resulting
// [UseLine] values are what legends, tooltips and renderers join on.
package series

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/projection"
)

// Series declares how a chart reads records of type T.
type Series[T any] struct {
	X     func(T) float64
	Lines []Line[T]
}

// Line declares one y accessor and how to draw it.
type Line[T any] struct {
	Y     func(T) float64
	Name  string
	// Colour overrides the palette when non-nil.
	Colour *colour.Colour
	// Width is the stroke width; zero means colour.DefaultWidth.
	Width float64
}

// NewLine returns a line reading y.
func NewLine[T any](name string, y func(T) float64) Line[T] {
	return Line[T]{Y: y, Name: name}
}

// WithColour returns a copy of the line with a fixed colour.
func (l Line[T]) WithColour(c colour.Colour) Line[T] {
	l.Colour = &c
	return l
}

// WithWidth returns a copy of the line with the given stroke width.
func (l Line[T]) WithWidth(w float64) Line[T] {
	l.Width = w
	return l
}

// Decl strips the accessor, leaving the part the accumulator resolves.
func (l Line[T]) Decl() Decl {
	return Decl{Name: l.Name, Colour: l.Colour, Width: l.Width}
}

// Decl is a declared line without its data accessor.
type Decl struct {
	Name   string
	Colour *colour.Colour
	Width  float64
}

// UseLine is a line with its identity and colour resolved.
type UseLine struct {
	ID     int
	Name   string
	Colour colour.Colour
	Width  float64
}

// Point is an (x, y) pair in data or pixel space.
type Point struct {
	X, Y float64
}

// IsGap reports whether either coordinate is NaN.
func (p Point) IsGap() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

// UseLines resolves every line of s against the palette.
func (s Series[T]) UseLines(p colour.Palette) []UseLine {
	acc := NewAccumulator(p)
	for _, l := range s.Lines {
		acc.Push(l.Decl())
	}
	return acc.Lines()
}

// Points reads the data points of every line, indexed like s.Lines.
func (s Series[T]) Points(data []T) [][]Point {
	out := make([][]Point, len(s.Lines))
	for i, l := range s.Lines {
		pts := make([]Point, len(data))
		for j, rec := range data {
			pts[j] = Point{X: s.X(rec), Y: l.Y(rec)}
		}
		out[i] = pts
	}
	return out
}

// Domains returns the x and y ranges covered by points, ignoring NaNs.
func Domains(points [][]Point) (x, y projection.Domain) {
	x, y = projection.Empty(), projection.Empty()
	for _, line := range points {
		for _, p := range line {
			x = x.Update(p.X)
			y = y.Update(p.Y)
		}
	}
	return x, y
}

// Positions projects data points into pixel space. NaN coordinates stay NaN.
func Positions(points []Point, proj projection.Projection) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		px, py := proj.PositionToSVG(p.X, p.Y)
		out[i] = Point{X: px, Y: py}
	}
	return out
}

// PathData builds an SVG path through the pixel positions. A point with a
// NaN coordinate is skipped and the next valid point starts a new subpath,
// so gaps are never bridged.
func PathData(positions []Point) string {
	var b strings.Builder
	needMove := true
	for _, p := range positions {
		if p.IsGap() {
			needMove = true
			continue
		}
		if needMove {
			b.WriteString("M ")
			needMove = false
		} else {
			b.WriteString("L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
		b.WriteByte(' ')
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// TasterBounds is the area of the short sample line drawn next to a
// series name: two glyphs wide and one line tall.
func TasterBounds(m fonts.Metrics) bounds.Bounds {
	return bounds.New(m.Width*2, m.Height)
}

// SnippetWidth is the taster plus one glyph of spacing before the name.
func SnippetWidth(m fonts.Metrics) float64 {
	return TasterBounds(m).Width() + m.Width
}
