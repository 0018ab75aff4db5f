package inner

import (
	"math"
	"strings"

	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
)

// Align chooses what a guide line tracks.
type Align int

const (
	// AlignOverMouse follows the pointer exactly.
	AlignOverMouse Align = iota
	// AlignOverData snaps to the nearest data point.
	AlignOverData
)

func (a Align) String() string {
	if a == AlignOverData {
		return "data"
	}
	return "mouse"
}

// ParseAlign parses "mouse" or "data", ignoring case.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "mouse":
		return AlignOverMouse, nil
	case "data":
		return AlignOverData, nil
	}
	return AlignOverMouse, errors.New(errors.ErrCodeInvalidInput, "unknown guide line alignment: `%s`", s)
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Align) UnmarshalText(b []byte) error {
	v, err := ParseAlign(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// XGuideLine is a vertical line following the pointer's x position while
// it is over the inner area.
type XGuideLine struct {
	Align  Align
	Colour *colour.Colour
	Width  float64
}

// YGuideLine is a horizontal line following the pointer's y position.
// Aligned over data, it snaps to the series value nearest the pointer at
// the nearest data x.
type YGuideLine struct {
	Align  Align
	Colour *colour.Colour
	Width  float64
}

func (l XGuideLine) draw(c Context) render.Group {
	g := render.Group{Class: "guide-line-x"}
	if !c.Cursor.Inner || c.Inner.IsEmpty() {
		return g
	}
	x := c.Cursor.X
	if l.Align == AlignOverData {
		dx, _ := c.Projection.SVGToPosition(c.Cursor.X, c.Cursor.Y)
		nx, ok := nearestX(c.Points, dx)
		if !ok {
			return g
		}
		x = c.Projection.X(nx)
	}
	col, width := stroke(l.Colour, l.Width, colour.GuideLine)
	b := c.Inner
	g.Children = append(g.Children, render.Line{X1: x, Y1: b.TopY(), X2: x, Y2: b.BottomY(), Stroke: col, Width: width})
	return g
}

func (l YGuideLine) draw(c Context) render.Group {
	g := render.Group{Class: "guide-line-y"}
	if !c.Cursor.Inner || c.Inner.IsEmpty() {
		return g
	}
	y := c.Cursor.Y
	if l.Align == AlignOverData {
		dx, dy := c.Projection.SVGToPosition(c.Cursor.X, c.Cursor.Y)
		nx, ok := nearestX(c.Points, dx)
		if !ok {
			return g
		}
		ny, ok := nearestY(c.Points, nx, dy)
		if !ok {
			return g
		}
		y = c.Projection.Y(ny)
	}
	col, width := stroke(l.Colour, l.Width, colour.GuideLine)
	b := c.Inner
	g.Children = append(g.Children, render.Line{X1: b.LeftX(), Y1: y, X2: b.RightX(), Y2: y, Stroke: col, Width: width})
	return g
}

// nearestX returns the data x closest to x across every line.
func nearestX(points [][]series.Point, x float64) (float64, bool) {
	best, dist := 0.0, math.Inf(1)
	for _, line := range points {
		for _, p := range line {
			if p.IsGap() {
				continue
			}
			if d := math.Abs(p.X - x); d < dist {
				best, dist = p.X, d
			}
		}
	}
	return best, !math.IsInf(dist, 1)
}

// nearestY returns the y closest to y among the points at exactly x.
func nearestY(points [][]series.Point, x, y float64) (float64, bool) {
	best, dist := 0.0, math.Inf(1)
	for _, line := range points {
		for _, p := range line {
			if p.IsGap() || p.X != x {
				continue
			}
			if d := math.Abs(p.Y - y); d < dist {
				best, dist = p.Y, d
			}
		}
	}
	return best, !math.IsInf(dist, 1)
}
