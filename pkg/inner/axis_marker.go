package inner

import (
	"strings"

	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/render"
)

// Placement is where an axis marker sits.
type Placement int

const (
	PlaceTop Placement = iota
	PlaceRight
	PlaceBottom
	PlaceLeft
	// PlaceHorizontalZero is the line y = 0.
	PlaceHorizontalZero
	// PlaceVerticalZero is the line x = 0.
	PlaceVerticalZero
)

var placementNames = []string{"top", "right", "bottom", "left", "horizontal-zero", "vertical-zero"}

func (p Placement) String() string {
	if p >= 0 && int(p) < len(placementNames) {
		return placementNames[p]
	}
	return "unknown"
}

// ParsePlacement parses a placement name, ignoring case.
func ParsePlacement(s string) (Placement, error) {
	for i, name := range placementNames {
		if strings.EqualFold(s, name) {
			return Placement(i), nil
		}
	}
	return PlaceBottom, errors.New(errors.ErrCodeInvalidInput, "unknown axis marker placement: `%s`", s)
}

func (p Placement) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Placement) UnmarshalText(b []byte) error {
	v, err := ParsePlacement(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// AxisMarker is a reference line along an inner edge or through zero.
// Horizontal markers run left to right, vertical ones bottom to top, and
// Arrow puts an arrowhead on the far end.
type AxisMarker struct {
	Placement Placement
	Arrow     bool
	Colour    *colour.Colour
	Width     float64
}

func (m AxisMarker) draw(c Context) render.Group {
	g := render.Group{Class: "axis-marker"}
	b := c.Inner
	if b.IsEmpty() {
		return g
	}

	var x1, y1, x2, y2 float64
	switch m.Placement {
	case PlaceTop:
		x1, y1, x2, y2 = b.LeftX(), b.TopY(), b.RightX(), b.TopY()
	case PlaceBottom:
		x1, y1, x2, y2 = b.LeftX(), b.BottomY(), b.RightX(), b.BottomY()
	case PlaceLeft:
		x1, y1, x2, y2 = b.LeftX(), b.BottomY(), b.LeftX(), b.TopY()
	case PlaceRight:
		x1, y1, x2, y2 = b.RightX(), b.BottomY(), b.RightX(), b.TopY()
	case PlaceHorizontalZero:
		if !c.Projection.YDomain().Contains(0) {
			return g
		}
		y := c.Projection.Y(0)
		x1, y1, x2, y2 = b.LeftX(), y, b.RightX(), y
	case PlaceVerticalZero:
		if !c.Projection.XDomain().Contains(0) {
			return g
		}
		x := c.Projection.X(0)
		x1, y1, x2, y2 = x, b.BottomY(), x, b.TopY()
	default:
		return g
	}

	col, width := stroke(m.Colour, m.Width, colour.AxisMarker)
	g.Key = m.Placement.String()
	g.Children = append(g.Children, render.Line{
		Key:    m.Placement.String(),
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Stroke: col,
		Width:  width,
		Arrow:  m.Arrow,
	})
	return g
}
