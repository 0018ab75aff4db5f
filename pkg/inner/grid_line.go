package inner

import (
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/ticks"
)

// HorizontalGridLine marks the horizontal axis: a full-height line at every
// x tick, with ticks generated over the inner width.
type HorizontalGridLine struct {
	Colour *colour.Colour
	Width  float64
	// Generator replaces the axis ticks when non-nil.
	Generator ticks.Generator
}

// VerticalGridLine marks the vertical axis: a full-width line at every y
// tick, with ticks generated over the inner height.
type VerticalGridLine struct {
	Colour    *colour.Colour
	Width     float64
	Generator ticks.Generator
}

func (l HorizontalGridLine) draw(c Context) render.Group {
	g := render.Group{Class: "grid-line-horizontal"}
	b := c.Inner
	if b.IsEmpty() {
		return g
	}
	ts := c.XTicks
	if l.Generator != nil {
		ts = l.Generator.Generate(c.Projection.XDomain(), b.Width(), ticks.Horizontal(c.Font))
	}
	col, width := stroke(l.Colour, l.Width, colour.GridLine)
	for _, t := range ts.Ticks {
		x := c.Projection.X(t.Value)
		g.Children = append(g.Children, render.Line{
			Key: t.Key(), X1: x, Y1: b.TopY(), X2: x, Y2: b.BottomY(), Stroke: col, Width: width,
		})
	}
	return g
}

func (l VerticalGridLine) draw(c Context) render.Group {
	g := render.Group{Class: "grid-line-vertical"}
	b := c.Inner
	if b.IsEmpty() {
		return g
	}
	ts := c.YTicks
	if l.Generator != nil {
		ts = l.Generator.Generate(c.Projection.YDomain(), b.Height(), ticks.Vertical(c.Font))
	}
	col, width := stroke(l.Colour, l.Width, colour.GridLine)
	for _, t := range ts.Ticks {
		y := c.Projection.Y(t.Value)
		g.Children = append(g.Children, render.Line{
			Key: t.Key(), X1: b.LeftX(), Y1: y, X2: b.RightX(), Y2: y, Stroke: col, Width: width,
		})
	}
	return g
}
