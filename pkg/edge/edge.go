// Package edge implements the items that claim a band along one side of a
// chart: rotated labels, legends and axis tick labels.
//
// Each item reports an intrinsic size for the edge it sits on (a height on
// top and bottom edges, a width on left and right edges) and renders itself
// into the band the layout gives it. The item set is closed; [Size] and
// [Render] switch over it.
package edge

import (
	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/ticks"
)

// Item is one of RotatedLabel, Legend or TickLabels.
type Item interface {
	edgeItem()
}

// RotatedLabel is a single line of text. On left and right edges it is
// turned to read along the edge.
type RotatedLabel struct {
	Text   string
	Anchor layout.Anchor
}

// Legend lists every series with a colour swatch, in one row on
// horizontal edges and one column on vertical edges.
type Legend struct {
	Anchor layout.Anchor
}

// TickLabels draws the axis tick labels. Top and bottom edges label the x
// axis, left and right edges the y axis. A non-nil Generator replaces the
// chart's default generator for that axis.
type TickLabels struct {
	Generator ticks.Generator
}

func (RotatedLabel) edgeItem() {}
func (Legend) edgeItem()       {}
func (TickLabels) edgeItem()   {}

// Placed binds an item to an edge.
type Placed struct {
	Edge layout.Edge
	Item Item
}

// Context is the chart state edge items read. Projection and the tick sets
// are only needed for rendering; sizing reads YTicks for vertical tick
// labels and nothing else beyond fonts, padding and lines.
type Context struct {
	Font       fonts.Metrics
	Padding    bounds.Padding
	Lines      []series.UseLine
	Debug      bool
	XTicks     ticks.Generated
	YTicks     ticks.Generated
	Projection projection.Projection
}

// Size returns the band size item needs on edge e.
func Size(item Item, e layout.Edge, c Context) float64 {
	switch it := item.(type) {
	case RotatedLabel:
		if it.Text == "" {
			return 0
		}
		// Rotated on vertical edges, so the width is a line height too.
		return c.Font.Height + c.Padding.Height()
	case Legend:
		if e.IsHorizontal() {
			return c.Font.Height + c.Padding.Height()
		}
		return LegendWidth(c.Font, c.Padding, c.Lines)
	case TickLabels:
		if e.IsHorizontal() {
			return c.Font.Height + c.Padding.Height()
		}
		var widest float64
		for _, t := range c.YTicks.Ticks {
			widest = max(widest, c.Font.TextWidth(t.Label))
		}
		return widest + c.Padding.Width()
	}
	return 0
}

// Render draws item into the band b on edge e.
func Render(item Item, e layout.Edge, b bounds.Bounds, c Context) render.Element {
	var g render.Group
	switch it := item.(type) {
	case RotatedLabel:
		g = renderRotatedLabel(it, e, b, c)
	case Legend:
		g = renderLegend(it, e, b, c)
	case TickLabels:
		g = renderTickLabels(e, b, c)
	default:
		return nil
	}
	if c.Debug {
		g.Children = append(g.Children, render.Outline(g.Class, b))
	}
	return g
}

// Name returns a short lowercase name for the item type.
func Name(item Item) string {
	switch item.(type) {
	case RotatedLabel:
		return "label"
	case Legend:
		return "legend"
	case TickLabels:
		return "ticks"
	}
	return "unknown"
}

func renderRotatedLabel(l RotatedLabel, e layout.Edge, b bounds.Bounds, c Context) render.Group {
	g := render.Group{Class: "rotated-label"}
	content := c.Padding.Apply(b)
	if c.Debug {
		g.Children = append(g.Children, render.Outline("rotated-label-content", content))
	}

	var rotate, x, y float64
	switch e {
	case layout.Top, layout.Bottom:
		x, y = l.Anchor.Pick(content.LeftX(), content.CentreX(), content.RightX()), content.CentreY()
	case layout.Left:
		rotate = 270
		x, y = content.CentreX(), l.Anchor.Pick(content.BottomY(), content.CentreY(), content.TopY())
	case layout.Right:
		// Turned the other way, so start is at the top.
		rotate = 90
		x, y = content.CentreX(), l.Anchor.Pick(content.TopY(), content.CentreY(), content.BottomY())
	}

	g.Children = append(g.Children, render.Text{
		X:        x,
		Y:        y,
		Text:     l.Text,
		Anchor:   l.Anchor,
		Baseline: render.BaselineMiddle,
		Rotate:   rotate,
		Size:     c.Font.Height,
		Fill:     textColour,
	})
	return g
}

func renderTickLabels(e layout.Edge, b bounds.Bounds, c Context) render.Group {
	g := render.Group{Class: "tick-labels-" + e.String()}
	content := c.Padding.Apply(b)
	proj := c.Projection

	if e.IsHorizontal() {
		for _, t := range c.XTicks.Ticks {
			g.Children = append(g.Children, render.Text{
				Key:      t.Key(),
				X:        proj.X(t.Value),
				Y:        content.CentreY(),
				Text:     t.Label,
				Anchor:   layout.Middle,
				Baseline: render.BaselineMiddle,
				Size:     c.Font.Height,
				Fill:     textColour,
			})
		}
		return g
	}

	// Labels hug the inner area: right-aligned on the left edge.
	x, anchor := content.RightX(), layout.End
	if e == layout.Right {
		x, anchor = content.LeftX(), layout.Start
	}
	for _, t := range c.YTicks.Ticks {
		g.Children = append(g.Children, render.Text{
			Key:      t.Key(),
			X:        x,
			Y:        proj.Y(t.Value),
			Text:     t.Label,
			Anchor:   anchor,
			Baseline: render.BaselineMiddle,
			Size:     c.Font.Height,
			Fill:     textColour,
		})
	}
	return g
}
