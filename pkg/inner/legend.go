package inner

import (
	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/edge"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/render"
)

// Legend is a legend drawn over the inner area, against one of its edges.
// It lists the same entries as an edge legend.
type Legend struct {
	Edge   layout.Edge
	Anchor layout.Anchor
}

// Bounds returns the area the legend covers inside inner.
func (l Legend) Bounds(c Context) bounds.Bounds {
	size := edge.LegendWidth(c.Font, c.Padding, c.Lines)
	if l.Edge.IsHorizontal() {
		size = edge.LegendHeight(c.Font, c.Padding)
	}
	return layout.Allocate(c.Inner, []layout.Band{{Edge: l.Edge, Size: size}}).Bands[0]
}

func (l Legend) draw(c Context) render.Group {
	g := render.Group{Class: "inset-legend"}
	if c.Inner.IsEmpty() || len(c.Lines) == 0 {
		return g
	}
	horizontal := l.Edge.IsHorizontal()
	b := l.Bounds(c)
	content := edge.LegendPadding(c.Padding, horizontal).Apply(b)
	if c.Debug {
		g.Children = append(g.Children, render.Outline("inset-legend-content", content))
	}
	g.Children = append(g.Children, edge.LegendEntries(c.Lines, c.Font, c.Padding, l.Anchor, horizontal, content)...)
	return g
}
