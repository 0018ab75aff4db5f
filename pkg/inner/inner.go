// Package inner implements the decorations drawn inside the plotting area:
// axis markers, grid lines, guide lines and the inset legend.
//
// Every decoration reads the same [Context] (inner bounds, projection, tick
// sets, cursor) so they all share one coordinate frame. The item set is
// closed; [Draw] switches over it.
package inner

import (
	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/state"
	"github.com/matzehuels/stackchart/pkg/ticks"
	"github.com/matzehuels/stackchart/pkg/watch"
)

// Item is one of AxisMarker, HorizontalGridLine, VerticalGridLine,
// XGuideLine, YGuideLine or Legend.
type Item interface {
	innerItem()
}

func (AxisMarker) innerItem()         {}
func (HorizontalGridLine) innerItem() {}
func (VerticalGridLine) innerItem()   {}
func (XGuideLine) innerItem()         {}
func (YGuideLine) innerItem()         {}
func (Legend) innerItem()             {}

// Context is the chart state inner items draw from.
type Context struct {
	Font       fonts.Metrics
	Padding    bounds.Padding
	Lines      []series.UseLine
	Debug      bool
	Inner      bounds.Bounds
	Projection projection.Projection
	XTicks     ticks.Generated
	YTicks     ticks.Generated
	// Points holds the data points of every line, for guide lines that
	// snap to data.
	Points [][]series.Point
	Cursor watch.Cursor
}

// FromState snapshots s into a Context.
func FromState[T any](s *state.State[T]) Context {
	return Context{
		Font:       s.Pre.Font.Get(),
		Padding:    s.Pre.Padding.Get(),
		Lines:      s.Pre.Lines.Get(),
		Debug:      s.Pre.Debug.Get(),
		Inner:      s.Inner.Get(),
		Projection: s.Projection.Get(),
		XTicks:     s.XTicks.Get(),
		YTicks:     s.YTicks.Get(),
		Points:     s.Pre.Points.Get(),
		Cursor:     s.Cursor.Get(),
	}
}

// Render draws item against the current state.
func Render[T any](item Item, s *state.State[T]) render.Element {
	return Draw(item, FromState(s))
}

// Draw draws item against c. A degenerate inner area draws an empty group.
func Draw(item Item, c Context) render.Element {
	var g render.Group
	switch it := item.(type) {
	case AxisMarker:
		g = it.draw(c)
	case HorizontalGridLine:
		g = it.draw(c)
	case VerticalGridLine:
		g = it.draw(c)
	case XGuideLine:
		g = it.draw(c)
	case YGuideLine:
		g = it.draw(c)
	case Legend:
		g = it.draw(c)
	default:
		return nil
	}
	if c.Debug && !c.Inner.IsEmpty() {
		g.Children = append(g.Children, render.Outline(g.Class, c.Inner))
	}
	return g
}

// Name returns a short lowercase name for the item type.
func Name(item Item) string {
	switch item.(type) {
	case AxisMarker:
		return "axis-marker"
	case HorizontalGridLine:
		return "grid-line-horizontal"
	case VerticalGridLine:
		return "grid-line-vertical"
	case XGuideLine:
		return "guide-line-x"
	case YGuideLine:
		return "guide-line-y"
	case Legend:
		return "legend"
	}
	return "unknown"
}

// stroke resolves an optional colour and width against defaults.
func stroke(c *colour.Colour, width float64, fallback colour.Colour) (colour.Colour, float64) {
	if width <= 0 {
		width = colour.DefaultWidth
	}
	if c == nil {
		return fallback, width
	}
	return *c, width
}
