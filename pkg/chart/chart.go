// Package chart assembles a complete chart: series, edge items and inner
// decorations bound to one reactive state.
//
// A [Chart] is a plain declaration. [Chart.Mount] creates the state graph
// for a data set; the returned [Mounted] chart can be resized, fed new data
// or a pointer position, and rendered to an element tree or SVG at any
// time.
//
//	c := chart.Chart[Reading]{
//	    Aspect: chart.Outer(800, 400),
//	    Series: chart.Series[Reading]{...},
//	    Edges:  []edge.Placed{{Edge: layout.Bottom, Item: edge.TickLabels{}}},
//	    Inner:  []inner.Item{inner.HorizontalGridLine{}},
//	}
//	svg := c.Mount(readings).SVG()
package chart

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/edge"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/inner"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/state"
	"github.com/matzehuels/stackchart/pkg/ticks"
	"github.com/matzehuels/stackchart/pkg/watch"
)

// Chart declares a chart over records of type T.
type Chart[T any] struct {
	Title   string
	Aspect  AspectRatio
	Font    fonts.Metrics
	Padding bounds.Padding
	Debug   bool
	Palette colour.Palette

	// Background fills the SVG canvas when non-nil.
	Background *colour.Colour
	// FontFamily overrides fonts.FontFamily in SVG output.
	FontFamily string

	Series series.Series[T]
	Edges  []edge.Placed
	Inner  []inner.Item

	XTicks ticks.Generator
	YTicks ticks.Generator

	Logger *log.Logger
}

// Mounted is a chart bound to live state.
type Mounted[T any] struct {
	ID    string
	State *state.State[T]

	chart  Chart[T]
	logger *log.Logger
}

// Mount creates the chart state for data.
func (c Chart[T]) Mount(data []T) *Mounted[T] {
	id := uuid.NewString()
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("chart", id[:8])

	w, h := c.Aspect.Size(watch.Node{})
	s := state.New(state.Config[T]{
		Name:    id[:8],
		Series:  c.Series,
		Palette: c.Palette,
		Font:    c.Font,
		Padding: c.Padding,
		Debug:   c.Debug,
		XTicks:  c.XTicks,
		YTicks:  c.YTicks,
		Edges:   c.Edges,
		Logger:  logger,
	}, bounds.New(w, h), data)

	m := &Mounted[T]{ID: id, State: s, chart: c, logger: logger}
	if c.Aspect.FollowsNode() {
		s.Graph().Effect("aspect", func() {
			s.Outer.Set(bounds.New(c.Aspect.Size(s.Node.Get())))
		}, s.Node)
	}

	logger.Debug("mounted", "series", len(c.Series.Lines), "edges", len(c.Edges), "inner", len(c.Inner), "size", c.Aspect)
	return m
}

// Observe reports the host node and pointer.
func (m *Mounted[T]) Observe(node watch.Node, pointer watch.Pointer) {
	m.State.Update(func() {
		m.State.Node.Set(node)
		m.State.Pointer.Set(pointer)
	})
}

// SetData replaces the data.
func (m *Mounted[T]) SetData(data []T) { m.State.SetData(data) }

// Resize sets a fixed outer size.
func (m *Mounted[T]) Resize(width, height float64) { m.State.Resize(width, height) }

// OnChange calls fn with a fresh document now and whenever the drawing
// inputs change.
func (m *Mounted[T]) OnChange(fn func(render.Document)) {
	s := m.State
	m.State.Graph().Effect("on-change", func() { fn(m.Render()) },
		s.Layout, s.Positions, s.XTicks, s.YTicks, s.Cursor, s.Pre.Lines, s.Pre.Debug)
}

// Render builds the element tree for the current state.
func (m *Mounted[T]) Render() render.Document {
	s := m.State
	outer := s.Outer.Get()
	ec := s.EdgeContext()
	ic := inner.FromState(s)

	root := render.Group{Class: "chart"}

	bands := s.Layout.Get().Bands
	placed := make([]render.Element, len(s.Edges))
	for i, p := range s.Edges {
		placed[i] = edge.Render(p.Item, p.Edge, bands[i], ec)
	}
	edges := render.NewGroup("edges", placed...)

	var back, front []render.Element
	for _, it := range m.chart.Inner {
		e := inner.Draw(it, ic)
		if e == nil {
			continue
		}
		switch it.(type) {
		case inner.XGuideLine, inner.YGuideLine, inner.Legend:
			front = append(front, e)
		default:
			back = append(back, e)
		}
	}

	root.Children = append(root.Children, edges)
	root.Children = append(root.Children, back...)
	root.Children = append(root.Children, m.series(ic.Inner.IsEmpty()))
	root.Children = append(root.Children, front...)

	if ec.Debug {
		root.Children = append(root.Children, render.Outline("outer", outer), render.Outline("inner", ic.Inner))
	}

	return render.Document{
		ID:     "c" + m.ID[:8],
		Title:  m.chart.Title,
		Width:  outer.Width(),
		Height: outer.Height(),
		Root:   root,
	}
}

func (m *Mounted[T]) series(hidden bool) render.Element {
	g := render.Group{Class: "series"}
	if hidden {
		return g
	}
	lines := m.State.Pre.Lines.Get()
	positions := m.State.Positions.Get()
	for i, l := range lines {
		g.Children = append(g.Children, render.Path{
			Key:    "series-" + strconv.Itoa(l.ID),
			D:      series.PathData(positions[i]),
			Stroke: l.Colour,
			Width:  l.Width,
		})
	}
	return g
}

// SVG renders the current state as an SVG document. The chart's background
// and font family apply first; opts may override them.
func (m *Mounted[T]) SVG(opts ...render.SVGOption) []byte {
	var base []render.SVGOption
	if m.chart.Background != nil {
		base = append(base, render.WithBackground(*m.chart.Background))
	}
	if m.chart.FontFamily != "" {
		base = append(base, render.WithFontFamily(m.chart.FontFamily))
	}
	return render.RenderSVG(m.Render(), append(base, opts...)...)
}
