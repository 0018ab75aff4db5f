// Package state wires one chart's inputs and derived geometry into a
// reactive graph.
//
// [PreState] holds everything known before layout: the data, the declared
// series, font metrics, padding and the debug flag, plus the per-series
// points and data domains derived from them. [State] adds the outer
// bounds, the edge layout, the inner bounds, the projection and the tick
// sets of both axes.
//
// Node creation order is the recompute order:
//
//	horizontal edge sizes -> inner height -> y ticks -> vertical edge sizes
//	-> layout -> inner bounds -> x ticks -> projection -> positions
//
// The y ticks are needed before vertical sizes because tick labels on the
// left and right edges are as wide as their longest label. Horizontal
// edges have fixed heights, so the inner height is known first.
package state

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/edge"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/reactive"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/ticks"
	"github.com/matzehuels/stackchart/pkg/watch"
)

// Config is the static part of a chart declaration.
type Config[T any] struct {
	// Name labels the reactive graph in logs.
	Name    string
	Series  series.Series[T]
	Palette colour.Palette
	// Font defaults to fonts.Default when zero.
	Font    fonts.Metrics
	Padding bounds.Padding
	Debug   bool
	// XTicks and YTicks default to ticks.AlignedFloats. A TickLabels edge
	// item with its own generator overrides them for its axis.
	XTicks ticks.Generator
	YTicks ticks.Generator
	Edges  []edge.Placed
	Logger *log.Logger
}

// PreState is the layout-independent half of the chart state.
type PreState[T any] struct {
	Graph   *reactive.Graph
	Data    *reactive.Source[[]T]
	Font    *reactive.Source[fonts.Metrics]
	Padding *reactive.Source[bounds.Padding]
	Debug   *reactive.Source[bool]

	Lines   *reactive.Memo[[]series.UseLine]
	Points  *reactive.Memo[[][]series.Point]
	XDomain *reactive.Memo[projection.Domain]
	YDomain *reactive.Memo[projection.Domain]
}

// State is the full chart state.
type State[T any] struct {
	Pre *PreState[T]

	Outer   *reactive.Source[bounds.Bounds]
	Node    *reactive.Source[watch.Node]
	Pointer *reactive.Source[watch.Pointer]

	Edges           []edge.Placed
	HorizontalSizes *reactive.Memo[[]float64]
	InnerHeight     *reactive.Memo[float64]
	YTicks          *reactive.Memo[ticks.Generated]
	VerticalSizes   *reactive.Memo[[]float64]
	Layout          *reactive.Memo[layout.Allocation]
	Inner           *reactive.Memo[bounds.Bounds]
	XTicks          *reactive.Memo[ticks.Generated]
	Projection      *reactive.Memo[projection.Projection]
	Positions       *reactive.Memo[[][]series.Point]
	Cursor          *reactive.Memo[watch.Cursor]
}

// NewPre builds the pre-layout nodes on g.
func NewPre[T any](g *reactive.Graph, cfg Config[T], data []T) *PreState[T] {
	font := cfg.Font
	if font == (fonts.Metrics{}) {
		font = fonts.Default
	}

	p := &PreState[T]{Graph: g}
	// Slices are not comparable; every write counts as a change.
	p.Data = reactive.NewSourceFunc(g, "data", data, nil)
	p.Font = reactive.NewSource(g, "font", font)
	p.Padding = reactive.NewSource(g, "padding", cfg.Padding)
	p.Debug = reactive.NewSource(g, "debug", cfg.Debug)

	s, palette := cfg.Series, cfg.Palette
	p.Lines = reactive.DeriveFunc(g, "lines", slices.Equal[[]series.UseLine],
		func() []series.UseLine { return s.UseLines(palette) })
	p.Points = reactive.DeriveFunc(g, "points", nil,
		func() [][]series.Point { return s.Points(p.Data.Get()) }, p.Data)
	p.XDomain = reactive.DeriveFunc(g, "x-domain", projection.Domain.Equal,
		func() projection.Domain {
			x, _ := series.Domains(p.Points.Get())
			return x
		}, p.Points)
	p.YDomain = reactive.DeriveFunc(g, "y-domain", projection.Domain.Equal,
		func() projection.Domain {
			_, y := series.Domains(p.Points.Get())
			return y
		}, p.Points)
	return p
}

// New creates a graph for cfg and wires the full state for a chart of the
// given outer size.
func New[T any](cfg Config[T], outer bounds.Bounds, data []T) *State[T] {
	name := cfg.Name
	if name == "" {
		name = "chart"
	}
	g := reactive.New(name, reactive.WithLogger(cfg.Logger))
	pre := NewPre(g, cfg, data)

	s := &State[T]{Pre: pre, Edges: slices.Clone(cfg.Edges)}
	s.Outer = reactive.NewSource(g, "outer", outer)
	s.Node = reactive.NewSource(g, "node", watch.Node{})
	s.Pointer = reactive.NewSource(g, "pointer", watch.Pointer{})

	xGen := axisGenerator(cfg.XTicks, cfg.Edges, true)
	yGen := axisGenerator(cfg.YTicks, cfg.Edges, false)

	s.HorizontalSizes = reactive.DeriveFunc(g, "horizontal-sizes", slices.Equal[[]float64],
		func() []float64 { return s.sizes(true, ticks.Generated{}) },
		pre.Font, pre.Padding, pre.Lines)

	s.InnerHeight = reactive.Derive(g, "inner-height", func() float64 {
		_, h := layout.InnerSize(s.Outer.Get(), s.bands(s.HorizontalSizes.Get(), nil))
		return h
	}, s.Outer, s.HorizontalSizes)

	s.YTicks = reactive.DeriveFunc(g, "y-ticks", ticks.Generated.Equal, func() ticks.Generated {
		return yGen.Generate(pre.YDomain.Get(), s.InnerHeight.Get(), ticks.Vertical(pre.Font.Get()))
	}, pre.YDomain, s.InnerHeight, pre.Font)

	s.VerticalSizes = reactive.DeriveFunc(g, "vertical-sizes", slices.Equal[[]float64],
		func() []float64 { return s.sizes(false, s.YTicks.Get()) },
		pre.Font, pre.Padding, pre.Lines, s.YTicks)

	s.Layout = reactive.DeriveFunc(g, "layout", allocationEqual, func() layout.Allocation {
		return layout.Allocate(s.Outer.Get(), s.bands(s.HorizontalSizes.Get(), s.VerticalSizes.Get()))
	}, s.Outer, s.HorizontalSizes, s.VerticalSizes)

	s.Inner = reactive.Map(g, "inner", s.Layout, func(a layout.Allocation) bounds.Bounds { return a.Inner })

	s.XTicks = reactive.DeriveFunc(g, "x-ticks", ticks.Generated.Equal, func() ticks.Generated {
		return xGen.Generate(pre.XDomain.Get(), s.Inner.Get().Width(), ticks.Horizontal(pre.Font.Get()))
	}, pre.XDomain, s.Inner, pre.Font)

	s.Projection = reactive.DeriveFunc(g, "projection", projection.Projection.Equal, func() projection.Projection {
		x := pre.XDomain.Get().Union(s.XTicks.Get().Extent)
		y := pre.YDomain.Get().Union(s.YTicks.Get().Extent)
		return projection.New(s.Inner.Get(), x, y)
	}, s.Inner, pre.XDomain, pre.YDomain, s.XTicks, s.YTicks)

	s.Positions = reactive.DeriveFunc(g, "positions", nil, func() [][]series.Point {
		proj := s.Projection.Get()
		points := pre.Points.Get()
		out := make([][]series.Point, len(points))
		for i, line := range points {
			out[i] = series.Positions(line, proj)
		}
		return out
	}, pre.Points, s.Projection)

	s.Cursor = reactive.Derive(g, "cursor", func() watch.Cursor {
		return watch.Resolve(s.Node.Get(), s.Pointer.Get(), s.Projection.Get())
	}, s.Node, s.Pointer, s.Projection)

	return s
}

// Graph returns the reactive graph backing the state.
func (s *State[T]) Graph() *reactive.Graph { return s.Pre.Graph }

// Update applies several changes as one consistent step.
func (s *State[T]) Update(fn func()) { s.Pre.Graph.Batch(fn) }

// Resize sets the outer size, keeping the origin.
func (s *State[T]) Resize(width, height float64) {
	s.Outer.Set(bounds.New(width, height))
}

// SetData replaces the chart data.
func (s *State[T]) SetData(data []T) { s.Pre.Data.Set(data) }

// EdgeContext snapshots the values edge items render from.
func (s *State[T]) EdgeContext() edge.Context {
	return edge.Context{
		Font:       s.Pre.Font.Get(),
		Padding:    s.Pre.Padding.Get(),
		Lines:      s.Pre.Lines.Get(),
		Debug:      s.Pre.Debug.Get(),
		XTicks:     s.XTicks.Get(),
		YTicks:     s.YTicks.Get(),
		Projection: s.Projection.Get(),
	}
}

// sizes computes the band size of every edge item of one orientation,
// leaving zeros for the other.
func (s *State[T]) sizes(horizontal bool, yTicks ticks.Generated) []float64 {
	c := edge.Context{
		Font:    s.Pre.Font.Get(),
		Padding: s.Pre.Padding.Get(),
		Lines:   s.Pre.Lines.Get(),
		YTicks:  yTicks,
	}
	out := make([]float64, len(s.Edges))
	for i, p := range s.Edges {
		if p.Edge.IsHorizontal() == horizontal {
			out[i] = edge.Size(p.Item, p.Edge, c)
		}
	}
	return out
}

// bands merges the two size lists into layout requests. A nil vertical
// list sizes vertical items at zero.
func (s *State[T]) bands(horizontal, vertical []float64) []layout.Band {
	out := make([]layout.Band, len(s.Edges))
	for i, p := range s.Edges {
		size := horizontal[i]
		if !p.Edge.IsHorizontal() {
			size = 0
			if vertical != nil {
				size = vertical[i]
			}
		}
		out[i] = layout.Band{Edge: p.Edge, Size: size}
	}
	return out
}

func axisGenerator(fallback ticks.Generator, edges []edge.Placed, horizontal bool) ticks.Generator {
	for _, p := range edges {
		if tl, ok := p.Item.(edge.TickLabels); ok && tl.Generator != nil && p.Edge.IsHorizontal() == horizontal {
			return tl.Generator
		}
	}
	if fallback != nil {
		return fallback
	}
	return ticks.AlignedFloats()
}

func allocationEqual(a, b layout.Allocation) bool {
	return a.Inner == b.Inner && slices.Equal(a.Bands, b.Bands)
}
