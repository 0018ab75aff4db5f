package inner

import (
	"testing"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/state"
	"github.com/matzehuels/stackchart/pkg/ticks"
	"github.com/matzehuels/stackchart/pkg/watch"
)

func testContext() Context {
	in := bounds.FromPoints(50, 0, 250, 100)
	return Context{
		Font:       fonts.Metrics{Height: 10, Width: 10},
		Inner:      in,
		Projection: projection.New(in, projection.NewDomain(-10, 10), projection.NewDomain(0, 100)),
		XTicks:     ticks.Generated{Ticks: []ticks.Tick{{Value: -10, Label: "-10"}, {Value: 0, Label: "0"}, {Value: 10, Label: "10"}}},
		YTicks:     ticks.Generated{Ticks: []ticks.Tick{{Value: 0, Label: "0"}, {Value: 50, Label: "50"}, {Value: 100, Label: "100"}}},
		Lines:      []series.UseLine{{ID: 0, Name: "a", Colour: colour.DefaultPalette[0], Width: 1}},
		Points:     [][]series.Point{{{X: -10, Y: 10}, {X: 0, Y: 40}, {X: 10, Y: 90}}},
	}
}

func lines(e render.Element) []render.Line {
	var out []render.Line
	render.Walk(e, func(e render.Element) {
		if l, ok := e.(render.Line); ok {
			out = append(out, l)
		}
	})
	return out
}

func TestAxisMarker(t *testing.T) {
	c := testContext()

	tests := []struct {
		name      string
		placement Placement
		want      *render.Line
	}{
		{"top", PlaceTop, &render.Line{X1: 50, Y1: 0, X2: 250, Y2: 0}},
		{"bottom", PlaceBottom, &render.Line{X1: 50, Y1: 100, X2: 250, Y2: 100}},
		{"left", PlaceLeft, &render.Line{X1: 50, Y1: 100, X2: 50, Y2: 0}},
		{"right", PlaceRight, &render.Line{X1: 250, Y1: 100, X2: 250, Y2: 0}},
		{"vertical zero", PlaceVerticalZero, &render.Line{X1: 150, Y1: 100, X2: 150, Y2: 0}},
		{"horizontal zero", PlaceHorizontalZero, &render.Line{X1: 50, Y1: 100, X2: 250, Y2: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lines(Draw(AxisMarker{Placement: tt.placement, Arrow: true}, c))
			if len(got) != 1 {
				t.Fatalf("lines = %d, want 1", len(got))
			}
			l := got[0]
			if l.X1 != tt.want.X1 || l.Y1 != tt.want.Y1 || l.X2 != tt.want.X2 || l.Y2 != tt.want.Y2 {
				t.Errorf("line = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)", l.X1, l.Y1, l.X2, l.Y2,
					tt.want.X1, tt.want.Y1, tt.want.X2, tt.want.Y2)
			}
			if !l.Arrow || l.Stroke != colour.AxisMarker || l.Width != colour.DefaultWidth {
				t.Errorf("style = %+v", l)
			}
		})
	}
}

func TestAxisMarkerZeroOutsideDomain(t *testing.T) {
	c := testContext()
	c.Projection = projection.New(c.Inner, projection.NewDomain(1, 10), projection.NewDomain(1, 10))
	for _, p := range []Placement{PlaceHorizontalZero, PlaceVerticalZero} {
		if n := len(lines(Draw(AxisMarker{Placement: p}, c))); n != 0 {
			t.Errorf("%s: lines = %d, want 0", p, n)
		}
	}
}

func TestGridLines(t *testing.T) {
	c := testContext()

	h := lines(Draw(HorizontalGridLine{}, c))
	if len(h) != 3 {
		t.Fatalf("horizontal axis lines = %d, want 3", len(h))
	}
	if m := h[1]; m.X1 != 150 || m.X2 != 150 || m.Y1 != 0 || m.Y2 != 100 || m.Key != "0@0" {
		t.Errorf("middle x tick line = %+v", m)
	}
	if h[0].Stroke != colour.GridLine {
		t.Errorf("stroke = %v, want grid line default", h[0].Stroke)
	}

	red := colour.MustParse("#ff0000")
	v := lines(Draw(VerticalGridLine{Colour: &red, Width: 2}, c))
	if len(v) != 3 {
		t.Fatalf("vertical axis lines = %d, want 3", len(v))
	}
	if m := v[1]; m.Y1 != 50 || m.Y2 != 50 || m.X1 != 50 || m.X2 != 250 || m.Key != "50@50" {
		t.Errorf("middle y tick line = %+v", m)
	}
	if v[0].Stroke != red || v[0].Width != 2 {
		t.Errorf("override = %+v", v[0])
	}
}

func TestGridLineKeysDistinguishValues(t *testing.T) {
	c := testContext()
	c.XTicks = ticks.Generated{Ticks: []ticks.Tick{{Value: 0.001, Label: "0"}, {Value: 0.002, Label: "0"}}}
	h := lines(Draw(HorizontalGridLine{}, c))
	if h[0].Key == h[1].Key {
		t.Errorf("keys collide: %q", h[0].Key)
	}
}

func TestGridLineOwnGenerator(t *testing.T) {
	c := testContext()
	h := lines(Draw(HorizontalGridLine{Generator: ticks.GeneratorFunc(func(d projection.Domain, avail float64, s ticks.Spacing) ticks.Generated {
		return ticks.Generated{Ticks: []ticks.Tick{{Value: d.Max, Label: "max"}}}
	})}, c))
	if len(h) != 1 || h[0].X1 != 250 {
		t.Errorf("lines = %+v", h)
	}
}

func TestDegenerateInnerDrawsNothing(t *testing.T) {
	c := testContext()
	c.Inner = bounds.FromPoints(100, 100, 50, 50)
	c.Cursor = watch.Cursor{X: 75, Y: 75, Hover: true, Inner: true}
	items := []Item{
		AxisMarker{}, HorizontalGridLine{}, VerticalGridLine{}, XGuideLine{}, YGuideLine{}, Legend{},
	}
	for _, it := range items {
		if n := len(lines(Draw(it, c))); n != 0 {
			t.Errorf("%s: lines = %d, want 0", Name(it), n)
		}
	}
}

func TestGuideLines(t *testing.T) {
	c := testContext()

	// Hidden without a cursor over the inner area.
	if n := len(lines(Draw(XGuideLine{}, c))); n != 0 {
		t.Errorf("lines without cursor = %d", n)
	}

	// Pixel x 160 is data x 1, nearest point x 0 at pixel 150. Pixel y 55
	// is data y 45, nearest value at x 0 is 40 at pixel 60.
	c.Cursor = watch.Cursor{X: 160, Y: 55, Hover: true, Inner: true}

	tests := []struct {
		name  string
		item  Item
		x1    float64
		y1    float64
		horiz bool
	}{
		{"x over mouse", XGuideLine{}, 160, 0, false},
		{"x over data", XGuideLine{Align: AlignOverData}, 150, 0, false},
		{"y over mouse", YGuideLine{}, 50, 55, true},
		{"y over data", YGuideLine{Align: AlignOverData}, 50, 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lines(Draw(tt.item, c))
			if len(got) != 1 {
				t.Fatalf("lines = %d, want 1", len(got))
			}
			l := got[0]
			if l.X1 != tt.x1 || l.Y1 != tt.y1 {
				t.Errorf("start = (%v, %v), want (%v, %v)", l.X1, l.Y1, tt.x1, tt.y1)
			}
			if (l.Y1 == l.Y2) != tt.horiz {
				t.Errorf("orientation wrong: %+v", l)
			}
			if l.Stroke != colour.GuideLine {
				t.Errorf("stroke = %v", l.Stroke)
			}
		})
	}
}

func TestInsetLegend(t *testing.T) {
	c := testContext()

	top := Legend{Edge: layout.Top, Anchor: layout.Start}
	if b := top.Bounds(c); b != bounds.FromPoints(50, 0, 250, 10) {
		t.Errorf("top legend bounds = %v", b)
	}

	right := Legend{Edge: layout.Right}
	// snippet 30 + "a" 10
	if b := right.Bounds(c); b != bounds.FromPoints(210, 0, 250, 100) {
		t.Errorf("right legend bounds = %v", b)
	}

	got := lines(Draw(top, c))
	if len(got) != 1 || got[0].X1 != 50 || got[0].Stroke != colour.DefaultPalette[0] {
		t.Errorf("legend taster = %+v", got)
	}
}

func TestParsePlacementAndAlign(t *testing.T) {
	if p, err := ParsePlacement("Horizontal-Zero"); err != nil || p != PlaceHorizontalZero {
		t.Errorf("ParsePlacement() = %v, %v", p, err)
	}
	if _, err := ParsePlacement("diagonal"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParsePlacement(diagonal) error = %v", err)
	}
	if a, err := ParseAlign("DATA"); err != nil || a != AlignOverData {
		t.Errorf("ParseAlign() = %v, %v", a, err)
	}
}

type rec struct{ x, y float64 }

func TestRenderFromState(t *testing.T) {
	cfg := state.Config[rec]{
		Series: series.Series[rec]{
			X:     func(r rec) float64 { return r.x },
			Lines: []series.Line[rec]{series.NewLine("y", func(r rec) float64 { return r.y })},
		},
		Font: fonts.Metrics{Height: 10, Width: 10},
	}
	s := state.New(cfg, bounds.New(200, 100), []rec{{0, 0}, {10, 10}})
	s.Update(func() {
		s.Node.Set(watch.At(bounds.New(200, 100)))
		s.Pointer.Set(watch.PointerAt(120, 50))
	})

	got := lines(Render(XGuideLine{Align: AlignOverData}, s))
	if len(got) != 1 || got[0].X1 != 200 {
		t.Errorf("guide line = %+v, want snapped to x 10 at pixel 200", got)
	}
}
