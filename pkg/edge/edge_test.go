package edge

import (
	"testing"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
	"github.com/matzehuels/stackchart/pkg/ticks"
)

func testContext() Context {
	return Context{
		Font:    fonts.Metrics{Height: 16, Width: 10},
		Padding: bounds.Uniform(4),
		Lines: []series.UseLine{
			{ID: 0, Name: "cpu", Colour: colour.DefaultPalette[0], Width: 1},
			{ID: 1, Name: "memory", Colour: colour.DefaultPalette[1], Width: 1},
		},
		YTicks: ticks.Generated{Ticks: []ticks.Tick{{Value: 0, Label: "0"}, {Value: 100, Label: "100"}}},
	}
}

func TestSize(t *testing.T) {
	c := testContext()

	tests := []struct {
		name string
		item Item
		edge layout.Edge
		want float64
	}{
		{"label top", RotatedLabel{Text: "Title"}, layout.Top, 24},
		{"label left", RotatedLabel{Text: "Title"}, layout.Left, 24},
		{"empty label", RotatedLabel{}, layout.Left, 0},
		{"legend bottom", Legend{}, layout.Bottom, 24},
		// snippet 30 + "memory" 60 + padding 8
		{"legend right", Legend{}, layout.Right, 98},
		{"ticks bottom", TickLabels{}, layout.Bottom, 24},
		// "100" 30 + padding 8
		{"ticks left", TickLabels{}, layout.Left, 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.item, tt.edge, c); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLegendWidthNoLines(t *testing.T) {
	m := fonts.Metrics{Height: 16, Width: 10}
	if got := LegendWidth(m, bounds.Padding{}, nil); got != 30 {
		t.Errorf("LegendWidth() = %v, want 30", got)
	}
}

func firstText(t *testing.T, e render.Element) render.Text {
	t.Helper()
	var out *render.Text
	render.Walk(e, func(e render.Element) {
		if txt, ok := e.(render.Text); ok && out == nil {
			out = &txt
		}
	})
	if out == nil {
		t.Fatal("no text element")
	}
	return *out
}

func TestRenderRotatedLabel(t *testing.T) {
	c := testContext()
	c.Padding = bounds.Padding{}
	b := bounds.FromPoints(0, 0, 20, 100)

	tests := []struct {
		name   string
		edge   layout.Edge
		anchor layout.Anchor
		x, y   float64
		rotate float64
	}{
		{"left start", layout.Left, layout.Start, 10, 100, 270},
		{"left end", layout.Left, layout.End, 10, 0, 270},
		{"right start", layout.Right, layout.Start, 10, 0, 90},
		{"right middle", layout.Right, layout.Middle, 10, 50, 90},
		{"top end", layout.Top, layout.End, 20, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := firstText(t, Render(RotatedLabel{Text: "y", Anchor: tt.anchor}, tt.edge, b, c))
			if txt.X != tt.x || txt.Y != tt.y || txt.Rotate != tt.rotate {
				t.Errorf("text at (%v, %v) rotate %v, want (%v, %v) rotate %v", txt.X, txt.Y, txt.Rotate, tt.x, tt.y, tt.rotate)
			}
		})
	}
}

func TestRenderTickLabels(t *testing.T) {
	c := testContext()
	c.Projection = projection.New(bounds.FromPoints(50, 0, 250, 200), projection.NewDomain(0, 10), projection.NewDomain(0, 100))
	c.XTicks = ticks.Generated{Ticks: []ticks.Tick{{Value: 0, Label: "0"}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"}}}

	bottom := Render(TickLabels{}, layout.Bottom, bounds.FromPoints(50, 200, 250, 224), c)
	var xs []float64
	render.Walk(bottom, func(e render.Element) {
		if txt, ok := e.(render.Text); ok {
			xs = append(xs, txt.X)
		}
	})
	if len(xs) != 3 || xs[0] != 50 || xs[1] != 150 || xs[2] != 250 {
		t.Errorf("x tick positions = %v", xs)
	}

	left := firstText(t, Render(TickLabels{}, layout.Left, bounds.FromPoints(0, 0, 50, 200), c))
	if left.Anchor != layout.End || left.X != 46 || left.Y != 200 {
		t.Errorf("left tick = %+v", left)
	}
}

func TestLegendEntries(t *testing.T) {
	c := testContext()
	m := c.Font

	// Horizontal, start anchored: entries side by side with left padding between.
	row := LegendEntries(c.Lines, m, c.Padding, layout.Start, true, bounds.FromPoints(0, 0, 400, 20))
	if len(row) != 2 {
		t.Fatalf("entries = %d, want 2", len(row))
	}
	second := firstText(t, row[1])
	// first entry 30 + 30, gap 4, snippet 30
	if second.X != 94 || second.Y != 10 {
		t.Errorf("second name at (%v, %v), want (94, 10)", second.X, second.Y)
	}

	// Vertical, end anchored: rows stacked against the bottom.
	col := LegendEntries(c.Lines, m, c.Padding, layout.End, false, bounds.FromPoints(0, 0, 100, 100))
	last := firstText(t, col[1])
	if last.Y != 92 {
		t.Errorf("last row centre = %v, want 92", last.Y)
	}
}

func TestRenderDebugOutline(t *testing.T) {
	c := testContext()
	c.Debug = true
	e := Render(Legend{}, layout.Right, bounds.FromPoints(0, 0, 98, 100), c)
	if n := render.Count(e)["rect"]; n != 2 {
		t.Errorf("debug rects = %d, want 2", n)
	}
}
