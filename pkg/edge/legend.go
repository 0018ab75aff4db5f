package edge

import (
	"strconv"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/layout"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/series"
)

var textColour = colour.Text

// LegendWidth is the width of a one-column legend: a snippet, the longest
// series name and the horizontal padding.
func LegendWidth(m fonts.Metrics, p bounds.Padding, lines []series.UseLine) float64 {
	var longest float64
	for _, l := range lines {
		longest = max(longest, m.TextWidth(l.Name))
	}
	return series.SnippetWidth(m) + longest + p.Width()
}

// LegendHeight is the height of a one-row legend.
func LegendHeight(m fonts.Metrics, p bounds.Padding) float64 {
	return m.Height + p.Height()
}

// LegendPadding keeps only the padding across the legend's direction, so
// rows stretch the full band.
func LegendPadding(p bounds.Padding, horizontal bool) bounds.Padding {
	if horizontal {
		return p.Vertical()
	}
	return p.Horizontal()
}

func renderLegend(l Legend, e layout.Edge, b bounds.Bounds, c Context) render.Group {
	g := render.Group{Class: "legend"}
	content := LegendPadding(c.Padding, e.IsHorizontal()).Apply(b)
	if c.Debug {
		g.Children = append(g.Children, render.Outline("legend-content", content))
	}
	g.Children = append(g.Children, LegendEntries(c.Lines, c.Font, c.Padding, l.Anchor, e.IsHorizontal(), content)...)
	return g
}

// LegendEntries lays out one snippet per line inside content: side by side
// when horizontal, stacked otherwise. Anchor positions the block along the
// legend's direction.
func LegendEntries(lines []series.UseLine, m fonts.Metrics, p bounds.Padding, anchor layout.Anchor, horizontal bool, content bounds.Bounds) []render.Element {
	if len(lines) == 0 {
		return nil
	}
	snippet := series.SnippetWidth(m)
	out := make([]render.Element, 0, len(lines))

	if horizontal {
		widths := make([]float64, len(lines))
		var total float64
		for i, l := range lines {
			widths[i] = snippet + m.TextWidth(l.Name)
			total += widths[i]
			if i != 0 {
				total += p.Left
			}
		}
		x := anchor.Pick(content.LeftX(), content.CentreX()-total/2, content.RightX()-total)
		for i, l := range lines {
			if i != 0 {
				x += p.Left
			}
			out = append(out, snippetEntry(l, m, x, content.CentreY()))
			x += widths[i]
		}
		return out
	}

	total := float64(len(lines)) * m.Height
	y := anchor.Pick(content.TopY(), content.CentreY()-total/2, content.BottomY()-total)
	for _, l := range lines {
		out = append(out, snippetEntry(l, m, content.LeftX(), y+m.Height/2))
		y += m.Height
	}
	return out
}

// snippetEntry draws a taster line and the series name, vertically
// centred on cy.
func snippetEntry(l series.UseLine, m fonts.Metrics, x, cy float64) render.Element {
	taster := series.TasterBounds(m)
	key := "series-" + strconv.Itoa(l.ID)
	return render.Group{
		Class: "snippet",
		Key:   key,
		Children: []render.Element{
			render.Line{
				X1:     x,
				Y1:     cy + 1,
				X2:     x + taster.Width(),
				Y2:     cy + 1,
				Stroke: l.Colour,
				Width:  l.Width,
			},
			render.Text{
				X:        x + series.SnippetWidth(m),
				Y:        cy,
				Text:     l.Name,
				Anchor:   layout.Start,
				Baseline: render.BaselineMiddle,
				Size:     m.Height,
				Fill:     textColour,
			},
		},
	}
}
