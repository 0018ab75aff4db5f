package config

import (
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/edge"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/inner"
	"github.com/matzehuels/stackchart/pkg/series"
)

// Chart builds the chart declaration, binding series accessors to the
// columns of t.
func (f *File) Chart(t *dataset.Table) (chart.Chart[dataset.Record], error) {
	var c chart.Chart[dataset.Record]

	m, err := f.Metrics()
	if err != nil {
		return c, err
	}
	palette, err := colour.ParsePalette(f.Palette)
	if err != nil {
		return c, errors.Context(err, "palette")
	}
	background, err := parseColour(f.Background)
	if err != nil {
		return c, errors.Context(err, "background")
	}

	x, err := f.xAccessor(t)
	if err != nil {
		return c, err
	}
	lines := make([]series.Line[dataset.Record], 0, len(f.Series))
	for i, s := range f.Series {
		y, err := t.Accessor(s.Column)
		if err != nil {
			return c, err
		}
		name := s.Name
		if name == "" {
			name = s.Column
		}
		if f.MaxNameWidth > 0 {
			name = m.Truncate(name, f.MaxNameWidth)
		}
		l := series.NewLine(name, y).WithWidth(s.Width)
		if s.Colour != "" {
			col, err := colour.Parse(s.Colour)
			if err != nil {
				return c, errors.Context(err, "series %d", i+1)
			}
			l = l.WithColour(col)
		}
		lines = append(lines, l)
	}

	// Past the default palette, more series get generated hues rather
	// than repeating colours.
	if len(palette) == 0 {
		if n := uncoloured(f.Series); n > len(colour.DefaultPalette) {
			palette = colour.DefaultPalette.Extend(n)
		}
	}

	xg, err := f.XTicks.Generator()
	if err != nil {
		return c, errors.Context(err, "x_ticks")
	}
	yg, err := f.YTicks.Generator()
	if err != nil {
		return c, errors.Context(err, "y_ticks")
	}

	edges := make([]edge.Placed, 0, len(f.Edges))
	for i, e := range f.Edges {
		p, err := e.Placed()
		if err != nil {
			return c, errors.Context(err, "edge %d", i+1)
		}
		edges = append(edges, p)
	}
	items := make([]inner.Item, 0, len(f.Inner))
	for i, in := range f.Inner {
		it, err := in.ToItem()
		if err != nil {
			return c, errors.Context(err, "inner %d", i+1)
		}
		items = append(items, it)
	}

	return chart.Chart[dataset.Record]{
		Title:      f.Title,
		Aspect:     f.Aspect(),
		Font:       m,
		FontFamily: f.Font.Family,
		Padding:    f.Padding.bounds(),
		Debug:      f.Debug,
		Palette:    palette,
		Background: background,
		Series:     series.Series[dataset.Record]{X: x, Lines: lines},
		Edges:      edges,
		Inner:      items,
		XTicks:     xg,
		YTicks:     yg,
	}, nil
}

func uncoloured(ss []Series) int {
	n := 0
	for _, s := range ss {
		if s.Colour == "" {
			n++
		}
	}
	return n
}

func (f *File) xAccessor(t *dataset.Table) (func(dataset.Record) float64, error) {
	if f.Data.X != "" {
		return t.Accessor(f.Data.X)
	}
	if len(t.Columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "%s has no columns", t.Source)
	}
	return t.Accessor(t.Columns[0])
}
