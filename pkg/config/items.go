package config

import (
	"strings"

	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/edge"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/inner"
	"github.com/matzehuels/stackchart/pkg/layout"
)

// Edge is one [[edge]] table.
//
//	item = "label" | "legend" | "ticks"
type Edge struct {
	Edge   string `toml:"edge"`
	Item   string `toml:"item"`
	Text   string `toml:"text"`
	Anchor string `toml:"anchor"`
	Ticks  Ticks  `toml:"ticks"`
}

// Placed converts the table into a placed edge item.
func (e Edge) Placed() (edge.Placed, error) {
	side, err := layout.ParseEdge(e.Edge)
	if err != nil {
		return edge.Placed{}, err
	}
	anchor, err := parseAnchor(e.Anchor)
	if err != nil {
		return edge.Placed{}, err
	}

	var item edge.Item
	switch strings.ToLower(e.Item) {
	case "label", "title":
		item = edge.RotatedLabel{Text: e.Text, Anchor: anchor}
	case "legend":
		item = edge.Legend{Anchor: anchor}
	case "ticks":
		g, err := e.Ticks.Generator()
		if err != nil {
			return edge.Placed{}, err
		}
		item = edge.TickLabels{Generator: g}
	default:
		return edge.Placed{}, errors.New(errors.ErrCodeInvalidConfig, "unknown edge item %q (want label, legend or ticks)", e.Item)
	}
	return edge.Placed{Edge: side, Item: item}, nil
}

// Inner is one [[inner]] table.
//
//	item = "axis-marker" | "grid-line-horizontal" | "grid-line-vertical" |
//	       "guide-line-x" | "guide-line-y" | "legend"
type Inner struct {
	Item      string  `toml:"item"`
	Placement string  `toml:"placement"`
	Arrow     bool    `toml:"arrow"`
	Colour    string  `toml:"colour"`
	Width     float64 `toml:"width"`
	Align     string  `toml:"align"`
	Edge      string  `toml:"edge"`
	Anchor    string  `toml:"anchor"`
	Ticks     Ticks   `toml:"ticks"`
}

// ToItem converts the table into an inner item.
func (in Inner) ToItem() (inner.Item, error) {
	c, err := parseColour(in.Colour)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(in.Item) {
	case "axis-marker":
		p := inner.PlaceBottom
		if in.Placement != "" {
			if p, err = inner.ParsePlacement(in.Placement); err != nil {
				return nil, err
			}
		}
		return inner.AxisMarker{Placement: p, Arrow: in.Arrow, Colour: c, Width: in.Width}, nil

	case "grid-line-horizontal", "grid-line-vertical":
		g, err := in.Ticks.Generator()
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(strings.ToLower(in.Item), "horizontal") {
			return inner.HorizontalGridLine{Colour: c, Width: in.Width, Generator: g}, nil
		}
		return inner.VerticalGridLine{Colour: c, Width: in.Width, Generator: g}, nil

	case "guide-line-x", "guide-line-y":
		a := inner.AlignOverMouse
		if in.Align != "" {
			if a, err = inner.ParseAlign(in.Align); err != nil {
				return nil, err
			}
		}
		if strings.HasSuffix(strings.ToLower(in.Item), "x") {
			return inner.XGuideLine{Align: a, Colour: c, Width: in.Width}, nil
		}
		return inner.YGuideLine{Align: a, Colour: c, Width: in.Width}, nil

	case "legend":
		side := layout.Top
		if in.Edge != "" {
			if side, err = layout.ParseEdge(in.Edge); err != nil {
				return nil, err
			}
		}
		anchor, err := parseAnchor(in.Anchor)
		if err != nil {
			return nil, err
		}
		return inner.Legend{Edge: side, Anchor: anchor}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown inner item %q", in.Item)
}

// parseAnchor defaults to Middle when s is empty.
func parseAnchor(s string) (layout.Anchor, error) {
	if s == "" {
		return layout.Middle, nil
	}
	return layout.ParseAnchor(s)
}

func parseColour(s string) (*colour.Colour, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colour.Parse(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
