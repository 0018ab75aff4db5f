package render

import (
	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/layout"
)

// Element is one node of a drawable tree. The set of element types is
// closed; renderers switch over it.
type Element interface {
	element()
}

// Group collects child elements under a shared class and transform.
type Group struct {
	Class     string
	Key       string
	Transform string
	Children  []Element
}

// Line is a straight stroke.
type Line struct {
	Key            string
	X1, Y1, X2, Y2 float64
	Stroke         colour.Colour
	Width          float64
	// Arrow adds an arrowhead at (X2, Y2).
	Arrow bool
}

// Path is an SVG path outline with no fill.
type Path struct {
	Key    string
	D      string
	Stroke colour.Colour
	Width  float64
}

// Rect is a rectangle, outlined and optionally filled.
type Rect struct {
	Key    string
	Bounds bounds.Bounds
	Stroke *colour.Colour
	Fill   *colour.Colour
	Width  float64
	Dashed bool
}

// Baseline is the SVG dominant-baseline of a text element.
type Baseline string

const (
	BaselineAuto    Baseline = "auto"
	BaselineMiddle  Baseline = "middle"
	BaselineHanging Baseline = "hanging"
)

// Text is a single line of text. Rotate turns it about (X, Y) in degrees.
type Text struct {
	Key      string
	X, Y     float64
	Text     string
	Anchor   layout.Anchor
	Baseline Baseline
	Rotate   float64
	Size     float64
	Fill     colour.Colour
}

func (Group) element() {}
func (Line) element()  {}
func (Path) element()  {}
func (Rect) element()  {}
func (Text) element()  {}

// Walk visits e and its descendants depth-first.
func Walk(e Element, fn func(Element)) {
	if e == nil {
		return
	}
	fn(e)
	if g, ok := e.(Group); ok {
		for _, c := range g.Children {
			Walk(c, fn)
		}
	}
}

// Count returns how many elements of each kind the tree holds, keyed by
// "group", "line", "path", "rect" and "text".
func Count(e Element) map[string]int {
	out := map[string]int{}
	Walk(e, func(e Element) {
		switch e.(type) {
		case Group:
			out["group"]++
		case Line:
			out["line"]++
		case Path:
			out["path"]++
		case Rect:
			out["rect"]++
		case Text:
			out["text"]++
		}
	})
	return out
}

// NewGroup is shorthand for a classed group, skipping nil children.
func NewGroup(class string, children ...Element) Group {
	g := Group{Class: class}
	for _, c := range children {
		if c != nil {
			g.Children = append(g.Children, c)
		}
	}
	return g
}

// Outline returns the dashed rectangle used by the debug overlay.
func Outline(key string, b bounds.Bounds) Rect {
	c := colour.Debug
	return Rect{Key: key, Bounds: b, Stroke: &c, Width: 1, Dashed: true}
}
