// Package watch describes what a chart knows about its host: where the
// chart sits on the page and where the pointer is.
//
// Both are plain values supplied from outside (a browser bridge, a test, a
// CLI flag). The helpers translate page coordinates into chart-relative
// ones and decide whether the pointer is over the chart or its inner area.
package watch

import (
	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/projection"
)

// Node is the observed position of the chart on the page. Known is false
// until the host has reported it.
type Node struct {
	Bounds bounds.Bounds
	Known  bool
}

// At returns a known node occupying b.
func At(b bounds.Bounds) Node { return Node{Bounds: b, Known: true} }

// Pointer is the pointer position in page coordinates. Active is false when
// there is no pointer, e.g. after a touch ends.
type Pointer struct {
	X, Y   float64
	Active bool
}

// PointerAt returns an active pointer at (x, y).
func PointerAt(x, y float64) Pointer { return Pointer{X: x, Y: y, Active: true} }

// Hover reports whether the pointer is over the node.
func Hover(n Node, p Pointer) bool {
	return n.Known && p.Active && n.Bounds.Contains(p.X, p.Y)
}

// Relative returns the pointer position relative to the node's top-left
// corner, or (0, 0) while the node is unknown.
func Relative(n Node, p Pointer) (x, y float64) {
	if !n.Known {
		return 0, 0
	}
	return p.X - n.Bounds.LeftX(), p.Y - n.Bounds.TopY()
}

// HoverInner reports whether the pointer is over the projection's inner
// area.
func HoverInner(n Node, p Pointer, proj projection.Projection) bool {
	if !Hover(n, p) {
		return false
	}
	x, y := Relative(n, p)
	return proj.Bounds().Contains(x, y)
}

// Cursor is the pointer as the chart sees it.
type Cursor struct {
	// X and Y are chart-relative pixels.
	X, Y float64
	// Hover is true while the pointer is over the chart.
	Hover bool
	// Inner is true while the pointer is over the inner area.
	Inner bool
}

// Resolve combines the helpers into a Cursor.
func Resolve(n Node, p Pointer, proj projection.Projection) Cursor {
	x, y := Relative(n, p)
	return Cursor{X: x, Y: y, Hover: Hover(n, p), Inner: HoverInner(n, p, proj)}
}
