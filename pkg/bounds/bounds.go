// Package bounds provides the axis-aligned rectangle and padding types
// shared by every layout and rendering step.
//
// Coordinates are SVG user units: x grows right, y grows down. A Bounds
// whose right edge is left of its left edge (or bottom above top) is
// degenerate; it is still a valid value and simply has non-positive area.
package bounds

import "fmt"

// Bounds is an axis-aligned rectangle in pixel space.
type Bounds struct {
	Left, Top     float64
	Right, Bottom float64
}

// New returns a width x height rectangle anchored at the origin.
func New(width, height float64) Bounds {
	return Bounds{Right: width, Bottom: height}
}

// FromPoints builds bounds from its four edges.
func FromPoints(left, top, right, bottom float64) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal span. Negative for degenerate bounds.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span. Negative for degenerate bounds.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// CentreX returns the horizontal midpoint.
func (b Bounds) CentreX() float64 { return b.Left + b.Width()/2 }

// CentreY returns the vertical midpoint.
func (b Bounds) CentreY() float64 { return b.Top + b.Height()/2 }

func (b Bounds) LeftX() float64   { return b.Left }
func (b Bounds) TopY() float64    { return b.Top }
func (b Bounds) RightX() float64  { return b.Right }
func (b Bounds) BottomY() float64 { return b.Bottom }

// IsEmpty reports whether the rectangle has no drawable area.
func (b Bounds) IsEmpty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return b.Left <= x && x <= b.Right && b.Top <= y && y <= b.Bottom
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", b.Left, b.Top, b.Width(), b.Height())
}

// Padding is the space reserved on each side of a rectangle.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns the same padding on every side.
func Uniform(v float64) Padding { return Padding{Top: v, Right: v, Bottom: v, Left: v} }

// Sides returns padding in CSS order: top, right, bottom, left.
func Sides(top, right, bottom, left float64) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Width returns the total horizontal padding.
func (p Padding) Width() float64 { return p.Left + p.Right }

// Height returns the total vertical padding.
func (p Padding) Height() float64 { return p.Top + p.Bottom }

// Apply shrinks outer by the padding.
func (p Padding) Apply(outer Bounds) Bounds {
	return Bounds{
		Left:   outer.Left + p.Left,
		Top:    outer.Top + p.Top,
		Right:  outer.Right - p.Right,
		Bottom: outer.Bottom - p.Bottom,
	}
}

// Horizontal keeps only the left and right padding.
func (p Padding) Horizontal() Padding { return Padding{Left: p.Left, Right: p.Right} }

// Vertical keeps only the top and bottom padding.
func (p Padding) Vertical() Padding { return Padding{Top: p.Top, Bottom: p.Bottom} }
