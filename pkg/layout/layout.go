// Package layout allocates the outer chart rectangle between edge items
// (titles, legends, tick labels) and the inner plotting area.
//
// Items are sliced off the remaining rectangle one at a time, in the order
// they were declared. Each item consumes its size from its own edge:
//
//	Top:    band = [top, top+s],       remaining.Top += s
//	Bottom: band = [bottom-s, bottom], remaining.Bottom -= s
//	Left:   band = [left, left+s],     remaining.Left += s
//	Right:  band = [right-s, right],   remaining.Right -= s
//
// Horizontal bands (Top, Bottom) span the remaining width at the time they
// are placed; vertical bands span the remaining height. Declaring
// [Top, Left] therefore gives the title the full width and the left axis
// whatever height is left below it.
//
// Over-allocation is not an error: the inner rectangle simply ends up
// degenerate and renders nothing.
package layout

import "github.com/matzehuels/stackchart/pkg/bounds"

// Band is one edge item's request: which edge it sits on and how much of
// the perpendicular dimension it needs.
type Band struct {
	Edge Edge
	Size float64
}

// Allocation is the result of Allocate.
type Allocation struct {
	// Bands holds one rectangle per requested band, in request order.
	Bands []bounds.Bounds
	// Inner is what remains after every band has been placed.
	Inner bounds.Bounds
}

// Allocate slices outer into bands and returns the leftover inner area.
// Sum of band sizes plus inner size equals the outer size on each axis.
func Allocate(outer bounds.Bounds, bands []Band) Allocation {
	remaining := outer
	out := make([]bounds.Bounds, len(bands))

	for i, band := range bands {
		s := band.Size
		switch band.Edge {
		case Top:
			out[i] = bounds.FromPoints(remaining.Left, remaining.Top, remaining.Right, remaining.Top+s)
			remaining.Top += s
		case Bottom:
			out[i] = bounds.FromPoints(remaining.Left, remaining.Bottom-s, remaining.Right, remaining.Bottom)
			remaining.Bottom -= s
		case Left:
			out[i] = bounds.FromPoints(remaining.Left, remaining.Top, remaining.Left+s, remaining.Bottom)
			remaining.Left += s
		case Right:
			out[i] = bounds.FromPoints(remaining.Right-s, remaining.Top, remaining.Right, remaining.Bottom)
			remaining.Right -= s
		}
	}

	return Allocation{Bands: out, Inner: remaining}
}

// Sum returns the total size requested on each of the given edges.
func Sum(bands []Band, edge Edge) float64 {
	var total float64
	for _, b := range bands {
		if b.Edge == edge {
			total += b.Size
		}
	}
	return total
}

// InnerSize computes the inner width and height without building the band
// rectangles. It is what the chart state uses while band sizes are still
// being resolved.
func InnerSize(outer bounds.Bounds, bands []Band) (width, height float64) {
	width = outer.Width() - Sum(bands, Left) - Sum(bands, Right)
	height = outer.Height() - Sum(bands, Top) - Sum(bands, Bottom)
	return width, height
}
