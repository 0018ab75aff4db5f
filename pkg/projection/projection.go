// Package projection maps data coordinates into the inner plotting area
// and back.
//
// The mapping is affine on each axis. X grows to the right; Y is inverted
// so that larger data values sit higher on screen:
//
//	px = left   + (x - xmin) / (xmax - xmin) * width
//	py = bottom - (y - ymin) / (ymax - ymin) * height
//
// A degenerate domain (min == max) maps every value to the midpoint of the
// axis. NaN inputs produce NaN outputs so that gaps survive projection.
package projection

import (
	"github.com/aclements/go-moremath/scale"

	"github.com/matzehuels/stackchart/pkg/bounds"
)

// Projection converts between data space and pixel space for one chart.
// It is a value; the chart state rebuilds it whenever the inner bounds or
// either domain changes.
type Projection struct {
	bounds bounds.Bounds
	x, y   scale.Linear
}

// New builds a projection of the x and y domains onto b. Empty domains are
// treated as [0, 0].
func New(b bounds.Bounds, x, y Domain) Projection {
	x, y = x.OrZero(), y.OrZero()
	return Projection{
		bounds: b,
		x:      scale.Linear{Min: x.Min, Max: x.Max},
		y:      scale.Linear{Min: y.Min, Max: y.Max},
	}
}

// Bounds returns the pixel rectangle the projection maps onto.
func (p Projection) Bounds() bounds.Bounds { return p.bounds }

// XDomain returns the data range mapped onto the horizontal axis.
func (p Projection) XDomain() Domain { return Domain{Min: p.x.Min, Max: p.x.Max} }

// YDomain returns the data range mapped onto the vertical axis.
func (p Projection) YDomain() Domain { return Domain{Min: p.y.Min, Max: p.y.Max} }

// PositionToSVG maps a data point to pixel coordinates.
func (p Projection) PositionToSVG(x, y float64) (float64, float64) {
	return p.X(x), p.Y(y)
}

// X maps a data x value to a pixel x.
func (p Projection) X(x float64) float64 {
	return p.bounds.Left + p.x.Map(x)*p.bounds.Width()
}

// Y maps a data y value to a pixel y.
func (p Projection) Y(y float64) float64 {
	return p.bounds.Bottom - p.y.Map(y)*p.bounds.Height()
}

// SVGToPosition maps pixel coordinates back into data space. For a
// degenerate domain every pixel maps to the domain's single value.
func (p Projection) SVGToPosition(px, py float64) (float64, float64) {
	return p.invert(p.x, px-p.bounds.Left, p.bounds.Width()),
		p.invert(p.y, p.bounds.Bottom-py, p.bounds.Height())
}

func (p Projection) invert(s scale.Linear, offset, length float64) float64 {
	if s.Min == s.Max || length == 0 {
		return s.Min
	}
	return s.Unmap(offset / length)
}

// Equal reports whether two projections produce the same mapping.
func (p Projection) Equal(o Projection) bool {
	return p.bounds == o.bounds && p.x == o.x && p.y == o.y
}
