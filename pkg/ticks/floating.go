package ticks

import (
	"github.com/aclements/go-moremath/scale"

	"github.com/matzehuels/stackchart/pkg/projection"
)

// Floating rounds the domain outwards to the nearest tick level so that
// both ends carry a label. The returned Extent is the widened domain; the
// chart unions it into the projection so the outer ticks stay on screen.
type Floating struct {
	// Format renders labels. Nil means Decimal.
	Format Formatter
}

// FloatingFloats returns the default floating generator.
func FloatingFloats() Floating { return Floating{} }

// Generate implements Generator.
func (f Floating) Generate(d projection.Domain, avail float64, s Spacing) Generated {
	if unusable(d, avail) {
		return Generated{Extent: d}
	}
	format := f.Format
	if format == nil {
		format = Decimal
	}

	for n := candidates(avail, s); ; n /= 2 {
		opts := scale.TickOptions{Max: n + 1}
		sc := scale.Linear{Min: d.Min, Max: d.Max}
		sc.Nice(opts)
		major, _ := sc.Ticks(opts)

		var step float64
		if len(major) > 1 {
			step = major[1] - major[0]
		}
		ts := make([]Tick, 0, len(major))
		for _, v := range major {
			if step > 0 {
				v = round(v, Decimals(step))
			}
			ts = append(ts, Tick{Value: v, Label: format(v, step)})
		}
		ts = dedupe(ts)

		extent := projection.NewDomain(sc.Min, sc.Max)
		pixelStep := 0.0
		if span := extent.Span(); span > 0 {
			pixelStep = avail * step / span
		}
		if fits(ts, pixelStep, s) || n <= 1 {
			if !fits(ts, pixelStep, s) {
				ts = ts[:1]
			}
			return Generated{Ticks: ts, Step: stepOf(ts, step), Extent: extent}
		}
	}
}
