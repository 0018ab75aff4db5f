package ticks

import (
	"math"

	"github.com/matzehuels/stackchart/pkg/projection"
)

// Aligned places ticks on nice numbers inside the domain. Ticks never fall
// outside [Min, Max]; the endpoints themselves are ticks only when they
// are multiples of the chosen step.
type Aligned struct {
	// Format renders labels. Nil means Decimal.
	Format Formatter
}

// AlignedFloats returns the default aligned generator.
func AlignedFloats() Aligned { return Aligned{} }

// Generate implements Generator.
func (a Aligned) Generate(d projection.Domain, avail float64, s Spacing) Generated {
	if unusable(d, avail) {
		return Generated{Extent: d}
	}
	format := a.Format
	if format == nil {
		format = Decimal
	}

	if d.Min == d.Max {
		return single(d, format)
	}

	span := d.Span()
	for n := candidates(avail, s); ; n /= 2 {
		step := niceStep(span / float64(n))
		ts, ok := alignedTicks(d, step, format)
		if !ok {
			return single(d, format)
		}
		ts = dedupe(ts)
		if fits(ts, avail*step/span, s) || n <= 1 {
			if !fits(ts, avail*step/span, s) {
				ts = ts[:1]
			}
			return Generated{Ticks: ts, Step: stepOf(ts, step), Extent: d}
		}
	}
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	}
	return 10 * base
}

// maxTicks bounds the multiples alignedTicks will enumerate.
const maxTicks = 1 << 12

// alignedTicks lists the multiples of step within d. It reports false when
// the multiples cannot be counted in float64: the domain is narrower than
// the spacing of floats at its magnitude, or step is absurdly small.
func alignedTicks(d projection.Domain, step float64, format Formatter) ([]Tick, bool) {
	slack := step * 1e-9
	first := math.Ceil((d.Min - slack) / step)
	last := math.Floor((d.Max + slack) / step)
	if first+1 == first || last+1 == last || !(last-first <= maxTicks) {
		return nil, false
	}
	decimals := Decimals(step)

	count := int(last-first) + 1
	out := make([]Tick, 0, max(0, count))
	for i := range count {
		v := round((first+float64(i))*step, decimals)
		v = math.Max(d.Min, math.Min(d.Max, v))
		if n := len(out); n > 0 && out[n-1].Value >= v {
			continue
		}
		out = append(out, Tick{Value: v, Label: format(v, step)})
	}
	return out, true
}

// single is the one-tick result for a domain too narrow to subdivide.
func single(d projection.Domain, format Formatter) Generated {
	return Generated{Ticks: []Tick{{Value: d.Min, Label: format(d.Min, 0)}}, Extent: d}
}

func stepOf(ts []Tick, step float64) float64 {
	if len(ts) < 2 {
		return 0
	}
	return step
}
