// Package ticks chooses the labelled reference points drawn along an axis.
//
// A [Generator] turns a data domain and the pixel length available for the
// axis into a [Generated] set of ticks. Generators pick "nice" steps (1, 2
// or 5 times a power of ten for numbers, calendar units for timestamps)
// and halve the number of candidate ticks until labels no longer overlap.
//
// Every generator guarantees:
//   - tick values are strictly increasing
//   - no two ticks share a label
//   - zero (or negative) available space yields no ticks
//   - an empty domain yields no ticks
package ticks

import (
	"math"

	"github.com/matzehuels/stackchart/pkg/fonts"
	"github.com/matzehuels/stackchart/pkg/projection"
)

// Tick is one labelled point on an axis.
type Tick struct {
	Value float64
	Label string
}

// Key identifies a tick across updates. Value and label together, since
// distinct values can round to the same label on another generation.
func (t Tick) Key() string {
	return t.Label + "@" + formatKey(t.Value)
}

// Generated is the output of a generator run.
type Generated struct {
	Ticks []Tick
	// Step is the distance between adjacent ticks, zero for fewer than two.
	Step float64
	// Extent is the range the ticks were chosen for. Floating generators may
	// widen it beyond the data domain to land on round numbers.
	Extent projection.Domain
}

// Labels returns the tick labels in order.
func (g Generated) Labels() []string {
	out := make([]string, len(g.Ticks))
	for i, t := range g.Ticks {
		out[i] = t.Label
	}
	return out
}

// Equal compares two generated sets tick by tick.
func (g Generated) Equal(o Generated) bool {
	if len(g.Ticks) != len(o.Ticks) || g.Step != o.Step || !g.Extent.Equal(o.Extent) {
		return false
	}
	for i := range g.Ticks {
		if g.Ticks[i] != o.Ticks[i] {
			return false
		}
	}
	return true
}

// Spacing measures how much room a label needs along the axis.
type Spacing struct {
	// Extent returns the pixel length of a label along the axis.
	Extent func(label string) float64
	// Gap is the minimum free space between adjacent labels.
	Gap float64
}

// Horizontal measures labels laid out left to right: rune count times the
// glyph width, separated by one glyph.
func Horizontal(m fonts.Metrics) Spacing {
	return Spacing{Extent: m.TextWidth, Gap: m.Width}
}

// Vertical measures labels stacked top to bottom: one line each, separated
// by half a line.
func Vertical(m fonts.Metrics) Spacing {
	return Spacing{Extent: func(string) float64 { return m.Height }, Gap: m.Height / 2}
}

// widest returns the largest label extent plus the gap.
func (s Spacing) widest(ts []Tick) float64 {
	var w float64
	for _, t := range ts {
		w = math.Max(w, s.Extent(t.Label))
	}
	return w + s.Gap
}

// Generator produces ticks for a domain.
type Generator interface {
	Generate(d projection.Domain, avail float64, s Spacing) Generated
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(d projection.Domain, avail float64, s Spacing) Generated

func (f GeneratorFunc) Generate(d projection.Domain, avail float64, s Spacing) Generated {
	return f(d, avail, s)
}

// unusable reports whether no ticks can be produced at all.
func unusable(d projection.Domain, avail float64) bool {
	return d.IsEmpty() || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) || !(avail > 0)
}

// candidates is the starting tick count: as many single-glyph labels as fit.
func candidates(avail float64, s Spacing) int {
	unit := s.Extent("0") + s.Gap
	if unit <= 0 {
		return 1
	}
	return max(1, int(avail/unit))
}

// dedupe drops any tick whose label was already emitted.
func dedupe(ts []Tick) []Tick {
	seen := make(map[string]bool, len(ts))
	out := ts[:0]
	for _, t := range ts {
		if seen[t.Label] {
			continue
		}
		seen[t.Label] = true
		out = append(out, t)
	}
	return out
}

// fits reports whether labels at the given pixel spacing leave room for
// the widest one.
func fits(ts []Tick, pixelStep float64, s Spacing) bool {
	return len(ts) < 2 || pixelStep >= s.widest(ts)
}
