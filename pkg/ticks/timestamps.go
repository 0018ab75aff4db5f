package ticks

import (
	"math"
	"time"

	"github.com/matzehuels/stackchart/pkg/projection"
)

// Timestamps places ticks on calendar boundaries for domains holding unix
// seconds. Like Aligned, ticks never leave the domain.
type Timestamps struct {
	// Format renders labels. Nil means Time("", Location).
	Format Formatter
	// Location is the zone boundaries are aligned to. Nil means UTC.
	Location *time.Location
}

// period is one rung of the step ladder: either a fixed duration or a
// number of calendar months.
type period struct {
	d      time.Duration
	months int
}

func (p period) seconds() float64 {
	if p.months > 0 {
		return float64(p.months) * 30.436875 * 24 * 3600
	}
	return p.d.Seconds()
}

var ladder = []period{
	{d: time.Second}, {d: 2 * time.Second}, {d: 5 * time.Second},
	{d: 10 * time.Second}, {d: 15 * time.Second}, {d: 30 * time.Second},
	{d: time.Minute}, {d: 2 * time.Minute}, {d: 5 * time.Minute},
	{d: 10 * time.Minute}, {d: 15 * time.Minute}, {d: 30 * time.Minute},
	{d: time.Hour}, {d: 2 * time.Hour}, {d: 3 * time.Hour},
	{d: 6 * time.Hour}, {d: 12 * time.Hour},
	{d: 24 * time.Hour}, {d: 2 * 24 * time.Hour}, {d: 7 * 24 * time.Hour},
	{months: 1}, {months: 3}, {months: 6},
	{months: 12}, {months: 24}, {months: 60}, {months: 120},
}

// Generate implements Generator.
func (g Timestamps) Generate(d projection.Domain, avail float64, s Spacing) Generated {
	if unusable(d, avail) {
		return Generated{Extent: d}
	}
	loc := g.Location
	if loc == nil {
		loc = time.UTC
	}
	format := g.Format
	if format == nil {
		format = Time("", loc)
	}

	if d.Min == d.Max {
		return single(d, format)
	}

	span := d.Span()
	for n := candidates(avail, s); ; n /= 2 {
		p := pickPeriod(span / float64(n))
		ts := dedupe(periodTicks(d, p, loc, format))
		step := p.seconds()
		if fits(ts, avail*step/span, s) || n <= 1 {
			if !fits(ts, avail*step/span, s) {
				ts = ts[:1]
			}
			return Generated{Ticks: ts, Step: stepOf(ts, step), Extent: d}
		}
	}
}

// pickPeriod returns the smallest rung at least raw seconds long. Spans
// beyond the ladder fall back to whole multiples of a decade.
func pickPeriod(raw float64) period {
	for _, p := range ladder {
		if p.seconds() >= raw {
			return p
		}
	}
	decades := math.Ceil(raw / period{months: 120}.seconds())
	return period{months: 120 * int(decades)}
}

func periodTicks(d projection.Domain, p period, loc *time.Location, format Formatter) []Tick {
	start := unixTime(d.Min).In(loc)
	step := p.seconds()

	var t time.Time
	if p.months > 0 {
		t = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc)
		for m := int(t.Month()) - 1; m%p.months != 0; m-- {
			t = t.AddDate(0, -1, 0)
		}
		if p.months >= 12 {
			t = time.Date(t.Year()-t.Year()%(p.months/12), time.January, 1, 0, 0, 0, 0, loc)
		}
	} else if p.d >= 24*time.Hour {
		t = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	} else {
		t = start.Truncate(p.d)
	}

	var out []Tick
	for i := 0; ; i++ {
		var next time.Time
		if p.months > 0 {
			next = t.AddDate(0, i*p.months, 0)
		} else {
			next = t.Add(time.Duration(i) * p.d)
		}
		v := float64(next.UnixNano()) / 1e9
		if v > d.Max {
			break
		}
		if v >= d.Min {
			out = append(out, Tick{Value: v, Label: format(v, step)})
		}
	}
	return out
}
