package ticks

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders a tick value as a label. Step is the distance between
// ticks and tells the formatter how much precision is meaningful.
type Formatter func(value, step float64) string

// Decimals returns the number of fractional digits needed to tell ticks
// apart at the given step.
func Decimals(step float64) int {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	return max(0, int(-math.Floor(math.Log10(step)+1e-9)))
}

// precision is the number of fractional digits a label shows: enough to
// separate ticks step apart, or for a lone tick (step 0) the digits of the
// shortest representation of value.
func precision(value, step float64) int {
	if step > 0 {
		return Decimals(step)
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Decimal is the default formatter: the shortest decimal representation of
// the value rounded to the step's precision. A zero step keeps the value
// as it is.
func Decimal(value, step float64) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	if step > 0 {
		value = round(value, Decimals(step))
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// Locale formats numbers with the grouping and decimal separators of tag.
func Locale(tag language.Tag) Formatter {
	p := message.NewPrinter(tag)
	return func(value, step float64) string {
		d := precision(value, step)
		v := round(value, d)
		if v == 0 {
			v = 0 // drop negative zero
		}
		return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(d), number.MaxFractionDigits(d)))
	}
}

// Time formats unix-second values with layout. An empty layout picks one
// from the step: clock time below a day, dates below a year, years above.
func Time(layout string, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return func(value, step float64) string {
		l := layout
		if l == "" {
			l = layoutFor(step)
		}
		return unixTime(value).In(loc).Format(l)
	}
}

func layoutFor(step float64) string {
	switch {
	case step < 60:
		return "15:04:05"
	case step < 24*3600:
		return "15:04"
	case step < 28*24*3600:
		return "Jan 2"
	case step < 365*24*3600:
		return "Jan 2006"
	}
	return "2006"
}

func unixTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9))
}

func round(v float64, decimals int) float64 {
	if decimals == 0 {
		return math.Round(v)
	}
	p := math.Pow10(decimals)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

func formatKey(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
