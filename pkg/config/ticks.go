package config

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/ticks"
)

// Ticks describes a tick generator.
//
//	kind     aligned (default) | floating | timestamps
//	format   decimal (default) | locale | time
//	locale   BCP 47 tag for the locale format, e.g. "de-CH"
//	layout   Go time layout for the time format; empty picks one per step
//	timezone IANA zone for timestamps and time labels; empty is UTC
type Ticks struct {
	Kind     string `toml:"kind"`
	Format   string `toml:"format"`
	Locale   string `toml:"locale"`
	Layout   string `toml:"layout"`
	Timezone string `toml:"timezone"`
}

// IsZero reports whether nothing was set.
func (t Ticks) IsZero() bool { return t == Ticks{} }

// Generator builds the generator. The zero Ticks yields nil so that the
// chart falls back to its default.
func (t Ticks) Generator() (ticks.Generator, error) {
	if t.IsZero() {
		return nil, nil
	}
	loc := time.UTC
	if t.Timezone != "" {
		l, err := time.LoadLocation(t.Timezone)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "timezone %q", t.Timezone)
		}
		loc = l
	}

	kind := strings.ToLower(t.Kind)
	format, err := t.formatter(kind, loc)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "", "aligned":
		return ticks.Aligned{Format: format}, nil
	case "floating":
		return ticks.Floating{Format: format}, nil
	case "timestamps", "time":
		return ticks.Timestamps{Format: format, Location: loc}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown tick kind %q (want aligned, floating or timestamps)", t.Kind)
}

func (t Ticks) formatter(kind string, loc *time.Location) (ticks.Formatter, error) {
	switch strings.ToLower(t.Format) {
	case "":
		if kind == "timestamps" || kind == "time" {
			return ticks.Time(t.Layout, loc), nil
		}
		return nil, nil
	case "decimal":
		return ticks.Decimal, nil
	case "locale":
		tag, err := language.Parse(t.Locale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "locale %q", t.Locale)
		}
		return ticks.Locale(tag), nil
	case "time":
		return ticks.Time(t.Layout, loc), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown tick format %q (want decimal, locale or time)", t.Format)
}
