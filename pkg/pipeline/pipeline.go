// Package pipeline runs the load → mount → render pipeline behind the CLI.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the TOML chart description and its CSV/XLSX data file
//  2. Mount: Bind the data to a chart and settle its reactive state
//  3. Render: Write SVG and convert it to PNG or PDF as requested
//
// Rendered artifacts are cached under a key derived from the description
// bytes, the data bytes and the render settings, so an unchanged chart
// renders once.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  "load.toml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [Runner.Watch] re-runs the pipeline whenever the description or the data
// file changes.
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/cache"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/watch"
)

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// TTLArtifact bounds how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Options configures one pipeline run.
type Options struct {
	// Config is the path of the TOML chart description.
	Config string
	// Data overrides the description's data path.
	Data string
	// Sheet overrides the description's XLSX sheet.
	Sheet string

	Formats []string
	Scale   float64

	// Width and Height override the description's size when non-zero.
	Width  float64
	Height float64
	// Debug forces the layout outlines on.
	Debug bool
	// Pointer renders the chart as if the pointer were at this position,
	// which draws guide lines.
	Pointer *watch.Pointer

	// Refresh bypasses cached artifacts.
	Refresh bool

	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ChartID identifies the mounted chart in logs and SVG ids.
	ChartID string

	// ConfigHash and DataHash are the content hashes used for caching.
	ConfigHash string
	DataHash   string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Series     int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormats checks that all formats are known.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == "" {
		return errors.New(errors.ErrCodeInvalidInput, "a chart description is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{string(render.FormatSVG)}
	}
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", o.Width}, {"height", o.Height}} {
		if d.v != 0 {
			if err := errors.ValidateSize(d.name, d.v); err != nil {
				return err
			}
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// variant captures the overrides that change the picture without changing
// the description or data bytes.
func (o *Options) variant() string {
	var b strings.Builder
	if o.Width != 0 || o.Height != 0 {
		fmt.Fprintf(&b, "size=%gx%g;", o.Width, o.Height)
	}
	if o.Debug {
		b.WriteString("debug;")
	}
	if o.Pointer != nil && o.Pointer.Active {
		fmt.Fprintf(&b, "pointer=%g,%g;", o.Pointer.X, o.Pointer.Y)
	}
	if o.Sheet != "" {
		fmt.Fprintf(&b, "sheet=%s;", o.Sheet)
	}
	return b.String()
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Variant: o.variant()}
	if format == string(render.FormatPNG) {
		opts.Scale = o.Scale
	}
	return opts
}
