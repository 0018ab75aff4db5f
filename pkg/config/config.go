// Package config reads TOML chart descriptions.
//
// A description names a data file, the column holding x values, one
// [[series]] table per plotted column and the edge and inner items to
// draw around and over the lines:
//
//	title      = "Server load"
//	width      = 800
//	height     = 400
//	background = "#ffffff"
//
//	[font]
//	family = "Inter"
//
//	[data]
//	path = "load.csv"
//	x    = "time"
//
//	[x_ticks]
//	kind = "timestamps"
//
//	[[series]]
//	column = "cpu"
//
//	[[edge]]
//	edge = "bottom"
//	item = "ticks"
//
//	[[inner]]
//	item = "grid-line-horizontal"
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/fonts"
)

// DefaultWidth and DefaultHeight size a chart that declares neither.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// File is a decoded chart description.
type File struct {
	Title   string   `toml:"title"`
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Ratio   float64  `toml:"ratio"`
	Font    Font     `toml:"font"`
	Padding Padding  `toml:"padding"`
	Debug   bool     `toml:"debug"`
	Palette []string `toml:"palette"`
	// Background fills the canvas. Empty leaves it transparent.
	Background string `toml:"background"`
	// MaxNameWidth shortens series names wider than this many pixels.
	MaxNameWidth float64 `toml:"max_name_width"`

	Data   Data     `toml:"data"`
	XTicks Ticks    `toml:"x_ticks"`
	YTicks Ticks    `toml:"y_ticks"`
	Series []Series `toml:"series"`
	Edges  []Edge   `toml:"edge"`
	Inner  []Inner  `toml:"inner"`

	// dir resolves relative paths; it is the directory of the loaded file.
	dir string
}

// Font selects text metrics: either explicit pixel sizes or a TrueType
// file measured at Size.
type Font struct {
	Height float64 `toml:"height"`
	Width  float64 `toml:"width"`
	Path   string  `toml:"path"`
	Size   float64 `toml:"size"`
	// Family is the CSS font-family written into the SVG.
	Family string `toml:"family"`
}

// Padding is the space kept around edge item content. All applies to every
// side a non-zero side value does not override.
type Padding struct {
	All    float64 `toml:"all"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Data names the data file and its x column.
type Data struct {
	Path  string `toml:"path"`
	Sheet string `toml:"sheet"`
	// X is the column of x values. Empty means the first column.
	X string `toml:"x"`
}

// Series is one plotted column.
type Series struct {
	Column string  `toml:"column"`
	Name   string  `toml:"name"`
	Colour string  `toml:"colour"`
	Width  float64 `toml:"width"`
}

// Load reads and validates the description at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Context(err, "%s", path)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes and validates a description. Relative paths in the result
// resolve against the working directory.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode chart description")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the parts of the description that do not need data.
func (f *File) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", f.Width}, {"height", f.Height}, {"ratio", f.Ratio}, {"max_name_width", f.MaxNameWidth}} {
		if d.v != 0 {
			if err := errors.ValidateSize(d.name, d.v); err != nil {
				return err
			}
		}
	}
	if f.Width > 0 && f.Height > 0 && f.Ratio > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "set at most two of width, height and ratio")
	}
	if f.Data.Path == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "data.path is required")
	}
	if len(f.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one [[series]] is required")
	}
	for i, s := range f.Series {
		if err := errors.ValidateColumn(s.Column); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "series %d", i+1)
		}
	}
	return nil
}

// DataPath returns the data file path, resolved against the description's
// directory when relative.
func (f *File) DataPath() string {
	return f.resolve(f.Data.Path)
}

func (f *File) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || f.dir == "" {
		return p
	}
	return filepath.Join(f.dir, p)
}

// Aspect returns the sizing rule. Width and height fix the size; one of
// them with a ratio derives the other; a ratio alone follows the host
// width.
func (f *File) Aspect() chart.AspectRatio {
	switch {
	case f.Width > 0 && f.Height > 0:
		return chart.Outer(f.Width, f.Height)
	case f.Width > 0 && f.Ratio > 0:
		return chart.OuterWidth(f.Width, f.Ratio)
	case f.Height > 0 && f.Ratio > 0:
		return chart.OuterHeight(f.Height, f.Ratio)
	case f.Ratio > 0:
		return chart.Environment(f.Ratio)
	case f.Width > 0:
		return chart.OuterWidth(f.Width, DefaultWidth/DefaultHeight)
	case f.Height > 0:
		return chart.OuterHeight(f.Height, DefaultWidth/DefaultHeight)
	}
	return chart.Outer(DefaultWidth, DefaultHeight)
}

// Metrics resolves the font settings.
func (f *File) Metrics() (fonts.Metrics, error) {
	switch {
	case f.Font.Path != "":
		size := f.Font.Size
		if size <= 0 {
			size = fonts.Default.Height
		}
		return fonts.Load(f.resolve(f.Font.Path), size)
	case f.Font.Height > 0:
		w := f.Font.Width
		if w <= 0 {
			w = f.Font.Height * fonts.Default.Width / fonts.Default.Height
		}
		return fonts.Metrics{Height: f.Font.Height, Width: w}, nil
	}
	return fonts.Default, nil
}

func (p Padding) bounds() bounds.Padding {
	if p.All == 0 {
		return bounds.Sides(p.Top, p.Right, p.Bottom, p.Left)
	}
	out := bounds.Uniform(p.All)
	for _, s := range []struct {
		v   float64
		dst *float64
	}{{p.Top, &out.Top}, {p.Right, &out.Right}, {p.Bottom, &out.Bottom}, {p.Left, &out.Left}} {
		if s.v != 0 {
			*s.dst = s.v
		}
	}
	return out
}
