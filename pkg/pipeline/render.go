package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/render"
)

// Render generates output artifacts in the requested formats. The SVG is
// rendered once and converted for PNG and PDF.
func Render(ctx context.Context, m *chart.Mounted[dataset.Record], opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	svg := m.SVG()
	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		data, err := render.Convert(ctx, svg, format, opts.Scale)
		if err != nil {
			return nil, errors.Context(err, "render %s", format)
		}
		artifacts[string(format)] = data
	}
	return artifacts, nil
}
