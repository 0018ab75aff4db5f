package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/pipeline"
	"github.com/matzehuels/stackchart/pkg/render"
	"github.com/matzehuels/stackchart/pkg/watch"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (single format) or base path
	formats string  // comma-separated output formats
	data    string  // data file overriding the description's
	sheet   string  // XLSX sheet overriding the description's
	width   float64 // outer width override
	height  float64 // outer height override
	scale   float64 // PNG resolution multiplier
	pointer string  // "x,y" pointer position for guide lines
	debug   bool    // draw layout outlines
	noCache bool    // skip the artifact cache entirely
	refresh bool    // re-render even when cached
	watch   bool    // re-render on file changes
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart description to SVG, PNG or PDF",
		Long: `Render a chart description to SVG, PNG or PDF.

PNG and PDF output is converted from the SVG with rsvg-convert.
Rendered files are cached; unchanged inputs are served from the cache.`,
		Args: cobra.ExactArgs(1),

		ValidArgsFunction: completeDescriptions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.data, "data", "", "data file (overrides data.path)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet (overrides data.sheet)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "outer width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "outer height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.pointer, "pointer", "", "render as if the pointer were at x,y (draws guide lines)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "outline every laid-out region")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the description or data changes")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		Config:  input,
		Data:    opts.data,
		Sheet:   opts.sheet,
		Formats: parseFormats(opts.formats),
		Scale:   opts.scale,
		Width:   opts.width,
		Height:  opts.height,
		Debug:   opts.debug,
		Refresh: opts.refresh,
		Logger:  logger,
	}
	if opts.pointer != "" {
		p, err := parsePointer(opts.pointer)
		if err != nil {
			return err
		}
		popts.Pointer = &p
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.watch {
		printInfo("Watching %s (Ctrl-C to stop)", input)
		err := runner.Watch(ctx, popts, 0, func(res *pipeline.Result, err error) {
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return
			}
			if err := writeArtifacts(res, input, opts.output, popts.Formats, logger); err != nil {
				printError("%s", err)
			}
		})
		if err == context.Canceled {
			return nil
		}
		return err
	}

	prog := newProgress(logger)
	var spin *spinner
	if logger.GetLevel() > log.DebugLevel {
		spin = startSpinner(ctx, "Rendering "+filepath.Base(input))
	}
	res, err := runner.Execute(ctx, popts)
	spin.stop()
	if err != nil {
		return err
	}
	prog.done("Rendered " + input)

	if err := writeArtifacts(res, input, opts.output, popts.Formats, logger); err != nil {
		return err
	}
	printStats(res)
	return nil
}

// writeArtifacts writes every rendered format and lists the files.
func writeArtifacts(res *pipeline.Result, input, output string, formats []string, logger *log.Logger) error {
	for _, f := range formats {
		path := outputPath(output, input, f, len(formats) > 1)
		logger.Debug("writing artifact", "path", path, "bytes", len(res.Artifacts[f]))
		if err := writeFile(path, res.Artifacts[f]); err != nil {
			return err
		}
	}
	return nil
}

// outputPath picks the file for one format. With a single format an
// explicit output is used as given; otherwise the output (or the input
// without its extension) is a base path that gets the format appended.
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := strings.TrimPrefix(filepath.Ext(base), "."); slices.Contains(knownFormats, ext) {
		base = strings.TrimSuffix(base, "."+ext)
	}
	return base + "." + format
}

var knownFormats = []string{string(render.FormatSVG), string(render.FormatPNG), string(render.FormatPDF)}

// parsePointer parses "x,y".
func parsePointer(s string) (watch.Pointer, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return watch.Pointer{}, errors.New(errors.ErrCodeInvalidInput, "pointer must be x,y, got %q", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return watch.Pointer{}, errors.New(errors.ErrCodeInvalidInput, "pointer must be two numbers, got %q", s)
	}
	return watch.PointerAt(x, y), nil
}

// printStats prints run statistics on a single line.
func printStats(res *pipeline.Result) {
	status, statusStyle := iconFresh, styleComputed
	if res.CacheInfo.RenderHit {
		status, statusStyle = iconCached, styleCached
	}
	parts := []string{}
	if res.Stats.Rows > 0 {
		parts = append(parts, fmt.Sprintf("%d rows", res.Stats.Rows), fmt.Sprintf("%d series", res.Stats.Series))
	}
	line := "  "
	for _, part := range parts {
		line += StyleDim.Render(part) + StyleDim.Render(" · ")
	}
	fmt.Println(line + statusStyle.Render(status))
}
