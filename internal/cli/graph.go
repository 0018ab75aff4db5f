package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/inspect"
	"github.com/matzehuels/stackchart/pkg/pipeline"
	"github.com/matzehuels/stackchart/pkg/render"
)

// graphCommand creates the graph command, which draws the reactive state
// graph of a mounted chart.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [chart.toml]",
		Short: "Draw the chart's state graph (DOT, SVG, PNG or PDF)",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDescriptions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			runner := pipeline.NewRunner(nil, logger)
			opts := pipeline.Options{Config: args[0]}

			loaded, err := runner.Load(ctx, opts)
			if err != nil {
				return err
			}
			m, err := runner.Mount(loaded, opts)
			if err != nil {
				return err
			}
			g := m.State.Graph()
			stats := g.Stats()
			logger.Debug("state graph", "nodes", stats.Nodes, "flushes", stats.Flushes, "recomputes", stats.Recomputes)

			dot := inspect.ToDOT(g, inspect.Options{Detailed: detailed})
			if format == "dot" {
				if output == "" {
					fmt.Print(dot)
					return nil
				}
				return writeFile(output, []byte(dot))
			}

			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := inspect.Render(ctx, dot, f, pipeline.DefaultScale)
			if err != nil {
				return err
			}
			if output == "" {
				output = outputPath("", args[0], "graph."+string(f), true)
			}
			return writeFile(output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png, pdf")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show node kind, layer and recompute counts")
	return cmd
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printFile(path)
	return nil
}
