package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/pipeline"
	"github.com/matzehuels/stackchart/pkg/projection"
	"github.com/matzehuels/stackchart/pkg/state"
	"github.com/matzehuels/stackchart/pkg/ticks"
)

// ticksCommand creates the ticks command, which prints what each axis
// would label without writing any output.
func (c *CLI) ticksCommand() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "ticks [chart.toml]",
		Short: "Print the ticks each axis would draw",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeDescriptions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, loggerFromContext(ctx))
			opts := pipeline.Options{Config: args[0], Width: width, Height: height}

			loaded, err := runner.Load(ctx, opts)
			if err != nil {
				return err
			}
			m, err := runner.Mount(loaded, opts)
			if err != nil {
				return err
			}
			printTicks(os.Stdout, m.State)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "outer width in pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "outer height in pixels")
	return cmd
}

// printTicks writes the inner area and a table of both axes' ticks with
// their pixel positions.
func printTicks(w io.Writer, s *state.State[dataset.Record]) {
	inner := s.Inner.Get()
	proj := s.Projection.Get()
	fmt.Fprintln(w, StyleTitle.Render("Inner area")+" "+StyleValue.Render(inner.String()))
	fmt.Fprintln(w, tickTable(s.XTicks.Get(), s.YTicks.Get(), proj))
}

func tickTable(x, y ticks.Generated, proj projection.Projection) string {
	var rows [][]string
	for _, t := range x.Ticks {
		rows = append(rows, []string{"x", t.Label, num(t.Value), num(proj.X(t.Value))})
	}
	for _, t := range y.Ticks {
		rows = append(rows, []string{"y", t.Label, num(t.Value), num(proj.Y(t.Value))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Axis", "Label", "Value", "Pixel").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return cell.Foreground(colorCyan)
			case col >= 2:
				return cell.Align(lipgloss.Right)
			}
			return cell
		}).
		String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
