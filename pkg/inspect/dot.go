package inspect

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/reactive"
	"github.com/matzehuels/stackchart/pkg/render"
)

// Options configures graph rendering.
type Options struct {
	// Detailed adds layer and recompute counts to node labels.
	Detailed bool
}

// ToDOT converts a state graph to Graphviz DOT source.
func ToDOT(g *reactive.Graph, opts Options) string {
	nodes := g.Nodes()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.Name())
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"monospace\", fontsize=12, style=filled, fillcolor=white];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  n%d [label=%q, %s];\n", n.ID, label(n, opts.Detailed), shape(n.Kind))
	}

	buf.WriteString("\n")
	for layer, ids := range layers(nodes) {
		fmt.Fprintf(&buf, "  { rank=same; /* layer %d */", layer)
		for _, id := range ids {
			fmt.Fprintf(&buf, " n%d;", id)
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, d := range n.Deps {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", d, n.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(n reactive.NodeInfo, detailed bool) string {
	if !detailed {
		return n.Name
	}
	return fmt.Sprintf("%s\n%s · layer %d\ncomputes: %d", n.Name, n.Kind, n.Layer, n.Computes)
}

func shape(k reactive.Kind) string {
	switch k {
	case reactive.KindSource:
		return `shape=ellipse, fillcolor="#eef5ff"`
	case reactive.KindEffect:
		return `shape=octagon, style="filled,dashed", fillcolor=lightgrey`
	}
	return `shape=box, style="rounded,filled"`
}

// layers groups node ids by layer, in layer order.
func layers(nodes []reactive.NodeInfo) [][]int {
	var out [][]int
	for _, n := range nodes {
		for len(out) <= n.Layer {
			out = append(out, nil)
		}
		out[n.Layer] = append(out[n.Layer], n.ID)
	}
	for _, ids := range out {
		slices.Sort(ids)
	}
	return out
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render renders DOT source in any output format, converting the SVG for
// PNG and PDF.
func Render(ctx context.Context, dot string, f render.Format, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.Convert(ctx, svg, f, scale)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// pixel-sized one anchored at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
