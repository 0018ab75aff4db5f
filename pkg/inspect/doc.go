// Package inspect draws a chart's reactive state graph with Graphviz.
//
// Every source, memo and effect becomes a node; an arrow runs from each
// dependency to its dependent. Nodes of the same layer (distance from the
// sources) share a rank, so the picture reads top to bottom in the order
// values recompute.
//
//	dot := inspect.ToDOT(m.State.Graph(), inspect.Options{Detailed: true})
//	svg, err := inspect.RenderSVG(ctx, dot)
//
// Sources are ellipses, memos rounded boxes and effects dashed octagons.
// With Detailed set, labels also show the layer and how many times the
// node has recomputed, which makes memo cut-offs visible after a resize.
package inspect
