// Package render turns chart geometry into output files.
//
// Chart components produce a tree of [Element] values: groups, lines,
// paths, rectangles and text. The tree is plain data with pixel
// coordinates and resolved colours. [RenderSVG] writes it as a standalone
// SVG document through github.com/ajstarks/svgo, and [Convert] rasterises
// that SVG to PNG or PDF with rsvg-convert from librsvg:
//
//	svg := render.RenderSVG(doc)
//	png, err := render.Convert(ctx, svg, render.FormatPNG, 2)
//
// [Walk] and [Count] visit a tree without rendering it, which is how tests
// and the debug overlay inspect layering.
package render
