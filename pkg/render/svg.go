package render

import (
	"bytes"
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/stackchart/pkg/colour"
	"github.com/matzehuels/stackchart/pkg/fonts"
)

// Document is a complete drawing.
type Document struct {
	ID     string
	Title  string
	Width  float64
	Height float64
	Root   Element
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background *colour.Colour
	fontFamily string
}

// WithBackground fills the canvas before drawing.
func WithBackground(c colour.Colour) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithFontFamily overrides the CSS font family of all text.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// RenderSVG writes doc as a standalone SVG document.
func RenderSVG(doc Document, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: fonts.FontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = 2

	canvas.Start(doc.Width, doc.Height,
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(doc.Width), num(doc.Height)),
		fmt.Sprintf(`font-family="%s"`, r.fontFamily))
	if doc.Title != "" {
		canvas.Title(doc.Title)
	}
	if r.background != nil {
		canvas.Rect(0, 0, doc.Width, doc.Height, "fill="+strconv.Quote(r.background.Hex()))
	}

	arrowID := markerID(doc.ID)
	if hasArrow(doc.Root) {
		canvas.Def()
		canvas.Marker(arrowID, 5, 5, 10, 10, `orient="auto-start-reverse"`, `viewBox="0 0 10 10"`)
		canvas.Path("M 0 0 L 10 5 L 0 10 z", `fill="context-stroke"`)
		canvas.MarkerEnd()
		canvas.DefEnd()
	}

	w := writer{canvas: canvas, arrowID: arrowID}
	w.element(doc.Root)
	canvas.End()
	return buf.Bytes()
}

type writer struct {
	canvas  *svg.SVG
	arrowID string
}

func (w writer) element(e Element) {
	switch e := e.(type) {
	case nil:
	case Group:
		attrs := []string{}
		if e.Class != "" {
			attrs = append(attrs, attr("class", e.Class))
		}
		if e.Key != "" {
			attrs = append(attrs, attr("data-key", e.Key))
		}
		if e.Transform != "" {
			attrs = append(attrs, attr("transform", e.Transform))
		}
		if len(attrs) == 0 {
			w.canvas.Group()
		} else {
			w.canvas.Group(attrs...)
		}
		for _, c := range e.Children {
			w.element(c)
		}
		w.canvas.Gend()
	case Line:
		attrs := []string{attr("stroke", e.Stroke.Hex()), attr("stroke-width", num(e.Width))}
		if e.Key != "" {
			attrs = append(attrs, attr("data-key", e.Key))
		}
		if e.Arrow {
			attrs = append(attrs, attr("marker-end", "url(#"+w.arrowID+")"))
		}
		w.canvas.Line(e.X1, e.Y1, e.X2, e.Y2, attrs...)
	case Path:
		if e.D == "" {
			return
		}
		attrs := []string{`fill="none"`, attr("stroke", e.Stroke.Hex()), attr("stroke-width", num(e.Width))}
		if e.Key != "" {
			attrs = append(attrs, attr("data-key", e.Key))
		}
		w.canvas.Path(e.D, attrs...)
	case Rect:
		if e.Bounds.IsEmpty() {
			return
		}
		attrs := []string{attr("fill", "none")}
		if e.Fill != nil {
			attrs[0] = attr("fill", e.Fill.Hex())
		}
		if e.Stroke != nil {
			attrs = append(attrs, attr("stroke", e.Stroke.Hex()), attr("stroke-width", num(e.Width)))
		}
		if e.Dashed {
			attrs = append(attrs, `stroke-dasharray="4 2"`)
		}
		if e.Key != "" {
			attrs = append(attrs, attr("data-key", e.Key))
		}
		b := e.Bounds
		w.canvas.Rect(b.Left, b.Top, b.Width(), b.Height(), attrs...)
	case Text:
		if e.Text == "" {
			return
		}
		attrs := []string{
			attr("text-anchor", e.Anchor.String()),
			attr("fill", e.Fill.Hex()),
		}
		if e.Baseline != "" {
			attrs = append(attrs, attr("dominant-baseline", string(e.Baseline)))
		}
		if e.Size > 0 {
			attrs = append(attrs, attr("font-size", num(e.Size)+"px"))
		}
		if e.Rotate != 0 {
			attrs = append(attrs, attr("transform", fmt.Sprintf("rotate(%s %s %s)", num(e.Rotate), num(e.X), num(e.Y))))
		}
		if e.Key != "" {
			attrs = append(attrs, attr("data-key", e.Key))
		}
		w.canvas.Text(e.X, e.Y, e.Text, attrs...)
	}
}

func hasArrow(root Element) bool {
	found := false
	Walk(root, func(e Element) {
		if l, ok := e.(Line); ok && l.Arrow {
			found = true
		}
	})
	return found
}

func markerID(docID string) string {
	if docID == "" {
		return "arrow"
	}
	return docID + "-arrow"
}

func attr(name, value string) string {
	return name + "=" + strconv.Quote(fonts.EscapeXML(value))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
