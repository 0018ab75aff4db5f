package layout

import (
	"strings"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Edge names one side of a rectangle.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Edges lists every edge in declaration order.
var Edges = []Edge{Top, Right, Bottom, Left}

// IsHorizontal reports whether items on this edge run left to right
// (Top and Bottom) and so consume height rather than width.
func (e Edge) IsHorizontal() bool { return e == Top || e == Bottom }

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "unknown"
}

// ParseEdge parses an edge name, ignoring case.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	}
	return Top, errors.New(errors.ErrCodeInvalidEdge, "unknown edge: `%s`", s)
}

func (e Edge) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Edge) UnmarshalText(b []byte) error {
	v, err := ParseEdge(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Anchor places content along an edge: at its start, middle or end.
type Anchor int

const (
	Start Anchor = iota
	Middle
	End
)

// ParseAnchor parses "start", "middle" or "end", ignoring case. Any other
// keyword yields an ErrCodeInvalidAnchor error naming the input.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(s) {
	case "start":
		return Start, nil
	case "middle":
		return Middle, nil
	case "end":
		return End, nil
	}
	return Middle, errors.New(errors.ErrCodeInvalidAnchor, "unknown anchor: `%s`", s)
}

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "middle"
}

// Pick returns the value matching the anchor.
func (a Anchor) Pick(start, middle, end float64) float64 {
	switch a {
	case Start:
		return start
	case End:
		return end
	}
	return middle
}

func (a Anchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
