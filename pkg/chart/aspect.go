package chart

import (
	"fmt"

	"github.com/matzehuels/stackchart/pkg/watch"
)

type aspectKind int

const (
	aspectOuter aspectKind = iota
	aspectOuterWidth
	aspectOuterHeight
	aspectEnvironment
)

// AspectRatio decides the outer chart size.
type AspectRatio struct {
	kind          aspectKind
	width, height float64
	ratio         float64
}

// Outer fixes both dimensions.
func Outer(width, height float64) AspectRatio {
	return AspectRatio{kind: aspectOuter, width: width, height: height}
}

// OuterWidth fixes the width; height is width / ratio.
func OuterWidth(width, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectOuterWidth, width: width, ratio: ratio}
}

// OuterHeight fixes the height; width is height * ratio.
func OuterHeight(height, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectOuterHeight, height: height, ratio: ratio}
}

// Environment takes the width from the host node; height is
// width / ratio. The chart is empty until the node is known.
func Environment(ratio float64) AspectRatio {
	return AspectRatio{kind: aspectEnvironment, ratio: ratio}
}

// FollowsNode reports whether the size depends on the host node.
func (a AspectRatio) FollowsNode() bool { return a.kind == aspectEnvironment }

// Size resolves the outer width and height. A non-positive ratio yields a
// zero height.
func (a AspectRatio) Size(node watch.Node) (width, height float64) {
	switch a.kind {
	case aspectOuter:
		return a.width, a.height
	case aspectOuterWidth:
		return a.width, divide(a.width, a.ratio)
	case aspectOuterHeight:
		return a.height * a.ratio, a.height
	case aspectEnvironment:
		if !node.Known {
			return 0, 0
		}
		w := node.Bounds.Width()
		return w, divide(w, a.ratio)
	}
	return 0, 0
}

func (a AspectRatio) String() string {
	switch a.kind {
	case aspectOuter:
		return fmt.Sprintf("%gx%g", a.width, a.height)
	case aspectOuterWidth:
		return fmt.Sprintf("width %g ratio %g", a.width, a.ratio)
	case aspectOuterHeight:
		return fmt.Sprintf("height %g ratio %g", a.height, a.ratio)
	case aspectEnvironment:
		return fmt.Sprintf("environment ratio %g", a.ratio)
	}
	return "unknown"
}

func divide(v, ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}
	return v / ratio
}
