package watch

import (
	"testing"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/projection"
)

func TestResolve(t *testing.T) {
	node := At(bounds.FromPoints(100, 50, 500, 350))
	proj := projection.New(bounds.FromPoints(40, 20, 400, 280), projection.NewDomain(0, 1), projection.NewDomain(0, 1))

	tests := []struct {
		name    string
		node    Node
		pointer Pointer
		want    Cursor
	}{
		{"inner", node, PointerAt(200, 100), Cursor{X: 100, Y: 50, Hover: true, Inner: true}},
		{"edge band", node, PointerAt(110, 60), Cursor{X: 10, Y: 10, Hover: true}},
		{"outside", node, PointerAt(50, 10), Cursor{X: -50, Y: -40}},
		{"inactive", node, Pointer{X: 200, Y: 100}, Cursor{X: 100, Y: 50}},
		{"unknown node", Node{}, PointerAt(200, 100), Cursor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.node, tt.pointer, proj); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHoverIncludesBorder(t *testing.T) {
	node := At(bounds.New(10, 10))
	if !Hover(node, PointerAt(10, 10)) {
		t.Error("pointer on the corner should hover")
	}
}
