package reactive_test

import (
	"fmt"

	"github.com/matzehuels/stackchart/pkg/reactive"
)

func Example() {
	g := reactive.New("example")
	width := reactive.NewSource(g, "width", 800.0)
	margin := reactive.NewSource(g, "margin", 50.0)
	inner := reactive.Derive(g, "inner", func() float64 {
		return width.Get() - margin.Get()
	}, width, margin)

	g.Effect("print", func() { fmt.Println("inner width:", inner.Get()) }, inner)

	g.Batch(func() {
		width.Set(640)
		margin.Set(40)
	})
	// Output:
	// inner width: 750
	// inner width: 600
}
