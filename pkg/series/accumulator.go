package series

import "github.com/matzehuels/stackchart/pkg/colour"

// Accumulator assigns ids and colours to lines in declaration order.
//
// The id of a line is the number of lines pushed before it. Lines without
// an explicit colour take the next palette colour; explicit colours do not
// use up a palette slot. The palette wraps when it runs out.
type Accumulator struct {
	palette colour.Palette
	next    int
	lines   []UseLine
}

// NewAccumulator starts an empty accumulator. A nil palette means
// colour.DefaultPalette.
func NewAccumulator(p colour.Palette) *Accumulator {
	if len(p) == 0 {
		p = colour.DefaultPalette
	}
	return &Accumulator{palette: p}
}

// NextColour returns the palette colour the next un-coloured line gets.
func (a *Accumulator) NextColour() colour.Colour {
	return a.palette.At(a.next)
}

// Push resolves d into a UseLine and records it.
func (a *Accumulator) Push(d Decl) UseLine {
	c := a.NextColour()
	if d.Colour != nil {
		c = *d.Colour
	} else {
		a.next++
	}
	width := d.Width
	if width <= 0 {
		width = colour.DefaultWidth
	}
	line := UseLine{ID: len(a.lines), Name: d.Name, Colour: c, Width: width}
	a.lines = append(a.lines, line)
	return line
}

// Lines returns every pushed line in id order.
func (a *Accumulator) Lines() []UseLine {
	return append([]UseLine(nil), a.lines...)
}

// Len returns the number of pushed lines.
func (a *Accumulator) Len() int { return len(a.lines) }
