package projection

import (
	"math"
	"testing"

	"github.com/matzehuels/stackchart/pkg/bounds"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestPositionToSVG(t *testing.T) {
	p := New(bounds.New(100, 100), NewDomain(0, 10), NewDomain(0, 10))

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"origin is bottom-left", 0, 0, 0, 100},
		{"max is top-right", 10, 10, 100, 0},
		{"centre", 5, 5, 50, 50},
		{"outside domain extrapolates", 20, -10, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := p.PositionToSVG(tt.x, tt.y)
			if !near(px, tt.px) || !near(py, tt.py) {
				t.Errorf("PositionToSVG(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	p := New(bounds.FromPoints(40, 20, 800, 370), NewDomain(-3, 17.5), NewDomain(1e3, 5e3))

	for _, pt := range [][2]float64{{-3, 1e3}, {0, 2500}, {17.5, 5e3}, {3.3, 4321.5}} {
		px, py := p.PositionToSVG(pt[0], pt[1])
		x, y := p.SVGToPosition(px, py)
		if math.Abs(x-pt[0]) > 1e-6 || math.Abs(y-pt[1]) > 1e-6 {
			t.Errorf("round trip %v = (%v, %v)", pt, x, y)
		}
	}
}

func TestDegenerateDomain(t *testing.T) {
	b := bounds.New(200, 100)
	p := New(b, NewDomain(5, 5), NewDomain(3, 3))

	px, py := p.PositionToSVG(5, 3)
	if px != b.CentreX() || py != b.CentreY() {
		t.Errorf("PositionToSVG() = (%v, %v), want centre (%v, %v)", px, py, b.CentreX(), b.CentreY())
	}

	x, y := p.SVGToPosition(17, 88)
	if x != 5 || y != 3 {
		t.Errorf("SVGToPosition() = (%v, %v), want (5, 3)", x, y)
	}
}

func TestEmptyDomainTreatedAsZero(t *testing.T) {
	p := New(bounds.New(10, 10), Empty(), Empty())
	if got := p.XDomain(); got != (Domain{}) {
		t.Errorf("XDomain() = %v, want [0, 0]", got)
	}
	px, py := p.PositionToSVG(0, 0)
	if px != 5 || py != 5 {
		t.Errorf("PositionToSVG() = (%v, %v), want (5, 5)", px, py)
	}
}

func TestNaNPropagates(t *testing.T) {
	p := New(bounds.New(10, 10), NewDomain(0, 1), NewDomain(0, 1))
	px, py := p.PositionToSVG(math.NaN(), 0.5)
	if !math.IsNaN(px) || math.IsNaN(py) {
		t.Errorf("PositionToSVG(NaN, 0.5) = (%v, %v)", px, py)
	}
}

func TestYInversion(t *testing.T) {
	p := New(bounds.New(100, 100), NewDomain(0, 1), NewDomain(0, 10))
	_, low := p.PositionToSVG(0, 2)
	_, high := p.PositionToSVG(0, 8)
	if !(high < low) {
		t.Errorf("y=8 at %v should be above y=2 at %v", high, low)
	}
}

func TestDomain(t *testing.T) {
	d := Empty()
	if !d.IsEmpty() || d.Span() != 0 || d.Contains(0) {
		t.Fatalf("Empty() = %v", d)
	}

	d = d.Update(3).Update(math.NaN()).Update(-1).Update(math.Inf(1)).Update(math.Inf(-1)).Update(2)
	if d != NewDomain(-1, 3) {
		t.Errorf("Update chain = %v, want [-1, 3]", d)
	}
	if !Empty().Update(math.Inf(-1)).IsEmpty() {
		t.Error("Update(-Inf) on empty domain recorded a value")
	}
	if !d.Contains(0) || d.Contains(4) {
		t.Errorf("Contains mismatch for %v", d)
	}

	u := d.Union(NewDomain(10, 12))
	if u != NewDomain(-1, 12) {
		t.Errorf("Union() = %v, want [-1, 12]", u)
	}
	if d.Union(Empty()) != d {
		t.Errorf("Union(Empty) changed domain")
	}
	if !Empty().Equal(Empty()) || Empty().Equal(d) {
		t.Error("Equal() mismatch")
	}
	if got := DomainOf(4, math.NaN(), 1); got != NewDomain(1, 4) {
		t.Errorf("DomainOf() = %v", got)
	}
	if NewDomain(5, 1) != (Domain{Min: 1, Max: 5}) {
		t.Error("NewDomain should order bounds")
	}
}
