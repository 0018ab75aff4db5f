package bounds

import "testing"

func TestBoundsAccessors(t *testing.T) {
	tests := []struct {
		name                   string
		b                      Bounds
		width, height, cx, cy float64
	}{
		{
			name:  "origin",
			b:     New(800, 400),
			width: 800, height: 400, cx: 400, cy: 200,
		},
		{
			name:  "offset",
			b:     FromPoints(10, 20, 110, 70),
			width: 100, height: 50, cx: 60, cy: 45,
		},
		{
			name:  "degenerate",
			b:     FromPoints(50, 50, 40, 30),
			width: -10, height: -20, cx: 45, cy: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.b.Height(); got != tt.height {
				t.Errorf("Height() = %v, want %v", got, tt.height)
			}
			if got := tt.b.CentreX(); got != tt.cx {
				t.Errorf("CentreX() = %v, want %v", got, tt.cx)
			}
			if got := tt.b.CentreY(); got != tt.cy {
				t.Errorf("CentreY() = %v, want %v", got, tt.cy)
			}
			if got := tt.b.Width(); got != tt.b.RightX()-tt.b.LeftX() {
				t.Errorf("Width() = %v, want right-left %v", got, tt.b.RightX()-tt.b.LeftX())
			}
			if got := tt.b.Height(); got != tt.b.BottomY()-tt.b.TopY() {
				t.Errorf("Height() = %v, want bottom-top %v", got, tt.b.BottomY()-tt.b.TopY())
			}
		})
	}
}

func TestBoundsIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"normal", New(10, 10), false},
		{"zero width", New(0, 10), true},
		{"zero height", New(10, 0), true},
		{"negative", FromPoints(10, 10, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := FromPoints(10, 10, 20, 20)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 20, 20, true},
		{"left of", 9, 15, false},
		{"below", 15, 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPaddingApply(t *testing.T) {
	p := Sides(1, 2, 3, 4)
	if got := p.Width(); got != 6 {
		t.Errorf("Width() = %v, want 6", got)
	}
	if got := p.Height(); got != 4 {
		t.Errorf("Height() = %v, want 4", got)
	}

	got := p.Apply(New(100, 50))
	want := FromPoints(4, 1, 98, 47)
	if got != want {
		t.Errorf("Apply() = %v, want %v", got, want)
	}

	if got := p.Horizontal(); got != (Padding{Left: 4, Right: 2}) {
		t.Errorf("Horizontal() = %+v", got)
	}
	if got := p.Vertical(); got != (Padding{Top: 1, Bottom: 3}) {
		t.Errorf("Vertical() = %+v", got)
	}
}
