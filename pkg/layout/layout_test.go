package layout

import (
	"testing"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/errors"
)

func TestAllocate(t *testing.T) {
	outer := bounds.New(800, 400)

	tests := []struct {
		name  string
		bands []Band
		want  []bounds.Bounds
		inner bounds.Bounds
	}{
		{
			name:  "no bands",
			bands: nil,
			want:  []bounds.Bounds{},
			inner: outer,
		},
		{
			name:  "title and axes",
			bands: []Band{{Top, 20}, {Left, 40}, {Bottom, 30}},
			want: []bounds.Bounds{
				bounds.FromPoints(0, 0, 800, 20),
				bounds.FromPoints(0, 20, 40, 400),
				bounds.FromPoints(40, 370, 800, 400),
			},
			inner: bounds.FromPoints(40, 20, 800, 370),
		},
		{
			name:  "title and left axis",
			bands: []Band{{Top, 20}, {Left, 50}},
			want: []bounds.Bounds{
				bounds.FromPoints(0, 0, 800, 20),
				bounds.FromPoints(0, 20, 50, 400),
			},
			inner: bounds.FromPoints(50, 20, 800, 400),
		},
		{
			name:  "left before top",
			bands: []Band{{Left, 40}, {Top, 20}},
			want: []bounds.Bounds{
				bounds.FromPoints(0, 0, 40, 400),
				bounds.FromPoints(40, 0, 800, 20),
			},
			inner: bounds.FromPoints(40, 20, 800, 400),
		},
		{
			name:  "right band",
			bands: []Band{{Right, 100}},
			want:  []bounds.Bounds{bounds.FromPoints(700, 0, 800, 400)},
			inner: bounds.FromPoints(0, 0, 700, 400),
		},
		{
			name:  "zero size",
			bands: []Band{{Top, 0}},
			want:  []bounds.Bounds{bounds.FromPoints(0, 0, 800, 0)},
			inner: outer,
		},
		{
			name:  "over allocation",
			bands: []Band{{Top, 300}, {Bottom, 300}},
			want: []bounds.Bounds{
				bounds.FromPoints(0, 0, 800, 300),
				bounds.FromPoints(0, 100, 800, 400),
			},
			inner: bounds.FromPoints(0, 300, 800, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(outer, tt.bands)
			if len(got.Bands) != len(tt.want) {
				t.Fatalf("len(Bands) = %d, want %d", len(got.Bands), len(tt.want))
			}
			for i := range tt.want {
				if got.Bands[i] != tt.want[i] {
					t.Errorf("Bands[%d] = %v, want %v", i, got.Bands[i], tt.want[i])
				}
			}
			if got.Inner != tt.inner {
				t.Errorf("Inner = %v, want %v", got.Inner, tt.inner)
			}
		})
	}
}

func TestAllocateAccounting(t *testing.T) {
	outer := bounds.New(640, 480)
	bands := []Band{{Top, 18}, {Right, 55}, {Bottom, 24}, {Left, 33}, {Top, 7}}
	got := Allocate(outer, bands)

	var h, v float64
	for i, b := range bands {
		if b.Edge.IsHorizontal() {
			v += got.Bands[i].Height()
		} else {
			h += got.Bands[i].Width()
		}
	}
	if w := h + got.Inner.Width(); w != outer.Width() {
		t.Errorf("widths sum = %v, want %v", w, outer.Width())
	}
	if hh := v + got.Inner.Height(); hh != outer.Height() {
		t.Errorf("heights sum = %v, want %v", hh, outer.Height())
	}

	w, hh := InnerSize(outer, bands)
	if w != got.Inner.Width() || hh != got.Inner.Height() {
		t.Errorf("InnerSize() = %v x %v, want %v x %v", w, hh, got.Inner.Width(), got.Inner.Height())
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{"start", Start, false},
		{"Middle", Middle, false},
		{"END", End, false},
		{"sideways", Middle, true},
		{"", Middle, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnchor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidAnchor) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAnchor)
				}
				want := "unknown anchor: `" + tt.in + "`"
				if msg := errors.UserMessage(err); msg != want {
					t.Errorf("message = %q, want %q", msg, want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnchorText(t *testing.T) {
	var a Anchor
	if err := a.UnmarshalText([]byte("End")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if a != End || a.String() != "end" {
		t.Errorf("anchor = %v, want end", a)
	}
	if got := a.Pick(1, 2, 3); got != 3 {
		t.Errorf("Pick() = %v, want 3", got)
	}
}

func TestParseEdge(t *testing.T) {
	for _, e := range Edges {
		got, err := ParseEdge(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEdge(%q) = %v, %v", e.String(), got, err)
		}
	}
	if _, err := ParseEdge("diagonal"); !errors.Is(err, errors.ErrCodeInvalidEdge) {
		t.Errorf("ParseEdge(diagonal) error = %v, want %v", err, errors.ErrCodeInvalidEdge)
	}
	if !Top.IsHorizontal() || !Bottom.IsHorizontal() || Left.IsHorizontal() || Right.IsHorizontal() {
		t.Error("IsHorizontal() mismatch")
	}
}
