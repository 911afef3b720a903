package xsect

import (
	"testing"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Rect
	}{
		{"ordered", Pt(0, 0), Pt(3, 4), Rect{Min: Pt(0, 0), Max: Pt(3, 4)}},
		{"swapped", Pt(3, 4), Pt(0, 0), Rect{Min: Pt(0, 0), Max: Pt(3, 4)}},
		{"mixed axes", Pt(3, 0), Pt(0, 4), Rect{Min: Pt(0, 0), Max: Pt(3, 4)}},
		{"negative", Pt(-1, -2), Pt(-5, -6), Rect{Min: Pt(-5, -6), Max: Pt(-1, -2)}},
		{"degenerate", Pt(2, 2), Pt(2, 2), Rect{Min: Pt(2, 2), Max: Pt(2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRect(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewRect(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestRect_WidthHeight(t *testing.T) {
	r := NewRect(Pt(-2, 1), Pt(3, 4))
	if got := r.Width(); got != 5 {
		t.Errorf("Width() = %v, want 5", got)
	}
	if got := r.Height(); got != 3 {
		t.Errorf("Height() = %v, want 3", got)
	}
}

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"overlapping",
			NewRect(Pt(0, 0), Pt(2, 2)),
			NewRect(Pt(1, 1), Pt(3, 3)),
			NewRect(Pt(0, 0), Pt(3, 3)),
		},
		{
			"disjoint",
			NewRect(Pt(0, 0), Pt(1, 1)),
			NewRect(Pt(5, 5), Pt(6, 6)),
			NewRect(Pt(0, 0), Pt(6, 6)),
		},
		{
			"contained",
			NewRect(Pt(0, 0), Pt(10, 10)),
			NewRect(Pt(2, 2), Pt(3, 3)),
			NewRect(Pt(0, 0), Pt(10, 10)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
			// Union is symmetric.
			if got := tt.b.Union(tt.a); got != tt.want {
				t.Errorf("Union() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(4, 2))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(2, 1), true},
		{"corner", Pt(0, 0), true},
		{"edge", Pt(4, 1), true},
		{"left of", Pt(-0.1, 1), false},
		{"right of", Pt(4.1, 1), false},
		{"below", Pt(2, -0.1), false},
		{"above", Pt(2, 2.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
