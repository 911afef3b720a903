package xsect

import (
	"math"
	"testing"
)

// almostEqual reports whether two floats agree to within epsilon.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestPt(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"fractional", 1.5, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(tt.x, tt.y)
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("Pt(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, p, tt.x, tt.y)
			}
		})
	}
}

func TestPoint_AddSub(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		sum, dif Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"positive", Pt(1, 2), Pt(3, 4), Pt(4, 6), Pt(-2, -2)},
		{"negative", Pt(-1, -2), Pt(-3, -4), Pt(-4, -6), Pt(2, 2)},
		{"mixed", Pt(5, -7), Pt(-3, 2), Pt(2, -5), Pt(8, -9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.q); !got.Approx(tt.sum, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.p, tt.q, got, tt.sum)
			}
			if got := tt.p.Sub(tt.q); !got.Approx(tt.dif, 1e-10) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.p, tt.q, got, tt.dif)
			}
		})
	}
}

func TestPoint_MulDiv(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		s    float64
		mul  Point
		div  Point
	}{
		{"by one", Pt(3, 4), 1, Pt(3, 4), Pt(3, 4)},
		{"by two", Pt(3, 4), 2, Pt(6, 8), Pt(1.5, 2)},
		{"by negative", Pt(3, -4), -2, Pt(-6, 8), Pt(-1.5, 2)},
		{"by fraction", Pt(1, 2), 0.5, Pt(0.5, 1), Pt(2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Mul(tt.s); !got.Approx(tt.mul, 1e-10) {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.p, tt.s, got, tt.mul)
			}
			if got := tt.p.Div(tt.s); !got.Approx(tt.div, 1e-10) {
				t.Errorf("%v.Div(%v) = %v, want %v", tt.p, tt.s, got, tt.div)
			}
		})
	}
}

func TestPoint_DotCross(t *testing.T) {
	tests := []struct {
		name  string
		p, q  Point
		dot   float64
		cross float64
	}{
		{"orthogonal units", Pt(1, 0), Pt(0, 1), 0, 1},
		{"parallel", Pt(2, 3), Pt(4, 6), 26, 0},
		{"clockwise turn", Pt(0, 1), Pt(1, 0), 0, -1},
		{"general", Pt(3, -1), Pt(2, 5), 1, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Dot(tt.q); !almostEqual(got, tt.dot, 1e-10) {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.p, tt.q, got, tt.dot)
			}
			if got := tt.p.Cross(tt.q); !almostEqual(got, tt.cross, 1e-10) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.p, tt.q, got, tt.cross)
			}
		})
	}
}

func TestPoint_LengthDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		len  float64
		dist float64
	}{
		{"zero", Pt(0, 0), Pt(0, 0), 0, 0},
		{"3-4-5", Pt(3, 4), Pt(0, 0), 5, 5},
		{"unit diagonal", Pt(1, 1), Pt(0, 0), math.Sqrt2, math.Sqrt2},
		{"offset", Pt(1, 2), Pt(4, 6), math.Sqrt(5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Length(); !almostEqual(got, tt.len, 1e-10) {
				t.Errorf("%v.Length() = %v, want %v", tt.p, got, tt.len)
			}
			if got := tt.p.Distance(tt.q); !almostEqual(got, tt.dist, 1e-10) {
				t.Errorf("%v.Distance(%v) = %v, want %v", tt.p, tt.q, got, tt.dist)
			}
		})
	}
}

func TestPoint_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect Point
	}{
		{"zero stays zero", Pt(0, 0), Pt(0, 0)},
		{"already unit", Pt(1, 0), Pt(1, 0)},
		{"3-4-5", Pt(3, 4), Pt(0.6, 0.8)},
		{"negative", Pt(0, -2), Pt(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Normalize()
			if !got.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestPoint_Rotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		angle  float64
		expect Point
	}{
		{"zero angle", Pt(1, 0), 0, Pt(1, 0)},
		{"quarter turn", Pt(1, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn", Pt(1, 2), math.Pi, Pt(-1, -2)},
		{"full turn", Pt(3, -4), 2 * math.Pi, Pt(3, -4)},
		{"negative quarter", Pt(0, 1), -math.Pi / 2, Pt(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !got.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.p, tt.angle, got, tt.expect)
			}
		})
	}
}

func TestPoint_Approx(t *testing.T) {
	tests := []struct {
		name    string
		p, q    Point
		epsilon float64
		want    bool
	}{
		{"equal", Pt(1, 2), Pt(1, 2), 1e-10, true},
		{"within epsilon", Pt(1, 2), Pt(1 + 1e-12, 2 - 1e-12), 1e-10, true},
		{"x out of range", Pt(1, 2), Pt(1.01, 2), 1e-10, false},
		{"y out of range", Pt(1, 2), Pt(1, 2.01), 1e-10, false},
		{"loose epsilon", Pt(1, 2), Pt(1.4, 1.7), 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Approx(tt.q, tt.epsilon); got != tt.want {
				t.Errorf("%v.Approx(%v, %v) = %v, want %v", tt.p, tt.q, tt.epsilon, got, tt.want)
			}
		})
	}
}
