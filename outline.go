package xsect

import (
	"fmt"
	"math"
)

// Outline is a closed polygon ring: an ordered sequence of boundary
// points with an implicit closing edge from the last point back to the
// first. Section outlines are wound counter-clockwise, so SignedArea is
// positive for them.
type Outline []Point

// Clone returns an independent copy of the outline.
func (o Outline) Clone() Outline {
	out := make(Outline, len(o))
	copy(out, o)
	return out
}

// Reverse flips the traversal direction in place, turning a clockwise
// ring counter-clockwise and vice versa. The starting point is kept.
func (o Outline) Reverse() {
	for i, j := 1, len(o)-1; i < j; i, j = i+1, j-1 {
		o[i], o[j] = o[j], o[i]
	}
}

// SignedArea returns the area enclosed by the ring with sign following
// winding order: positive for counter-clockwise, negative for clockwise.
func (o Outline) SignedArea() float64 {
	var sum float64
	for i, p := range o {
		q := o[(i+1)%len(o)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// Area returns the enclosed area regardless of winding.
func (o Outline) Area() float64 {
	return math.Abs(o.SignedArea())
}

// Perimeter returns the total boundary length, closing edge included.
func (o Outline) Perimeter() float64 {
	var sum float64
	for i, p := range o {
		sum += p.Distance(o[(i+1)%len(o)])
	}
	return sum
}

// Centroid returns the area centroid of the ring. For a degenerate ring
// enclosing no area it falls back to the mean of the points.
func (o Outline) Centroid() Point {
	if len(o) == 0 {
		return Point{}
	}

	a := o.SignedArea()
	if a == 0 {
		var mean Point
		for _, p := range o {
			mean = mean.Add(p)
		}
		return mean.Div(float64(len(o)))
	}

	var sum Point
	for i, p := range o {
		q := o[(i+1)%len(o)]
		sum = sum.Add(p.Add(q).Mul(p.Cross(q)))
	}
	return sum.Div(6 * a)
}

// Bounds returns the axis-aligned bounding box of the outline.
func (o Outline) Bounds() Rect {
	if len(o) == 0 {
		return Rect{}
	}
	r := NewRect(o[0], o[0])
	for _, p := range o[1:] {
		r = r.expand(p)
	}
	return r
}

// IsCounterClockwise reports whether the ring is wound counter-clockwise.
func (o Outline) IsCounterClockwise() bool {
	return o.SignedArea() > 0
}

// Transform returns a new outline with every point transformed by m.
// Reflections and other orientation-flipping transforms reverse the
// winding order of the result.
func (o Outline) Transform(m Matrix) Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Validate checks that the outline is a usable simple ring: at least 3
// points, no duplicate adjacent points, nonzero enclosed area, and no
// pair of non-adjacent edges touching or crossing. It reports the first
// problem found, wrapping ErrDegenerateOutline, ErrDuplicatePoint or
// ErrSelfIntersecting.
//
// Builders do not call this: a cruciform built with an arm thicker than
// its overall extents is returned as requested (see the package
// documentation). Validate is the opt-in defense before handing an
// outline to a mesher.
func (o Outline) Validate() error {
	n := len(o)
	if n < 3 {
		return fmt.Errorf("%w: %d points (a ring needs at least 3)", ErrDegenerateOutline, n)
	}

	for i, p := range o {
		if p == o[(i+1)%n] {
			return fmt.Errorf("%w: points %d and %d coincide", ErrDuplicatePoint, i, (i+1)%n)
		}
	}

	if o.Area() == 0 {
		return fmt.Errorf("%w: enclosed area is zero", ErrDegenerateOutline)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // edges sharing a vertex meet there by construction
			}
			if segmentsIntersect(o[i], o[(i+1)%n], o[j], o[(j+1)%n]) {
				return fmt.Errorf("%w: edge %d-%d intersects edge %d-%d",
					ErrSelfIntersecting, i, (i+1)%n, j, (j+1)%n)
			}
		}
	}
	return nil
}

// orient returns the orientation of the turn a->b->c: positive for a
// left (counter-clockwise) turn, negative for right, zero for collinear.
func orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether p, already known to be collinear with the
// segment a-b, lies within its bounding box.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments a1-a2 and b1-b2 share any
// point, endpoints included.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}
	return false
}
