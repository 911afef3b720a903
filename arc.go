package xsect

import "math"

// ArcPoints samples n points along a quarter-circle arc of radius r
// centered at center, starting from startAngle (radians). With ccw true
// the angle increases point to point (counter-clockwise); with ccw false
// it decreases. Point i sits at startAngle ± i·(π/2)/(n−1), so the first
// point is exactly at startAngle and the last exactly a quarter turn
// away, which is what makes fillet arcs land tangent on their
// neighboring straight edges.
//
// n == 1 returns the single point at startAngle regardless of direction:
// a fillet with radius zero collapses to a sharp corner without the
// caller special-casing it. n < 1 returns nil. r must be positive;
// that is the caller's contract and is not checked here.
func ArcPoints(center Point, r, startAngle float64, n int, ccw bool) []Point {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []Point{pointAt(center, r, startAngle)}
	}

	step := (math.Pi / 2) / float64(n-1)
	if !ccw {
		step = -step
	}

	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		theta := startAngle + float64(i)*step
		pts = append(pts, pointAt(center, r, theta))
	}
	return pts
}

// pointAt returns the point at polar coordinates (r, theta) relative to
// center.
func pointAt(center Point, r, theta float64) Point {
	return Point{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}
