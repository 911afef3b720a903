package xsect

import (
	"fmt"
	"math"
)

// RectangularSection builds a solid rectangle of depth d and width b
// with its bottom-left corner at the origin, wound counter-clockwise
// from (0, 0).
func RectangularSection(d, b float64, opts ...Option) (*Geometry, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: depth d=%v must be positive", ErrInvalidDimension, d)
	}
	if b <= 0 {
		return nil, fmt.Errorf("%w: width b=%v must be positive", ErrInvalidDimension, b)
	}

	outline := Outline{
		{0, 0},
		{b, 0},
		{b, d},
		{0, d},
	}

	Logger().Debug("rectangular section", "d", d, "b", b)
	return NewGeometry(outline, opts...)
}

// CircularSection builds a solid circle of diameter d centered on the
// origin, discretized with n boundary points at angles i*2*pi/n.
func CircularSection(d float64, n int, opts ...Option) (*Geometry, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: diameter d=%v must be positive", ErrInvalidDimension, d)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: n=%d (a circle needs at least 3 points)", ErrInsufficientPoints, n)
	}

	r := d / 2
	outline := make(Outline, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2 * math.Pi / float64(n)
		outline = append(outline, Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}

	Logger().Debug("circular section", "d", d, "n", n)
	return NewGeometry(outline, opts...)
}

// EllipticalSection builds a solid ellipse centered on the origin with
// overall vertical diameter dY and horizontal diameter dX, discretized
// with n boundary points at parameter angles i*2*pi/n.
func EllipticalSection(dY, dX float64, n int, opts ...Option) (*Geometry, error) {
	if dY <= 0 {
		return nil, fmt.Errorf("%w: vertical diameter dY=%v must be positive", ErrInvalidDimension, dY)
	}
	if dX <= 0 {
		return nil, fmt.Errorf("%w: horizontal diameter dX=%v must be positive", ErrInvalidDimension, dX)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: n=%d (an ellipse needs at least 3 points)", ErrInsufficientPoints, n)
	}

	outline := make(Outline, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2 * math.Pi / float64(n)
		outline = append(outline, Point{
			X: 0.5 * dX * math.Cos(theta),
			Y: 0.5 * dY * math.Sin(theta),
		})
	}

	Logger().Debug("elliptical section", "dY", dY, "dX", dX, "n", n)
	return NewGeometry(outline, opts...)
}

// CruciformSection builds a cruciform (cross) centered on the origin
// with overall depth d, overall width b, arm thickness t and root fillet
// radius r, each fillet discretized with nR points. The ring runs
// counter-clockwise from the bottom of the vertical arm, each concave
// fillet traversed clockwise about its own center so the boundary stays
// tangent to the adjoining arm edges.
//
// Dimensions are checked only for sign, not for fit. Fillets reaching
// past an arm end notch the boundary but keep it simple; a thickness
// exceeding both overall extents makes the arm edges cross. Both are
// built as requested and left to Outline.Validate to judge.
func CruciformSection(d, b, t, r float64, nR int, opts ...Option) (*Geometry, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: depth d=%v must be positive", ErrInvalidDimension, d)
	}
	if b <= 0 {
		return nil, fmt.Errorf("%w: width b=%v must be positive", ErrInvalidDimension, b)
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: thickness t=%v must be positive", ErrInvalidDimension, t)
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: fillet radius r=%v must not be negative", ErrInvalidDimension, r)
	}
	if nR < 1 {
		return nil, fmt.Errorf("%w: nR=%d (a fillet needs at least 1 point)", ErrInsufficientPoints, nR)
	}

	outline := make(Outline, 0, 8+4*nR)

	// Bottom of the vertical arm.
	outline = append(outline,
		Point{-t / 2, -d / 2},
		Point{t / 2, -d / 2},
	)

	// Bottom right fillet, then the right arm.
	outline = append(outline, ArcPoints(Point{t/2 + r, -t/2 - r}, r, math.Pi, nR, false)...)
	outline = append(outline,
		Point{b / 2, -t / 2},
		Point{b / 2, t / 2},
	)

	// Top right fillet, then the top of the vertical arm.
	outline = append(outline, ArcPoints(Point{t/2 + r, t/2 + r}, r, 1.5*math.Pi, nR, false)...)
	outline = append(outline,
		Point{t / 2, d / 2},
		Point{-t / 2, d / 2},
	)

	// Top left fillet, then the left arm.
	outline = append(outline, ArcPoints(Point{-t/2 - r, t/2 + r}, r, 0, nR, false)...)
	outline = append(outline,
		Point{-b / 2, t / 2},
		Point{-b / 2, -t / 2},
	)

	// Bottom left fillet closes the ring back to the start.
	outline = append(outline, ArcPoints(Point{-t/2 - r, -t/2 - r}, r, 0.5*math.Pi, nR, false)...)

	Logger().Debug("cruciform section", "d", d, "b", b, "t", t, "r", r, "nR", nR)
	return NewGeometry(outline, opts...)
}
