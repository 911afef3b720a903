package xsect

import "errors"

// Construction and validation errors. Builders wrap these with the
// offending values, so test with errors.Is.
var (
	// ErrInvalidDimension reports a non-positive width, depth, diameter,
	// thickness or a negative fillet radius.
	ErrInvalidDimension = errors.New("xsect: invalid dimension")

	// ErrInsufficientPoints reports a discretization count too small to
	// form the requested curve (n < 3 for a circle or ellipse, nr < 1
	// for a fillet).
	ErrInsufficientPoints = errors.New("xsect: insufficient discretization points")

	// ErrDegenerateOutline reports a ring with fewer than 3 distinct
	// points or zero enclosed area.
	ErrDegenerateOutline = errors.New("xsect: degenerate outline")

	// ErrDuplicatePoint reports duplicate adjacent points in a ring.
	ErrDuplicatePoint = errors.New("xsect: duplicate adjacent point")

	// ErrSelfIntersecting reports an outline whose boundary crosses
	// itself.
	ErrSelfIntersecting = errors.New("xsect: self-intersecting outline")
)
