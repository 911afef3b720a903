package xsect

// DefaultTolerance is the distance below which two adjacent outline
// points are treated as the same point when a Geometry is constructed.
const DefaultTolerance = 1e-9

type geometryOptions struct {
	material  Material
	tolerance float64
}

// Option configures NewGeometry.
type Option func(*geometryOptions)

// WithMaterial attaches a material to the geometry instead of the
// default unit material.
func WithMaterial(m Material) Option {
	return func(o *geometryOptions) {
		o.material = m
	}
}

// WithTolerance overrides DefaultTolerance for adjacent duplicate point
// merging. A non-positive tolerance merges only exactly coincident
// points.
func WithTolerance(tol float64) Option {
	return func(o *geometryOptions) {
		o.tolerance = tol
	}
}
