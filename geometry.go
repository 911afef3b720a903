package xsect

import "fmt"

// Geometry pairs a section outline with a material and presents the
// contract a mesher consumes: points, facets, holes and control points.
//
// NewGeometry normalizes the ring it is given, so every Geometry holds a
// counter-clockwise outline with at least 3 distinct points and nonzero
// area. Normalization does not reject self-intersecting rings; call
// Outline().Validate() for that before meshing untrusted input.
type Geometry struct {
	outline  Outline
	material Material
}

// NewGeometry builds a Geometry from a closed outline. The input is
// copied and normalized: a closing duplicate of the first point is
// dropped, adjacent points closer than the tolerance are merged, and a
// clockwise ring is reversed to counter-clockwise. Outlines that are
// left with fewer than 3 points or enclose no area are rejected with
// ErrDegenerateOutline.
func NewGeometry(outline Outline, opts ...Option) (*Geometry, error) {
	cfg := geometryOptions{
		material:  defaultMaterial,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tolerance < 0 {
		cfg.tolerance = 0
	}

	ring, err := normalizeRing(outline, cfg.tolerance)
	if err != nil {
		return nil, err
	}

	Logger().Debug("geometry constructed",
		"points", len(ring),
		"area", ring.Area(),
		"material", cfg.material.Name)

	return &Geometry{outline: ring, material: cfg.material}, nil
}

// normalizeRing copies o, merges adjacent points closer than tol (the
// closing first-last pair included) and orients the result
// counter-clockwise.
func normalizeRing(o Outline, tol float64) (Outline, error) {
	ring := make(Outline, 0, len(o))
	for _, p := range o {
		if len(ring) > 0 && p.Distance(ring[len(ring)-1]) <= tol {
			continue
		}
		ring = append(ring, p)
	}
	for len(ring) > 1 && ring[len(ring)-1].Distance(ring[0]) <= tol {
		ring = ring[:len(ring)-1]
	}

	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: %d distinct points after merging duplicates",
			ErrDegenerateOutline, len(ring))
	}
	if ring.Area() == 0 {
		return nil, fmt.Errorf("%w: enclosed area is zero", ErrDegenerateOutline)
	}

	if !ring.IsCounterClockwise() {
		ring.Reverse()
	}
	return ring, nil
}

// Outline returns the normalized ring backing the geometry. The slice is
// not a copy; treat it as read-only.
func (g *Geometry) Outline() Outline {
	return g.outline
}

// Material returns the material attached to the geometry.
func (g *Geometry) Material() Material {
	return g.material
}

// Area returns the enclosed area of the section.
func (g *Geometry) Area() float64 {
	return g.outline.Area()
}

// Perimeter returns the boundary length of the section.
func (g *Geometry) Perimeter() float64 {
	return g.outline.Perimeter()
}

// Centroid returns the area centroid of the section.
func (g *Geometry) Centroid() Point {
	return g.outline.Centroid()
}

// Bounds returns the axis-aligned bounding box of the section.
func (g *Geometry) Bounds() Rect {
	return g.outline.Bounds()
}

// Facets returns the boundary edges as index pairs into Outline(),
// including the closing edge from the last point back to the first.
func (g *Geometry) Facets() [][2]int {
	n := len(g.outline)
	facets := make([][2]int, n)
	for i := range facets {
		facets[i] = [2]int{i, (i + 1) % n}
	}
	return facets
}

// Holes returns the interior hole markers of the section. Geometries
// built from a single outline are solid, so this is always nil; it
// exists to complete the meshing contract.
func (g *Geometry) Holes() []Point {
	return nil
}

// ControlPoints returns one marker point inside each solid region of the
// section, which a mesher uses to seed region attributes. For a single
// outline this is the centroid; every shape this package builds contains
// its own centroid. Reentrant custom outlines that do not should be
// meshed with explicitly chosen control points instead.
func (g *Geometry) ControlPoints() []Point {
	return []Point{g.outline.Centroid()}
}

// Shift returns a copy of the geometry translated by (dx, dy).
func (g *Geometry) Shift(dx, dy float64) *Geometry {
	return &Geometry{
		outline:  g.outline.Transform(Translate(dx, dy)),
		material: g.material,
	}
}

// Rotate returns a copy of the geometry rotated counter-clockwise by
// angle (in radians) about its centroid.
func (g *Geometry) Rotate(angle float64) *Geometry {
	c := g.outline.Centroid()
	m := Translate(c.X, c.Y).Multiply(Rotate(angle)).Multiply(Translate(-c.X, -c.Y))
	return &Geometry{
		outline:  g.outline.Transform(m),
		material: g.material,
	}
}

// MirrorX returns a copy of the geometry reflected across the x-axis.
// The reflected ring is reversed so it stays counter-clockwise.
func (g *Geometry) MirrorX() *Geometry {
	ring := g.outline.Transform(MirrorX())
	ring.Reverse()
	return &Geometry{outline: ring, material: g.material}
}

// MirrorY returns a copy of the geometry reflected across the y-axis.
// The reflected ring is reversed so it stays counter-clockwise.
func (g *Geometry) MirrorY() *Geometry {
	ring := g.outline.Transform(MirrorY())
	ring.Reverse()
	return &Geometry{outline: ring, material: g.material}
}

// Transform returns a new geometry with the outline transformed by m.
// Unlike Shift, Rotate and the mirrors, an arbitrary matrix can flip or
// collapse the ring, so the result is re-normalized and a degenerate
// transform yields ErrDegenerateOutline.
func (g *Geometry) Transform(m Matrix) (*Geometry, error) {
	return NewGeometry(g.outline.Transform(m), WithMaterial(g.material))
}
