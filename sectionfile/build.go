package sectionfile

import (
	"fmt"

	"github.com/gosect/xsect"
)

// Validate checks the catalog: every section needs a unique name, a
// known shape, the dimensions that shape requires, and any material
// reference must resolve. The first problem is reported, wrapping the
// matching sentinel error with the section name.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Sections))
	for i, d := range f.Sections {
		if d.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrMissingParameter, i)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, d.Name)
		}
		seen[d.Name] = struct{}{}

		if err := d.checkShape(); err != nil {
			return err
		}

		if d.Material != "" {
			if _, ok := f.Materials[d.Material]; !ok {
				return fmt.Errorf("%w: %q referenced by section %q", ErrUnknownMaterial, d.Material, d.Name)
			}
		}
	}
	return nil
}

// checkShape verifies the shape name and the presence of its required
// dimension fields.
func (d Definition) checkShape() error {
	var missing []string
	need := func(p *float64, field string) {
		if p == nil {
			missing = append(missing, field)
		}
	}

	switch d.Shape {
	case ShapeRectangle:
		need(d.Depth, "depth")
		need(d.Width, "width")
	case ShapeCircle:
		need(d.Diameter, "diameter")
	case ShapeEllipse:
		need(d.DiameterY, "diameter_y")
		need(d.DiameterX, "diameter_x")
	case ShapeCruciform:
		need(d.Depth, "depth")
		need(d.Width, "width")
		need(d.Thickness, "thickness")
		need(d.Radius, "radius")
	default:
		return fmt.Errorf("%w: %q in section %q", ErrUnknownShape, d.Shape, d.Name)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: section %q (%s) needs %v", ErrMissingParameter, d.Name, d.Shape, missing)
	}
	return nil
}

// Build constructs the geometry for this definition. Material references
// are a catalog concern: resolve them through File.Build, or pass
// xsect.WithMaterial here explicitly.
func (d Definition) Build(opts ...xsect.Option) (*xsect.Geometry, error) {
	if err := d.checkShape(); err != nil {
		return nil, err
	}

	switch d.Shape {
	case ShapeRectangle:
		return xsect.RectangularSection(*d.Depth, *d.Width, opts...)
	case ShapeCircle:
		return xsect.CircularSection(*d.Diameter, d.curvePoints(), opts...)
	case ShapeEllipse:
		return xsect.EllipticalSection(*d.DiameterY, *d.DiameterX, d.curvePoints(), opts...)
	case ShapeCruciform:
		return xsect.CruciformSection(*d.Depth, *d.Width, *d.Thickness, *d.Radius, d.filletPoints(), opts...)
	}
	return nil, fmt.Errorf("%w: %q in section %q", ErrUnknownShape, d.Shape, d.Name)
}

func (d Definition) curvePoints() int {
	if d.Points != nil {
		return *d.Points
	}
	return DefaultCurvePoints
}

func (d Definition) filletPoints() int {
	if d.RadiusPoints != nil {
		return *d.RadiusPoints
	}
	return DefaultFilletPoints
}

// Built pairs a section name with its constructed geometry.
type Built struct {
	Name     string
	Geometry *xsect.Geometry
}

// Section returns the definition with the given name.
func (f *File) Section(name string) (Definition, bool) {
	for _, d := range f.Sections {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Build validates the catalog and constructs every section in file
// order, resolving material references against the catalog materials.
func (f *File) Build() ([]Built, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	built := make([]Built, 0, len(f.Sections))
	for _, d := range f.Sections {
		var opts []xsect.Option
		if d.Material != "" {
			def := f.Materials[d.Material]
			if def.ElasticModulus == 0 {
				xsect.Logger().Warn("material has zero elastic modulus",
					"material", d.Material, "section", d.Name)
			}
			opts = append(opts, xsect.WithMaterial(def.Material(d.Material)))
		}

		g, err := d.Build(opts...)
		if err != nil {
			return nil, fmt.Errorf("sectionfile: building %q: %w", d.Name, err)
		}
		built = append(built, Built{Name: d.Name, Geometry: g})
	}
	return built, nil
}
