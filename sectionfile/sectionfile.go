// Package sectionfile loads declarative cross-section catalogs from
// YAML or JSON files and builds xsect geometries from them.
//
// A catalog names materials and a list of section definitions:
//
//	materials:
//	  steel:
//	    elastic_modulus: 200e3
//	    poissons_ratio: 0.3
//	    yield_strength: 500
//	    density: 7.85e-6
//	    color: grey
//	sections:
//	  - name: column
//	    shape: cruciform
//	    material: steel
//	    depth: 250
//	    width: 175
//	    thickness: 12
//	    radius: 16
//	    radius_points: 16
//
// Dimensions are required per shape; discretization counts fall back to
// package defaults when omitted.
package sectionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gosect/xsect"
)

// Catalog errors. Loaders and builders wrap these with the offending
// section or file names, so test with errors.Is.
var (
	// ErrUnknownShape reports a section whose shape field names none of
	// the supported shapes.
	ErrUnknownShape = errors.New("sectionfile: unknown shape")

	// ErrUnknownMaterial reports a section referencing a material the
	// catalog does not define.
	ErrUnknownMaterial = errors.New("sectionfile: unknown material")

	// ErrDuplicateSection reports two sections sharing a name.
	ErrDuplicateSection = errors.New("sectionfile: duplicate section name")

	// ErrMissingParameter reports a section lacking a field its shape
	// requires.
	ErrMissingParameter = errors.New("sectionfile: missing parameter")

	// ErrUnknownFormat reports a file extension Load cannot map to a
	// Format.
	ErrUnknownFormat = errors.New("sectionfile: unknown file format")
)

// Format selects the encoding of a catalog document.
type Format int

const (
	// FormatYAML parses the document as YAML.
	FormatYAML Format = iota
	// FormatJSON parses the document as JSON.
	FormatJSON
)

// Supported shape names for Definition.Shape.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeEllipse   = "ellipse"
	ShapeCruciform = "cruciform"
)

// Fallbacks for omitted discretization counts.
const (
	// DefaultCurvePoints is the boundary point count for circles and
	// ellipses when the definition omits points.
	DefaultCurvePoints = 64

	// DefaultFilletPoints is the per-fillet point count for cruciforms
	// when the definition omits radius_points.
	DefaultFilletPoints = 8
)

// MaterialDef is a named material entry in the catalog.
type MaterialDef struct {
	// ElasticModulus is the Young's modulus E.
	ElasticModulus float64 `yaml:"elastic_modulus" json:"elastic_modulus"`

	// PoissonsRatio is the Poisson's ratio nu.
	PoissonsRatio float64 `yaml:"poissons_ratio" json:"poissons_ratio"`

	// YieldStrength is the yield stress.
	YieldStrength float64 `yaml:"yield_strength" json:"yield_strength"`

	// Density is the mass per unit volume.
	Density float64 `yaml:"density" json:"density"`

	// Color names the plot fill color.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Material converts the entry to an xsect.Material under the given name.
func (m MaterialDef) Material(name string) xsect.Material {
	return xsect.Material{
		Name:           name,
		ElasticModulus: m.ElasticModulus,
		PoissonsRatio:  m.PoissonsRatio,
		YieldStrength:  m.YieldStrength,
		Density:        m.Density,
		Color:          m.Color,
	}
}

// Definition describes one section to build. Dimension fields are
// pointers so that a missing field can be told apart from an explicit
// zero; only the fields the shape uses are consulted.
type Definition struct {
	// Name identifies the section within the catalog.
	Name string `yaml:"name" json:"name"`

	// Shape names the builder: rectangle, circle, ellipse or cruciform.
	Shape string `yaml:"shape" json:"shape"`

	// Material optionally references a catalog material by name.
	Material string `yaml:"material,omitempty" json:"material,omitempty"`

	// Depth is the overall vertical extent (rectangle, cruciform).
	Depth *float64 `yaml:"depth,omitempty" json:"depth,omitempty"`

	// Width is the overall horizontal extent (rectangle, cruciform).
	Width *float64 `yaml:"width,omitempty" json:"width,omitempty"`

	// Diameter is the circle diameter.
	Diameter *float64 `yaml:"diameter,omitempty" json:"diameter,omitempty"`

	// DiameterY and DiameterX are the ellipse diameters.
	DiameterY *float64 `yaml:"diameter_y,omitempty" json:"diameter_y,omitempty"`
	DiameterX *float64 `yaml:"diameter_x,omitempty" json:"diameter_x,omitempty"`

	// Thickness is the cruciform arm thickness.
	Thickness *float64 `yaml:"thickness,omitempty" json:"thickness,omitempty"`

	// Radius is the cruciform root fillet radius.
	Radius *float64 `yaml:"radius,omitempty" json:"radius,omitempty"`

	// Points is the boundary point count for circles and ellipses.
	Points *int `yaml:"points,omitempty" json:"points,omitempty"`

	// RadiusPoints is the per-fillet point count for cruciforms.
	RadiusPoints *int `yaml:"radius_points,omitempty" json:"radius_points,omitempty"`
}

// File is a parsed section catalog.
type File struct {
	// Materials maps material names to their definitions.
	Materials map[string]MaterialDef `yaml:"materials,omitempty" json:"materials,omitempty"`

	// Sections lists the sections to build, in file order.
	Sections []Definition `yaml:"sections" json:"sections"`
}

// Load reads and parses the catalog at path, choosing the format from
// the file extension (.yaml/.yml or .json), and validates it.
func Load(path string) (*File, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sectionfile: read %s: %w", path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("sectionfile: parse %s: %w", path, err)
	}

	xsect.Logger().Debug("section file loaded",
		"path", path,
		"sections", len(f.Sections),
		"materials", len(f.Materials))
	return f, nil
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("sectionfile: decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("sectionfile: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnknownFormat, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
