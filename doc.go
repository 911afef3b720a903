// Package xsect constructs closed two-dimensional polygon outlines for
// standard structural cross-section shapes.
//
// # Overview
//
// xsect is the geometry front end of a section analysis pipeline. It
// builds the boundary of a cross-section as an ordered ring of points,
// placing straight edges exactly and discretizing curved fillets into
// short segments, then wraps the result in a Geometry carrying an
// optional material tag, ready for a downstream mesher to triangulate.
//
// # Quick Start
//
//	import "github.com/gosect/xsect"
//
//	// A cruciform column section: depth 250, width 175, thickness 12,
//	// root radius 16 discretized with 16 points per fillet.
//	geom, err := xsect.CruciformSection(250, 175, 12, 16, 16)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outline := geom.Outline()
//	area := outline.Area()
//
// # Shapes
//
// Four builders cover the standard solid sections:
//
//   - RectangularSection: bottom-left corner pinned at the origin
//   - CircularSection: origin-centered, n points around the circle
//   - EllipticalSection: origin-centered, separate x and y diameters
//   - CruciformSection: four arms joined by tangent root fillets
//
// All builders return outlines wound counter-clockwise. Declarative
// catalogs of sections can be loaded from YAML or JSON files with the
// sectionfile subpackage, and the cmd/xsect binary exposes the same
// operations on the command line.
//
// # Coordinate System
//
// Uses engineering (graph paper) coordinates:
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is along +X, increasing counter-clockwise
//
// # Validity
//
// Builders reject invalid parameters (non-positive dimensions, too few
// discretization points) but deliberately do not detect parameter
// combinations that make a geometrically valid request self-intersect,
// such as a cruciform arm thicker than the overall depth and width. Use
// Outline.Validate for that check when the inputs are not trusted.
package xsect

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 1
)
