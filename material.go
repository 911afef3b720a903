package xsect

// Material carries the physical properties attached to a section
// geometry. The zero value is not useful; use DefaultMaterial for the
// unit placeholder or construct a Material with real properties.
type Material struct {
	// Name identifies the material in reports and serialized files.
	Name string

	// ElasticModulus is the Young's modulus E.
	ElasticModulus float64

	// PoissonsRatio is the Poisson's ratio nu.
	PoissonsRatio float64

	// YieldStrength is the yield stress used for plastic checks.
	YieldStrength float64

	// Density is the mass per unit volume.
	Density float64

	// Color names the fill color used when the section is plotted.
	Color string
}

// ShearModulus returns the shear modulus G derived from the elastic
// modulus and Poisson's ratio, E / (2 (1 + nu)).
func (m Material) ShearModulus() float64 {
	return m.ElasticModulus / (2 * (1 + m.PoissonsRatio))
}

var defaultMaterial = Material{
	Name:           "default",
	ElasticModulus: 1,
	PoissonsRatio:  0,
	YieldStrength:  1,
	Density:        1,
	Color:          "w",
}

// DefaultMaterial returns the unit material attached to geometries built
// without an explicit one. All mechanical properties are 1 (Poisson's
// ratio 0), so geometry-only analyses are unaffected by it.
func DefaultMaterial() Material {
	return defaultMaterial
}
