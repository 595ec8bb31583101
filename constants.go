package picgeom

// Default parameter values shared across component generators. Lengths are
// in design units (micrometers by convention).
const (
	// DefaultWidth is the default waveguide width, 500 nm.
	DefaultWidth = 0.5
	// DefaultBendRadius is the default radius for rounding manhattan
	// corners.
	DefaultBendRadius = 10.0
	// DefaultSegLength is the default spacing between points on sampled
	// curves and tessellated arcs.
	DefaultSegLength = 1.4
	// DefaultMinBendRadius is the radius of the tightest bend the parallel
	// router will generate.
	DefaultMinBendRadius = 5.0
	// DefaultRouteSpacing is the edge-to-edge spacing between routed
	// waveguides when neither spacing nor length is constrained.
	DefaultRouteSpacing = 2.0
	// DefaultArmLength and DefaultArmHeight describe the S-bend arms of a
	// symmetric directional coupler.
	DefaultArmLength = 16.0
	DefaultArmHeight = 8.0
	// DefaultSeparation is the default edge-to-edge gap between the two
	// straight waveguides in a coupling region.
	DefaultSeparation = 0.2
)
