// Package picgeom generates parametric centerline geometry for passive
// photonic integrated-circuit components: steep and shallow S-bend
// waveguides, directional couplers, and dense N-to-N parallel routing
// fan-outs.
//
// The package is purely computational. Every function is a deterministic
// transformation from numeric parameters to coordinate sequences; nothing is
// persisted or mutated across calls. Coordinates are in real-valued design
// units, conventionally micrometers.
//
// # Paths and transforms
//
// The central type is [Path]: an ordered sequence of [Point] vertices plus a
// waveguide width. Paths describe unrounded centerlines; converting manhattan
// corners into circular arcs is the job of a [Rounder], of which [ArcRounder]
// is the built-in implementation. Layout engines with their own arc
// tessellation can substitute theirs.
//
// Rigid placement is expressed with [Transform], a reflection about one of
// the coordinate axes followed by a translation. Transforms return new Paths
// and never mutate their input.
//
// # Components
//
// [SteepSBend] and [ShallowSBend] build the two elementary bend shapes.
// [Coupler] assembles four S-bend arms and two coupling straights into a
// directional coupler, and derives the device's length, height, center, and
// port positions in closed form from the same parameters used to build the
// geometry. [ParallelRoute] routes N parallel inputs to N parallel outputs
// with two 90-degree bends per path, using nested bend radii so the paths
// cannot cross.
//
// Invalid parameters are reported eagerly through errors wrapping
// [ErrInvalidArgument] and [ErrDomain]; no partial geometry is ever returned
// alongside an error.
package picgeom
