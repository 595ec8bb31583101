package picgeom

import "fmt"

// OriginMode selects where a coupler's coordinate origin ends up.
type OriginMode int

const (
	// OriginPort0 anchors the lower-left port at the origin.
	OriginPort0 OriginMode = iota
	// OriginCenter centers the device's bounding box on the origin.
	OriginCenter
)

// Coupler describes a directional coupler: two waveguides brought within
// Separation of each other for CouplingLength, fed by four S-bend arms.
// Each arm has its own horizontal span (ArmLengths) and vertical rise
// (ArmHeights), indexed by [ArmPosition].
//
//	input2  ─╮                ╭─ output2
//	          ╰──────────────╯      ← straight2
//	          ╭──────────────╮      ← straight1
//	input1  ─╯                ╰─ output1
//
// All geometry and all derived metrics are pure functions of these
// parameters.
type Coupler struct {
	CouplingLength float64
	ArmLengths     ArmParams
	ArmHeights     ArmParams
	Separation     float64
	Width          float64
	Origin         OriginMode
}

// NewCoupler returns a symmetric coupler with the default arm, separation,
// and width parameters and the given coupling length.
func NewCoupler(couplingLength float64) Coupler {
	return Coupler{
		CouplingLength: couplingLength,
		ArmLengths:     UniformArmParams(DefaultArmLength),
		ArmHeights:     UniformArmParams(DefaultArmHeight),
		Separation:     DefaultSeparation,
		Width:          DefaultWidth,
	}
}

// CouplerPaths holds the six centerlines of a directional coupler. Input1 is
// the lower-left arm, Input2 the upper-left arm, Output1 the lower-right
// arm, and Output2 the upper-right arm; Straight1 and Straight2 are the
// lower and upper coupling straights.
type CouplerPaths struct {
	Input1    Path
	Input2    Path
	Output1   Path
	Output2   Path
	Straight1 Path
	Straight2 Path
}

// All returns the six paths in insertion order.
func (cp CouplerPaths) All() []Path {
	return []Path{cp.Input1, cp.Input2, cp.Output1, cp.Output2, cp.Straight1, cp.Straight2}
}

func (c Coupler) validate() error {
	if c.CouplingLength < 0 {
		return fmt.Errorf("%w: coupling length must be non-negative, got %g", ErrDomain, c.CouplingLength)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %g", ErrDomain, c.Width)
	}
	if c.Separation < 0 {
		return fmt.Errorf("%w: separation must be non-negative, got %g", ErrDomain, c.Separation)
	}
	for pos, l := range c.ArmLengths {
		if l <= 1 {
			return fmt.Errorf("%w: %v arm length must exceed 1, got %g", ErrDomain, ArmPosition(pos), l)
		}
	}
	for pos, h := range c.ArmHeights {
		if h < 0 {
			return fmt.Errorf("%w: %v arm height must be non-negative, got %g", ErrDomain, ArmPosition(pos), h)
		}
	}
	return nil
}

// arm builds the S-bend for one arm in its local frame, rising from the
// origin to (length, height). The shallow bend's amplitude is half the
// port-to-port rise.
func (c Coupler) arm(pos ArmPosition) (Path, error) {
	return ShallowSBend(c.ArmHeights[pos]/2, c.ArmLengths[pos], c.Width)
}

// Paths generates the six centerlines of the coupler. All parameters are
// validated before any geometry is built.
//
// The lower-left arm anchors the device: its outer port is the origin (in
// [OriginPort0] mode) and it rises to the left end of the lower straight.
// The other three arms are the same construction placed by rigid transforms:
// the lower-right arm is mirrored about the y-axis and shifted right, with a
// vertical correction for the rise difference between the two lower arms;
// the upper-left arm is mirrored about the x-axis and shifted up, with a
// horizontal correction for the span difference between the two left arms;
// the upper-right arm is only translated diagonally. The two straights'
// centerlines are Separation+Width apart, so their edge-to-edge gap is
// exactly Separation.
func (c Coupler) Paths() (CouplerPaths, error) {
	if err := c.validate(); err != nil {
		return CouplerPaths{}, err
	}

	L := c.ArmLengths
	H := c.ArmHeights
	pitch := c.Separation + c.Width // center-to-center straight offset

	input1, err := c.arm(LowerLeft)
	if err != nil {
		return CouplerPaths{}, err
	}
	upperLeft, err := c.arm(UpperLeft)
	if err != nil {
		return CouplerPaths{}, err
	}
	lowerRight, err := c.arm(LowerRight)
	if err != nil {
		return CouplerPaths{}, err
	}
	upperRight, err := c.arm(UpperRight)
	if err != nil {
		return CouplerPaths{}, err
	}

	input2 := upperLeft.Transform(MirrorY(Vec(
		L[LowerLeft]-L[UpperLeft],
		H[LowerLeft]+H[UpperLeft]+pitch,
	)))
	output1 := lowerRight.Transform(MirrorX(Vec(
		L[LowerLeft]+c.CouplingLength+L[LowerRight],
		H[LowerLeft]-H[LowerRight],
	)))
	output2 := upperRight.Translate(Vec(
		L[LowerLeft]+c.CouplingLength,
		H[LowerLeft]+pitch,
	))

	straight1 := Path{
		Points: []Point{
			Pt(L[LowerLeft], H[LowerLeft]),
			Pt(L[LowerLeft]+c.CouplingLength, H[LowerLeft]),
		},
		Width: c.Width,
	}
	straight2 := straight1.Translate(Vec(0, pitch))

	paths := CouplerPaths{
		Input1:    input1,
		Input2:    input2,
		Output1:   output1,
		Output2:   output2,
		Straight1: straight1,
		Straight2: straight2,
	}

	if c.Origin == OriginCenter {
		shift := Vec2(c.boundingBoxCenter()).Negate()
		paths.Input1 = paths.Input1.Translate(shift)
		paths.Input2 = paths.Input2.Translate(shift)
		paths.Output1 = paths.Output1.Translate(shift)
		paths.Output2 = paths.Output2.Translate(shift)
		paths.Straight1 = paths.Straight1.Translate(shift)
		paths.Straight2 = paths.Straight2.Translate(shift)
	}

	return paths, nil
}

// Length returns the horizontal extent of the coupler centerline: the longer
// left arm, the coupling region, and the longer right arm.
func (c Coupler) Length() float64 {
	return max(c.ArmLengths[LowerLeft], c.ArmLengths[UpperLeft]) +
		c.CouplingLength +
		max(c.ArmLengths[LowerRight], c.ArmLengths[UpperRight])
}

// Height returns the vertical extent of the coupler outline: the taller
// lower arm, the separation, the taller upper arm, and the waveguide width
// on both outer edges.
func (c Coupler) Height() float64 {
	return max(c.ArmHeights[LowerLeft], c.ArmHeights[LowerRight]) +
		c.Separation +
		max(c.ArmHeights[UpperLeft], c.ArmHeights[UpperRight]) +
		2*c.Width
}

// Center returns the device center as (Length/2, Height/2).
func (c Coupler) Center() Point {
	return Pt(c.Length()/2, c.Height()/2)
}

// boundingBoxCenter is the center of the device bounding box in the
// port0-anchored frame, computed in closed form from the parameters. The
// centerline extents can start left of or below the lower-left port when the
// upper-left arm is longer or the lower-right arm is taller; Length and
// Height already account for that, so only the minima need restating here.
func (c Coupler) boundingBoxCenter() Point {
	minX := min(0, c.ArmLengths[LowerLeft]-c.ArmLengths[UpperLeft])
	minY := min(0, c.ArmHeights[LowerLeft]-c.ArmHeights[LowerRight])
	// Height includes the width margin on both outer edges; the centerline
	// spans Height−Width.
	return Pt(minX+c.Length()/2, minY+(c.Height()-c.Width)/2)
}

// Ports returns the four outer port coordinates indexed by [ArmPosition].
// In [OriginPort0] mode the lower-left port is the origin; in
// [OriginCenter] mode the ports are re-based the same way Paths re-bases the
// geometry.
func (c Coupler) Ports() [4]Point {
	L := c.ArmLengths
	H := c.ArmHeights
	pitch := c.Separation + c.Width
	ports := [4]Point{
		LowerLeft:  Pt(0, 0),
		UpperLeft:  Pt(L[LowerLeft]-L[UpperLeft], H[LowerLeft]+H[UpperLeft]+pitch),
		LowerRight: Pt(L[LowerLeft]+c.CouplingLength+L[LowerRight], H[LowerLeft]-H[LowerRight]),
		UpperRight: Pt(L[LowerLeft]+c.CouplingLength+L[UpperRight], H[LowerLeft]+H[UpperRight]+pitch),
	}
	if c.Origin == OriginCenter {
		shift := Vec2(c.boundingBoxCenter()).Negate()
		for i := range ports {
			ports[i] = ports[i].Translate(shift)
		}
	}
	return ports
}
