package picgeom

import (
	"fmt"
	"math"
)

// SteepSBend builds the compact S-bend: a quarter-circle bend up, a straight
// vertical run of the given length, and a quarter-circle bend back to the
// original direction. The result is the unrounded 4-vertex manhattan
// centerline
//
//	(0,0) → (r,0) → (r, length+2r) → (2r, length+2r)
//
// with the input port at the origin and the output port displaced by
// (2r, length+2r), both facing +x. Corner rounding at the two interior
// vertices is left to a [Rounder] (see [RoundPath]). A length of 0 gives the
// minimal S of height 2r.
func SteepSBend(length, width, bendRadius float64) (Path, error) {
	if bendRadius <= 0 {
		return Path{}, fmt.Errorf("%w: bend radius must be positive, got %g", ErrDomain, bendRadius)
	}
	if length < 0 {
		return Path{}, fmt.Errorf("%w: straight run must be non-negative, got %g", ErrDomain, length)
	}
	points := []Point{
		Pt(0, 0),
		Pt(bendRadius, 0),
		Pt(bendRadius, length+2*bendRadius),
		Pt(2*bendRadius, length+2*bendRadius),
	}
	return NewPath(points, width)
}

// SteepSBendLength returns the centerline length of the rounded steep
// S-bend: the straight run plus two quarter arcs of radius bendRadius.
func SteepSBendLength(length, bendRadius float64) float64 {
	return length + math.Pi*bendRadius
}

// shallowCurve evaluates the sigmoid used by the shallow S-bend,
//
//	f(x) = 4·a·x·(b+1−|x|) / (b+1)²
//
// where a is the curve amplitude and b+1 the horizontal half-domain scale.
// Over x ∈ [−(b+1)/2, (b+1)/2] the curve is monotone with its extrema ∓a at
// the endpoints.
func shallowCurve(a, b, x float64) float64 {
	s := b + 1
	return 4 * a * x * (s - math.Abs(x)) / (s * s)
}

// shallowCurveLength is the closed-form length of the sigmoid between its
// extrema. The a → 0 limit is b+1.
func shallowCurveLength(a, b float64) float64 {
	if a == 0 {
		return b + 1
	}
	p := (b + 1) / 4
	q := 2 * math.Sqrt(1+(4*a*a)/((1+b)*(1+b)))
	r := (b + 1) * math.Asinh(2*a/(1+b)) / a
	return p * (q + r)
}

// ShallowSBendLength returns the centerline length of the shallow S-bend
// with the given amplitude and horizontal span. It is computed in closed
// form, not by measuring sampled points, so it can be evaluated before any
// geometry exists.
func ShallowSBendLength(height, length float64) float64 {
	return shallowCurveLength(height, length-1)
}

// ShallowSBend builds the smooth S-bend: a sigmoid curve with amplitude
// height spanning length units horizontally. It avoids circular arcs
// entirely, trading footprint for a gentler bend. The input port is at the
// origin; the output port is at (length, 2·height), so the perpendicular
// port offset is twice the amplitude. The sign of height picks the bend
// direction.
//
// The number of sample points is chosen so that consecutive points are about
// [DefaultSegLength] apart along the curve; use [ShallowSBendSampled] to fix
// the count explicitly. A length of 1 or less is outside the curve's domain
// and fails with an error wrapping [ErrDomain].
func ShallowSBend(height, length, width float64) (Path, error) {
	return ShallowSBendSampled(height, length, width, autoSampleCount(ShallowSBendLength(height, length), DefaultSegLength))
}

// ShallowSBendSampled is [ShallowSBend] with an explicit number of sample
// points, which must be at least 2.
func ShallowSBendSampled(height, length, width float64, nPts int) (Path, error) {
	if length <= 1 {
		return Path{}, fmt.Errorf("%w: shallow s-bend span must exceed 1, got %g", ErrDomain, length)
	}
	if nPts < 2 {
		return Path{}, fmt.Errorf("%w: need at least 2 sample points, got %d", ErrInvalidArgument, nPts)
	}

	a := height
	b := length - 1
	points := make([]Point, nPts)
	for i := range points {
		// Sample x ∈ [−length/2, length/2], then shift so the first
		// sample sits at the origin.
		x := length * (float64(i)/float64(nPts-1) - 0.5)
		points[i] = Pt(x+length/2, shallowCurve(a, b, x)+a)
	}
	// The curve's extrema ∓a sit exactly at the domain endpoints; pin the
	// ports there to keep them free of roundoff.
	points[0] = Pt(0, 0)
	points[nPts-1] = Pt(length, 2*a)

	return NewPath(points, width)
}

// autoSampleCount converts a curve length and a target segment length into a
// point count, never fewer than 2.
func autoSampleCount(curveLength, segLength float64) int {
	if segLength <= 0 {
		segLength = DefaultSegLength
	}
	n := int(math.Ceil(math.Abs(curveLength) / segLength))
	return max(n, 2)
}
