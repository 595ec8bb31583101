package picgeom

import (
	"fmt"
	"math"
)

// Rounder replaces the interior corners of a polyline with arcs. It is a
// pluggable strategy so that callers targeting a layout engine with its own
// arc tessellation can substitute it; [ArcRounder] is the built-in circular
// implementation.
//
// pointsPerCircle sets the tessellation density: the number of points that
// would be used for a full circle of the given radius. [PointsPerCircle]
// derives it from a target segment length.
type Rounder interface {
	Round(points []Point, radius float64, pointsPerCircle int) ([]Point, error)
}

// PointsPerCircle returns the tessellation density that keeps points on a
// circle of the given radius about segLength apart: 2πr / segLength, rounded
// up and never less than 4.
func PointsPerCircle(bendRadius, segLength float64) int {
	if segLength <= 0 {
		segLength = DefaultSegLength
	}
	n := int(math.Ceil(2 * math.Pi * bendRadius / segLength))
	return max(n, 4)
}

// RoundPath rounds every interior corner of a path with the given radius. A
// nil rounder selects [ArcRounder]; a pointsPerCircle of 0 or less selects
// the density for [DefaultSegLength].
func RoundPath(p Path, bendRadius float64, pointsPerCircle int, r Rounder) (Path, error) {
	if r == nil {
		r = ArcRounder{}
	}
	if pointsPerCircle <= 0 {
		pointsPerCircle = PointsPerCircle(bendRadius, DefaultSegLength)
	}
	points, err := r.Round(p.Points, bendRadius, pointsPerCircle)
	if err != nil {
		return Path{}, err
	}
	return NewPath(points, p.Width)
}

// ArcRounder rounds corners with circular arcs sampled as polylines.
type ArcRounder struct{}

var _ Rounder = ArcRounder{}

// coincidentTolerance is the distance below which two consecutive vertices
// are considered the same point. Adjacent arcs that jointly consume a whole
// shared segment meet at a point computed from both ends, which can differ
// in the last ulp.
const coincidentTolerance = 1e-9

// Round replaces each interior vertex with a circular arc of the given
// radius tangent to both adjacent segments. Collinear vertices are kept
// as-is. It fails if the radius is not positive or if the arcs do not fit
// their segments, including when two arcs would jointly overrun the segment
// they share.
func (ArcRounder) Round(points []Point, radius float64, pointsPerCircle int) ([]Point, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: bend radius must be positive, got %g", ErrDomain, radius)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: a path needs at least 2 points, got %d", ErrInvalidArgument, len(points))
	}

	// First pass: the tangent length each corner consumes on both of its
	// adjacent segments, tan(θ/2) of the turn angle scaled by the radius.
	// Endpoints are never rounded and consume nothing.
	tangents := make([]float64, len(points))
	for i := 1; i < len(points)-1; i++ {
		din := points[i].Sub(points[i-1])
		dout := points[i+1].Sub(points[i])
		if din.Cross(dout) == 0 {
			continue
		}
		theta := math.Acos(clamp(din.Normalize().Dot(dout.Normalize()), -1, 1))
		tangents[i] = radius * math.Tan(theta/2)
	}
	// A segment with both vertices rounded is consumed from both ends; the
	// arcs collide when their tangents jointly exceed its length.
	for i := 0; i < len(points)-1; i++ {
		if tangents[i]+tangents[i+1] > points[i+1].Sub(points[i]).Hypot() {
			return nil, fmt.Errorf("%w: bend radius %g does not fit the segment between vertices %d and %d", ErrDomain, radius, i, i+1)
		}
	}

	out := []Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev, v, next := points[i-1], points[i], points[i+1]
		din := v.Sub(prev)
		dout := next.Sub(v)
		turn := din.Cross(dout)
		if turn == 0 {
			out = append(out, v)
			continue
		}
		uin := din.Normalize()
		uout := dout.Normalize()
		theta := math.Acos(clamp(uin.Dot(uout), -1, 1))
		tangent := tangents[i]

		// Arc center sits perpendicular to the incoming direction, on
		// the side the path turns toward.
		side := math.Copysign(1, turn)
		p0 := v.Translate(uin.Mul(-tangent))
		p1 := v.Translate(uout.Mul(tangent))
		center := p0.Translate(uin.Perp().Mul(side * radius))

		start := p0.Sub(center).Angle()
		sweep := side * theta
		steps := max(1, int(math.Round(float64(pointsPerCircle)*theta/(2*math.Pi))))
		arc := make([]Point, 0, steps+1)
		arc = append(arc, p0)
		for k := 1; k < steps; k++ {
			sin, cos := math.Sincos(start + sweep*float64(k)/float64(steps))
			arc = append(arc, center.Translate(Vec(cos, sin).Mul(radius)))
		}
		arc = append(arc, p1)
		for _, pt := range arc {
			if pt.Distance(out[len(out)-1]) < coincidentTolerance {
				continue
			}
			out = append(out, pt)
		}
	}
	// When the last corner's tangent consumes its whole outgoing segment
	// the arc already ends a roundoff away from the endpoint; snap it so
	// the port stays exact.
	end := points[len(points)-1]
	if end.Distance(out[len(out)-1]) < coincidentTolerance {
		out[len(out)-1] = end
	} else {
		out = append(out, end)
	}
	return out, nil
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
