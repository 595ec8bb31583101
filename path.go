package picgeom

import "fmt"

// Path is the centerline of a waveguide segment before corner rounding: an
// ordered sequence of at least two vertices plus the waveguide width. The
// vertex order is significant; it defines the direction of the waveguide and
// which end is which port. Transform methods return new Paths and never
// mutate the receiver.
type Path struct {
	Points []Point
	Width  float64
}

// NewPath returns a path over the given vertices. It fails if fewer than two
// vertices are given or the width is not positive.
func NewPath(points []Point, width float64) (Path, error) {
	if len(points) < 2 {
		return Path{}, fmt.Errorf("%w: a path needs at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	if width <= 0 {
		return Path{}, fmt.Errorf("%w: path width must be positive, got %g", ErrDomain, width)
	}
	return Path{Points: points, Width: width}, nil
}

// Start returns the first vertex, the path's input port.
func (p Path) Start() Point {
	return p.Points[0]
}

// End returns the last vertex, the path's output port.
func (p Path) End() Point {
	return p.Points[len(p.Points)-1]
}

// Transform returns a copy of the path with t applied to every vertex.
func (p Path) Transform(t Transform) Path {
	points := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		points[i] = t.Apply(pt)
	}
	return Path{Points: points, Width: p.Width}
}

// Translate returns a copy of the path displaced by v.
func (p Path) Translate(v Vec2) Path {
	return p.Transform(Translation(v))
}

// Length returns the total length of the polyline.
func (p Path) Length() float64 {
	var sum float64
	for i := 1; i < len(p.Points); i++ {
		sum += p.Points[i].Distance(p.Points[i-1])
	}
	return sum
}

// BoundingBox returns the bounding box of the waveguide outline, i.e. the
// vertex extents inflated by half the width on every side.
func (p Path) BoundingBox() Rect {
	r := NewRectFromPoints(p.Points[0], p.Points[1])
	for _, pt := range p.Points[2:] {
		r = r.UnionPoint(pt)
	}
	return r.Inflate(p.Width / 2)
}
