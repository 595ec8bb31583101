package picgeom

// Reflection selects an optional mirror about one of the coordinate axes.
type Reflection uint8

const (
	// NoReflection leaves coordinates unchanged.
	NoReflection Reflection = iota
	// FlipX negates the x coordinate, mirroring about the y-axis.
	FlipX
	// FlipY negates the y coordinate, mirroring about the x-axis.
	FlipY
)

// Transform is a rigid transform composed of an optional reflection followed
// by a translation. The reflection is always applied first; the two do not
// commute.
type Transform struct {
	Reflection Reflection
	Offset     Vec2
}

// Identity is the transform that maps every point to itself.
var Identity = Transform{}

// Translation returns a transform that only translates, by v.
func Translation(v Vec2) Transform {
	return Transform{Offset: v}
}

// MirrorX returns a transform that mirrors about the y-axis (negating x) and
// then translates by v.
func MirrorX(v Vec2) Transform {
	return Transform{Reflection: FlipX, Offset: v}
}

// MirrorY returns a transform that mirrors about the x-axis (negating y) and
// then translates by v.
func MirrorY(v Vec2) Transform {
	return Transform{Reflection: FlipY, Offset: v}
}

// Apply transforms a single point.
func (t Transform) Apply(pt Point) Point {
	switch t.Reflection {
	case FlipX:
		pt.X = -pt.X
	case FlipY:
		pt.Y = -pt.Y
	}
	return pt.Translate(t.Offset)
}

// ThenTranslate returns t followed by a further translation of v.
func (t Transform) ThenTranslate(v Vec2) Transform {
	t.Offset = t.Offset.Add(v)
	return t
}
