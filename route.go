package picgeom

import "fmt"

// Axis names the direction waveguides travel at the ports of a parallel
// interconnect.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts the tokens "x" and "y" into an [Axis]. Any other token
// fails with an error wrapping [ErrInvalidArgument].
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return 0, fmt.Errorf("%w: port direction must be \"x\" or \"y\", got %q", ErrInvalidArgument, s)
	}
}

// pt builds a point from a coordinate along the axis and one perpendicular
// to it.
func (a Axis) pt(along, across float64) Point {
	if a == AxisY {
		return Pt(across, along)
	}
	return Pt(along, across)
}

// RouteOptions constrains a parallel route. At most one of Spacing and
// Length may be set; fixing the spacing determines the interconnect length
// and vice versa. A zero value means unset; when both are unset the spacing
// defaults to [DefaultRouteSpacing]. Spacing must be positive when set.
// Zero values for MinBendRadius and Width select [DefaultMinBendRadius] and
// [DefaultWidth].
type RouteOptions struct {
	// Spacing is the edge-to-edge gap between waveguides on their parallel
	// run.
	Spacing float64
	// Length is the extent of the interconnect in the port direction.
	Length float64
	// MinBendRadius is the radius of the tightest bend generated.
	MinBendRadius float64
	// Width is the waveguide width.
	Width float64
}

// ParallelRoute routes the ith input port to the ith output port using two
// 90-degree bends per path, keeping the interconnect as short as possible in
// the port direction. Inputs and outputs give only the coordinate
// perpendicular to dir: for dir == AxisX they are y coordinates, with the
// input ports placed at x = 0 and the output ports at x = length.
//
// Port i turns through radius minBendRadius + i·(spacing+width) at its first
// bend and through the mirrored radius (index N−1−i) at its second. The
// radius sums are constant across ports, so the vertical runs of all paths
// are parallel and spacing apart, and the paths never cross.
//
// The result has two 3-vertex dogleg paths per port, in port order, each to
// be rounded at its middle vertex (see [RouteRadii] for the radii).
func ParallelRoute(inputs, outputs []float64, dir Axis, opts RouteOptions) ([]Path, error) {
	numPorts := len(inputs)
	if numPorts == 0 {
		return nil, fmt.Errorf("%w: at least one input port is required", ErrInvalidArgument)
	}
	if numPorts != len(outputs) {
		return nil, fmt.Errorf("%w: got %d input ports but %d output ports", ErrInvalidArgument, numPorts, len(outputs))
	}
	if dir != AxisX && dir != AxisY {
		return nil, fmt.Errorf("%w: unknown port direction %v", ErrInvalidArgument, dir)
	}

	minBendRadius := opts.MinBendRadius
	if minBendRadius == 0 {
		minBendRadius = DefaultMinBendRadius
	}
	if minBendRadius <= 0 {
		return nil, fmt.Errorf("%w: minimum bend radius must be positive, got %g", ErrDomain, minBendRadius)
	}
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}

	spacing := opts.Spacing
	switch {
	case opts.Spacing < 0:
		return nil, fmt.Errorf("%w: spacing must be non-negative, got %g", ErrDomain, opts.Spacing)
	case opts.Spacing != 0 && opts.Length != 0:
		return nil, fmt.Errorf("%w: pass spacing or length, not both", ErrOverconstrained)
	case opts.Spacing == 0 && opts.Length == 0:
		spacing = DefaultRouteSpacing
	case opts.Length != 0:
		var err error
		spacing, err = DenseRouteSpacing(numPorts, opts.Length, minBendRadius, width)
		if err != nil {
			return nil, err
		}
	}

	length := DenseRouteLength(numPorts, spacing, minBendRadius, width)
	radii := RouteRadii(numPorts, spacing, minBendRadius, width)

	routes := make([]Path, 0, 2*numPorts)
	for i := 0; i < numPorts; i++ {
		r1 := radii[i]
		r2 := radii[numPorts-1-i]
		in := inputs[i]
		out := outputs[i]

		// First bend: leave the input port, turn into the shared travel
		// direction. The third vertex is where the quarter arc of
		// radius r1 ends.
		routes = append(routes, Path{
			Points: []Point{
				dir.pt(0, in),
				dir.pt(r1, in),
				dir.pt(r1, in+r1),
			},
			Width: width,
		})
		// Second bend: the mirrored radius puts the bend corner at the
		// same along-coordinate, length−r2 == r1, so the parallel run
		// is a straight continuation.
		routes = append(routes, Path{
			Points: []Point{
				dir.pt(r1, in+r1),
				dir.pt(length-r2, out),
				dir.pt(length, out),
			},
			Width: width,
		})
	}
	return routes, nil
}

// RouteRadii returns the first-bend radius of each port in a dense parallel
// route: minBendRadius + i·(spacing+width), strictly increasing with the
// port index. The second-bend radius of port i is element numPorts−1−i.
func RouteRadii(numPorts int, spacing, minBendRadius, width float64) []float64 {
	radii := make([]float64, numPorts)
	for i := range radii {
		radii[i] = minBendRadius + float64(i)*(spacing+width)
	}
	return radii
}

// DenseRouteLength returns the port-direction extent of the interconnect
// generated by [ParallelRoute] with a fixed spacing: the sum of the smallest
// and largest bend radii.
func DenseRouteLength(numPorts int, spacing, minBendRadius, width float64) float64 {
	bend1 := minBendRadius
	bend2 := minBendRadius + float64(numPorts-1)*(spacing+width)
	return bend1 + bend2
}

// DenseRouteSpacing solves [DenseRouteLength] for the spacing that yields
// the given interconnect length. It is the inverse of DenseRouteLength in
// its spacing argument. With a single port the length is 2·minBendRadius
// regardless of spacing, so the spacing cannot be solved for.
func DenseRouteSpacing(numPorts int, length, minBendRadius, width float64) (float64, error) {
	if numPorts < 2 {
		return 0, fmt.Errorf("%w: spacing is undetermined for %d port(s); fix it directly", ErrDomain, numPorts)
	}
	spacing := (length-2*minBendRadius)/float64(numPorts-1) - width
	if spacing <= 0 {
		return 0, fmt.Errorf("%w: length %g leaves no room between waveguides", ErrDomain, length)
	}
	return spacing, nil
}
