package picgeom

import (
	"errors"
	"math"
	"testing"
)

func TestCouplerPortsSymmetric(t *testing.T) {
	const epsilon = 1e-12
	c := Coupler{
		CouplingLength: 10,
		ArmLengths:     UniformArmParams(16),
		ArmHeights:     UniformArmParams(8),
		Separation:     0.2,
		Width:          0.5,
	}

	ports := c.Ports()
	assertNear(t, ports[LowerLeft], Pt(0, 0), epsilon)
	// With equal arm heights the vertical correction term vanishes.
	assertNear(t, ports[LowerRight], Pt(42, 0), epsilon)
	assertNear(t, ports[UpperLeft], Pt(0, 16.7), epsilon)
	assertNear(t, ports[UpperRight], Pt(42, 16.7), epsilon)
}

func TestCouplerMetrics(t *testing.T) {
	c := NewCoupler(10)
	if l := c.Length(); !approxEqual(l, 42) {
		t.Errorf("got length %g, expected 42", l)
	}
	if h := c.Height(); !approxEqual(h, 17.2) {
		t.Errorf("got height %g, expected 17.2", h)
	}
	assertNear(t, c.Center(), Pt(21, 8.6), 1e-9)
}

func TestCouplerLengthFormula(t *testing.T) {
	arms := []struct {
		coupling float64
		lengths  ArmParams
		want     float64
	}{
		{10, ArmParams{16, 16, 16, 16}, 42},
		{5, ArmParams{16, 18, 12, 14}, 37},
		{0, ArmParams{2, 3, 4, 5}, 8},
	}
	for _, tt := range arms {
		c := NewCoupler(tt.coupling)
		c.ArmLengths = tt.lengths
		if got := c.Length(); !approxEqual(got, tt.want) {
			t.Errorf("coupling %g, arms %v: got length %g, expected %g", tt.coupling, tt.lengths, got, tt.want)
		}
	}
}

// Every arm must terminate on a straight endpoint, or the waveguide is
// broken.
func assertCouplerContinuity(t *testing.T, paths CouplerPaths) {
	t.Helper()
	const epsilon = 1e-9
	assertNear(t, paths.Input1.End(), paths.Straight1.Start(), epsilon)
	assertNear(t, paths.Output1.End(), paths.Straight1.End(), epsilon)
	assertNear(t, paths.Input2.End(), paths.Straight2.Start(), epsilon)
	assertNear(t, paths.Output2.Start(), paths.Straight2.End(), epsilon)
}

func TestCouplerPathsSymmetric(t *testing.T) {
	c := NewCoupler(10)
	paths, err := c.Paths()
	if err != nil {
		t.Fatal(err)
	}

	assertCouplerContinuity(t, paths)

	// Arms start at the ports.
	ports := c.Ports()
	assertNear(t, paths.Input1.Start(), ports[LowerLeft], 1e-9)
	assertNear(t, paths.Input2.Start(), ports[UpperLeft], 1e-9)
	assertNear(t, paths.Output1.Start(), ports[LowerRight], 1e-9)
	assertNear(t, paths.Output2.End(), ports[UpperRight], 1e-9)

	// The straights run parallel, one pitch apart.
	pitch := c.Separation + c.Width
	assertNear(t, paths.Straight2.Start(), paths.Straight1.Start().Translate(Vec(0, pitch)), 1e-12)
	assertNear(t, paths.Straight2.End(), paths.Straight1.End().Translate(Vec(0, pitch)), 1e-12)
}

func TestCouplerPathsAsymmetricArms(t *testing.T) {
	c := NewCoupler(10)
	c.ArmLengths = ArmParams{16, 18, 16, 12}
	c.ArmHeights = ArmParams{8, 8, 10, 6}

	paths, err := c.Paths()
	if err != nil {
		t.Fatal(err)
	}
	assertCouplerContinuity(t, paths)

	ports := c.Ports()
	// Longer upper-left arm pushes its port left of the origin; taller
	// lower-right arm pushes its port below it.
	assertNear(t, ports[UpperLeft], Pt(-2, 16.7), 1e-9)
	assertNear(t, ports[LowerRight], Pt(42, -2), 1e-9)
	assertNear(t, paths.Input2.Start(), ports[UpperLeft], 1e-9)
	assertNear(t, paths.Output1.Start(), ports[LowerRight], 1e-9)
}

func couplerBoundingBox(paths CouplerPaths) Rect {
	bbox := paths.Input1.BoundingBox()
	for _, p := range paths.All()[1:] {
		bbox = bbox.Union(p.BoundingBox())
	}
	return bbox
}

func TestCouplerOriginCenter(t *testing.T) {
	for _, tt := range []struct {
		name    string
		lengths ArmParams
		heights ArmParams
	}{
		{"symmetric", UniformArmParams(16), UniformArmParams(8)},
		{"asymmetric", ArmParams{16, 18, 16, 12}, ArmParams{8, 8, 10, 6}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoupler(10)
			c.ArmLengths = tt.lengths
			c.ArmHeights = tt.heights
			c.Origin = OriginCenter

			paths, err := c.Paths()
			if err != nil {
				t.Fatal(err)
			}
			assertCouplerContinuity(t, paths)

			bbox := couplerBoundingBox(paths)
			assertNear(t, bbox.Center(), Pt(0, 0), 1e-9)
		})
	}
}

func TestCouplerValidation(t *testing.T) {
	c := NewCoupler(10)
	c.Width = 0
	if _, err := c.Paths(); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for zero width", err)
	}

	c = NewCoupler(-1)
	if _, err := c.Paths(); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for negative coupling length", err)
	}

	c = NewCoupler(10)
	c.ArmLengths[UpperRight] = 1
	if _, err := c.Paths(); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for an arm span of 1", err)
	}

	c = NewCoupler(10)
	c.ArmHeights[LowerLeft] = -1
	if _, err := c.Paths(); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for a negative arm height", err)
	}
}

// The closed-form metrics must agree with the generated geometry without
// being measured from it.
func TestCouplerMetricsMatchGeometry(t *testing.T) {
	c := NewCoupler(10)
	c.ArmLengths = ArmParams{16, 18, 16, 12}
	c.ArmHeights = ArmParams{8, 8, 10, 6}

	paths, err := c.Paths()
	if err != nil {
		t.Fatal(err)
	}
	bbox := couplerBoundingBox(paths)
	if got, want := bbox.Width(), c.Length()+c.Width; math.Abs(got-want) > 1e-9 {
		t.Errorf("got bbox width %g, expected %g", got, want)
	}
	if got, want := bbox.Height(), c.Height(); math.Abs(got-want) > 1e-9 {
		t.Errorf("got bbox height %g, expected %g", got, want)
	}
}
