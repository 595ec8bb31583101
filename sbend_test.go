package picgeom

import (
	"errors"
	"math"
	"testing"
)

func TestSteepSBendVertices(t *testing.T) {
	p, err := SteepSBend(7, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 27), Pt(20, 27)}, p.Points)

	// The polyline must alternate horizontal, vertical, horizontal.
	for i := 1; i < len(p.Points); i++ {
		d := p.Points[i].Sub(p.Points[i-1])
		horizontal := i%2 == 1
		if horizontal && d.Y != 0 {
			t.Errorf("segment %d is not horizontal: %v", i, d)
		}
		if !horizontal && d.X != 0 {
			t.Errorf("segment %d is not vertical: %v", i, d)
		}
	}
}

func TestSteepSBendDegenerate(t *testing.T) {
	// A zero straight run leaves the minimal S of height 2r.
	p, err := SteepSBend(0, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(20, 20), p.End())
}

func TestSteepSBendDomainErrors(t *testing.T) {
	if _, err := SteepSBend(5, 0.5, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for zero bend radius", err)
	}
	if _, err := SteepSBend(-1, 0.5, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for negative straight run", err)
	}
}

func TestSteepSBendLength(t *testing.T) {
	if l := SteepSBendLength(7, 10); !approxEqual(l, 7+10*math.Pi) {
		t.Errorf("got %g, expected %g", l, 7+10*math.Pi)
	}
}

// The rounded steep S-bend's measured length converges on the closed form.
func TestSteepSBendLengthMatchesRounded(t *testing.T) {
	p, err := SteepSBend(7, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	rounded, err := RoundPath(p, 10, 3600, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := SteepSBendLength(7, 10)
	if got := rounded.Length(); math.Abs(got-want) > 1e-3 {
		t.Errorf("got rounded length %g, expected about %g", got, want)
	}
}

func TestShallowSBendPorts(t *testing.T) {
	const epsilon = 1e-12
	p, err := ShallowSBendSampled(2, 10, 0.5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Points) != 5 {
		t.Fatalf("got %d points, expected 5", len(p.Points))
	}
	assertNear(t, p.Start(), Pt(0, 0), epsilon)
	assertNear(t, p.End(), Pt(10, 4), epsilon)
	// The curve's inflection sits halfway, at the amplitude.
	assertNear(t, p.Points[2], Pt(5, 2), epsilon)

	// x must increase monotonically; the curve is a function of x.
	for i := 1; i < len(p.Points); i++ {
		if p.Points[i].X <= p.Points[i-1].X {
			t.Errorf("x not monotone at %d: %v after %v", i, p.Points[i], p.Points[i-1])
		}
	}
}

func TestShallowSBendNegativeHeight(t *testing.T) {
	p, err := ShallowSBendSampled(-2, 10, 0.5, 5)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, p.End(), Pt(10, -4), 1e-12)
}

func TestShallowSBendDomainError(t *testing.T) {
	if _, err := ShallowSBend(2, 1, 0.5); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for span of 1", err)
	}
	if _, err := ShallowSBend(2, 0.5, 0.5); !errors.Is(err, ErrDomain) {
		t.Errorf("got %v, expected ErrDomain for span below 1", err)
	}
	if _, err := ShallowSBendSampled(2, 10, 0.5, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, expected ErrInvalidArgument for a single sample", err)
	}
}

func TestShallowSBendLengthFlatLimit(t *testing.T) {
	// With zero amplitude the curve is the straight span.
	if l := ShallowSBendLength(0, 12); !approxEqual(l, 12) {
		t.Errorf("got %g, expected 12", l)
	}
	// And the closed form approaches that limit continuously.
	if l := ShallowSBendLength(1e-9, 12); math.Abs(l-12) > 1e-6 {
		t.Errorf("got %g, expected about 12", l)
	}
}

func TestShallowSBendAutoSampling(t *testing.T) {
	// Flat curve of span 10 at the default segment length of 1.4 needs
	// ceil(10/1.4) = 8 points.
	p, err := ShallowSBend(0, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Points) != 8 {
		t.Errorf("got %d points, expected 8", len(p.Points))
	}

	// Larger amplitude means a longer curve and at least as many points.
	q, err := ShallowSBend(6, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Points) < len(p.Points) {
		t.Errorf("got %d points, expected at least %d", len(q.Points), len(p.Points))
	}
}
