package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lightwave-eda/picgeom"
)

// Spec is the YAML schema of a --spec file. Each component section is
// optional; the subcommand picks the one it needs.
type Spec struct {
	Coupler *CouplerSpec `yaml:"coupler"`
	Route   *RouteSpec   `yaml:"route"`
}

// CouplerSpec mirrors picgeom.Coupler with YAML-friendly types. ArmLengths
// and ArmHeights accept the same shapes the library normalizes: a scalar, a
// 4-element list, or a mapping keyed by arm position.
type CouplerSpec struct {
	CouplingLength float64  `yaml:"coupling_length"`
	ArmLengths     any      `yaml:"arm_lengths"`
	ArmHeights     any      `yaml:"arm_heights"`
	Separation     *float64 `yaml:"separation"`
	Width          *float64 `yaml:"width"`
	Origin         string   `yaml:"origin"`
}

// Coupler converts the spec into a validated picgeom.Coupler.
func (s CouplerSpec) Coupler() (picgeom.Coupler, error) {
	c := picgeom.NewCoupler(s.CouplingLength)
	if s.ArmLengths != nil {
		arms, err := picgeom.NormalizeArmParams(s.ArmLengths)
		if err != nil {
			return picgeom.Coupler{}, fmt.Errorf("arm_lengths: %w", err)
		}
		c.ArmLengths = arms
	}
	if s.ArmHeights != nil {
		arms, err := picgeom.NormalizeArmParams(s.ArmHeights)
		if err != nil {
			return picgeom.Coupler{}, fmt.Errorf("arm_heights: %w", err)
		}
		c.ArmHeights = arms
	}
	if s.Separation != nil {
		c.Separation = *s.Separation
	}
	if s.Width != nil {
		c.Width = *s.Width
	}
	origin, err := parseOrigin(s.Origin)
	if err != nil {
		return picgeom.Coupler{}, err
	}
	c.Origin = origin
	return c, nil
}

func parseOrigin(s string) (picgeom.OriginMode, error) {
	switch s {
	case "", "port0":
		return picgeom.OriginPort0, nil
	case "center":
		return picgeom.OriginCenter, nil
	default:
		return 0, fmt.Errorf("%w: origin must be \"port0\" or \"center\", got %q", picgeom.ErrInvalidArgument, s)
	}
}

// RouteSpec mirrors the arguments of picgeom.ParallelRoute.
type RouteSpec struct {
	Inputs        []float64 `yaml:"inputs"`
	Outputs       []float64 `yaml:"outputs"`
	PortDir       string    `yaml:"port_dir"`
	Spacing       float64   `yaml:"spacing"`
	Length        float64   `yaml:"length"`
	MinBendRadius float64   `yaml:"min_bend_radius"`
	Width         float64   `yaml:"width"`
}

// Paths runs the router described by the spec.
func (s RouteSpec) Paths() ([]picgeom.Path, error) {
	dir, err := picgeom.ParseAxis(s.PortDir)
	if err != nil {
		return nil, err
	}
	return picgeom.ParallelRoute(s.Inputs, s.Outputs, dir, picgeom.RouteOptions{
		Spacing:       s.Spacing,
		Length:        s.Length,
		MinBendRadius: s.MinBendRadius,
		Width:         s.Width,
	})
}

func loadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}
	return decodeSpec(data)
}

func decodeSpec(data []byte) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("failed to parse spec: %w", err)
	}
	return s, nil
}

// parseArmParams turns a flag value like "16" or "1,2,3,4" into the shape
// NormalizeArmParams accepts.
func parseArmParams(s string) (any, error) {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", picgeom.ErrInvalidArgument, parts[0])
		}
		return v, nil
	}
	vs := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", picgeom.ErrInvalidArgument, p)
		}
		vs[i] = v
	}
	return vs, nil
}
