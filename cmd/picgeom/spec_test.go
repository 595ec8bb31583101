package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightwave-eda/picgeom"
)

func TestDecodeCouplerSpecScalarArms(t *testing.T) {
	spec, err := decodeSpec([]byte(`
coupler:
  coupling_length: 10
  arm_lengths: 16
  arm_heights: 8
  separation: 0.2
  width: 0.5
  origin: center
`))
	require.NoError(t, err)
	require.NotNil(t, spec.Coupler)

	c, err := spec.Coupler.Coupler()
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.CouplingLength)
	assert.Equal(t, picgeom.UniformArmParams(16), c.ArmLengths)
	assert.Equal(t, picgeom.UniformArmParams(8), c.ArmHeights)
	assert.Equal(t, picgeom.OriginCenter, c.Origin)
}

func TestDecodeCouplerSpecMappedArms(t *testing.T) {
	spec, err := decodeSpec([]byte(`
coupler:
  coupling_length: 5
  arm_lengths:
    lower left: 16
    upper left: 18
    lower right: 16
    upper right: 12
  arm_heights: [8, 8, 10, 6]
`))
	require.NoError(t, err)

	c, err := spec.Coupler.Coupler()
	require.NoError(t, err)
	assert.Equal(t, picgeom.ArmParams{16, 18, 16, 12}, c.ArmLengths)
	assert.Equal(t, picgeom.ArmParams{8, 8, 10, 6}, c.ArmHeights)
	// Omitted parameters keep their defaults.
	assert.Equal(t, picgeom.DefaultSeparation, c.Separation)
	assert.Equal(t, picgeom.DefaultWidth, c.Width)
	assert.Equal(t, picgeom.OriginPort0, c.Origin)
}

func TestDecodeCouplerSpecMissingArmKey(t *testing.T) {
	spec, err := decodeSpec([]byte(`
coupler:
  coupling_length: 5
  arm_lengths:
    lower left: 1
    upper left: 2
    lower right: 3
`))
	require.NoError(t, err)

	_, err = spec.Coupler.Coupler()
	require.Error(t, err)
	assert.ErrorIs(t, err, picgeom.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "upper right")
}

func TestDecodeCouplerSpecBadOrigin(t *testing.T) {
	spec, err := decodeSpec([]byte(`
coupler:
  coupling_length: 5
  origin: port7
`))
	require.NoError(t, err)

	_, err = spec.Coupler.Coupler()
	assert.ErrorIs(t, err, picgeom.ErrInvalidArgument)
}

func TestDecodeSpecUnknownField(t *testing.T) {
	_, err := decodeSpec([]byte(`
coupler:
  coupling_distance: 5
`))
	require.Error(t, err)
}

func TestDecodeRouteSpec(t *testing.T) {
	spec, err := decodeSpec([]byte(`
route:
  inputs: [0, 4]
  outputs: [0, 4]
  port_dir: x
  min_bend_radius: 5
  width: 0.5
`))
	require.NoError(t, err)
	require.NotNil(t, spec.Route)

	paths, err := spec.Route.Paths()
	require.NoError(t, err)
	assert.Len(t, paths, 4)
	assert.Equal(t, picgeom.Pt(12.5, 4), paths[3].End())
}

func TestDecodeRouteSpecOverconstrained(t *testing.T) {
	spec, err := decodeSpec([]byte(`
route:
  inputs: [0, 4]
  outputs: [0, 4]
  port_dir: x
  spacing: 2
  length: 12.5
`))
	require.NoError(t, err)

	_, err = spec.Route.Paths()
	assert.ErrorIs(t, err, picgeom.ErrOverconstrained)
}

func TestParseArmParams(t *testing.T) {
	v, err := parseArmParams("16")
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)

	v, err = parseArmParams("1, 2,3,4")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, v)

	_, err = parseArmParams("1,two,3,4")
	assert.ErrorIs(t, err, picgeom.ErrInvalidArgument)
}
