package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lightwave-eda/picgeom"
)

var routeFlags struct {
	inputs        []float64
	outputs       []float64
	portDir       string
	spacing       float64
	length        float64
	minBendRadius float64
	width         float64
	round         bool
	segLength     float64
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route N parallel inputs to N parallel outputs",
	Long: `Route waveguides from each input port to the output port with the same
index, using two 90-degree bends per path and nested bend radii so the paths
never cross. Inputs and outputs are the port coordinates perpendicular to the
port direction.

Fix either the waveguide spacing or the interconnect length; the other is
solved for. With --round the dogleg corners are expanded into circular arcs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := RouteSpec{
			Inputs:        routeFlags.inputs,
			Outputs:       routeFlags.outputs,
			PortDir:       routeFlags.portDir,
			Spacing:       routeFlags.spacing,
			Length:        routeFlags.length,
			MinBendRadius: routeFlags.minBendRadius,
			Width:         routeFlags.width,
		}
		if specFile != "" {
			fileSpec, err := loadSpec(specFile)
			if err != nil {
				return err
			}
			if fileSpec.Route == nil {
				return fmt.Errorf("spec file %s has no route section", specFile)
			}
			spec = *fileSpec.Route
		}

		logger.Debug("routing",
			zap.Int("ports", len(spec.Inputs)),
			zap.String("port_dir", spec.PortDir))

		paths, err := spec.Paths()
		if err != nil {
			return err
		}
		if routeFlags.round {
			paths, err = roundRoutes(paths, spec)
			if err != nil {
				return err
			}
		}
		return writePaths(cmd.OutOrStdout(), paths)
	},
}

// roundRoutes expands each dogleg's corner into a circular arc, using the
// radius the router reserved for it: the first-bend radii in port order, the
// mirrored radii for the second bends.
func roundRoutes(paths []picgeom.Path, spec RouteSpec) ([]picgeom.Path, error) {
	numPorts := len(paths) / 2
	minBendRadius := spec.MinBendRadius
	if minBendRadius == 0 {
		minBendRadius = picgeom.DefaultMinBendRadius
	}
	width := spec.Width
	if width == 0 {
		width = picgeom.DefaultWidth
	}
	spacing := spec.Spacing
	if spacing == 0 && spec.Length != 0 {
		var err error
		spacing, err = picgeom.DenseRouteSpacing(numPorts, spec.Length, minBendRadius, width)
		if err != nil {
			return nil, err
		}
	} else if spacing == 0 {
		spacing = picgeom.DefaultRouteSpacing
	}
	radii := picgeom.RouteRadii(numPorts, spacing, minBendRadius, width)

	rounded := make([]picgeom.Path, len(paths))
	for i, p := range paths {
		port := i / 2
		radius := radii[port]
		if i%2 == 1 {
			radius = radii[numPorts-1-port]
		}
		var err error
		rounded[i], err = picgeom.RoundPath(p, radius, picgeom.PointsPerCircle(radius, routeFlags.segLength), nil)
		if err != nil {
			return nil, err
		}
	}
	return rounded, nil
}

func init() {
	f := routeCmd.Flags()
	f.Float64SliceVar(&routeFlags.inputs, "inputs", nil, "input port coordinates perpendicular to the port direction")
	f.Float64SliceVar(&routeFlags.outputs, "outputs", nil, "output port coordinates perpendicular to the port direction")
	f.StringVar(&routeFlags.portDir, "port-dir", "x", "port direction: x or y")
	f.Float64Var(&routeFlags.spacing, "spacing", 0, "edge-to-edge waveguide spacing (conflicts with --length)")
	f.Float64Var(&routeFlags.length, "length", 0, "interconnect length in the port direction (conflicts with --spacing)")
	f.Float64Var(&routeFlags.minBendRadius, "min-bend-radius", picgeom.DefaultMinBendRadius, "radius of the tightest bend")
	f.Float64Var(&routeFlags.width, "width", picgeom.DefaultWidth, "waveguide width")
	f.BoolVar(&routeFlags.round, "round", false, "expand corners into circular arcs")
	f.Float64Var(&routeFlags.segLength, "seg-length", picgeom.DefaultSegLength, "target arc segment length for --round")
	rootCmd.AddCommand(routeCmd)
}
