package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightwave-eda/picgeom"
)

var sbendFlags struct {
	kind       string
	length     float64
	height     float64
	width      float64
	bendRadius float64
	nPts       int
	segLength  float64
	round      bool
}

var sbendCmd = &cobra.Command{
	Use:   "sbend",
	Short: "Generate an S-bend waveguide",
	Long: `Generate a single S-bend centerline.

A steep S-bend is a 4-vertex manhattan path (two quarter-circle bends around
a straight run); pass --round to expand its corners into arcs of
--bend-radius. A shallow S-bend is a smooth sigmoid sampled at --n-pts points
(or automatically from --seg-length) and needs no rounding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path picgeom.Path
			err  error
		)
		switch sbendFlags.kind {
		case "steep":
			path, err = picgeom.SteepSBend(sbendFlags.length, sbendFlags.width, sbendFlags.bendRadius)
			if err == nil && sbendFlags.round {
				ppc := picgeom.PointsPerCircle(sbendFlags.bendRadius, sbendFlags.segLength)
				path, err = picgeom.RoundPath(path, sbendFlags.bendRadius, ppc, nil)
			}
		case "shallow":
			if sbendFlags.nPts > 0 {
				path, err = picgeom.ShallowSBendSampled(sbendFlags.height, sbendFlags.length, sbendFlags.width, sbendFlags.nPts)
			} else {
				path, err = picgeom.ShallowSBend(sbendFlags.height, sbendFlags.length, sbendFlags.width)
			}
		default:
			return fmt.Errorf("%w: sbend type must be \"steep\" or \"shallow\", got %q", picgeom.ErrInvalidArgument, sbendFlags.kind)
		}
		if err != nil {
			return err
		}
		return writePaths(cmd.OutOrStdout(), []picgeom.Path{path})
	},
}

func init() {
	f := sbendCmd.Flags()
	f.StringVar(&sbendFlags.kind, "type", "steep", "bend type: steep or shallow")
	f.Float64Var(&sbendFlags.length, "length", 0, "straight run (steep) or horizontal span (shallow)")
	f.Float64Var(&sbendFlags.height, "height", 0, "curve amplitude (shallow only)")
	f.Float64Var(&sbendFlags.width, "width", picgeom.DefaultWidth, "waveguide width")
	f.Float64Var(&sbendFlags.bendRadius, "bend-radius", picgeom.DefaultBendRadius, "corner arc radius (steep only)")
	f.IntVar(&sbendFlags.nPts, "n-pts", 0, "sample points for the shallow curve (0 = automatic)")
	f.Float64Var(&sbendFlags.segLength, "seg-length", picgeom.DefaultSegLength, "target distance between generated points")
	f.BoolVar(&sbendFlags.round, "round", false, "expand steep-bend corners into circular arcs")
	rootCmd.AddCommand(sbendCmd)
}
