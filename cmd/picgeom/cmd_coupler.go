package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lightwave-eda/picgeom"
)

var couplerFlags struct {
	couplingLength float64
	armLengths     string
	armHeights     string
	separation     float64
	width          float64
	origin         string
}

var couplerCmd = &cobra.Command{
	Use:   "coupler",
	Short: "Generate a directional coupler",
	Long: `Generate the six centerline paths of a directional coupler (four S-bend
arms and two coupling straights) together with its derived metrics.

Arm lengths and heights accept a single value broadcast to all four arms or
four comma-separated values in the order lower left, upper left, lower right,
upper right. A spec file can additionally use a mapping keyed by those names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var c picgeom.Coupler
		var err error
		if specFile != "" {
			spec, err2 := loadSpec(specFile)
			if err2 != nil {
				return err2
			}
			if spec.Coupler == nil {
				return fmt.Errorf("spec file %s has no coupler section", specFile)
			}
			c, err = spec.Coupler.Coupler()
		} else {
			c, err = couplerFromFlags()
		}
		if err != nil {
			return err
		}

		logger.Debug("generating coupler",
			zap.Float64("coupling_length", c.CouplingLength),
			zap.Float64("separation", c.Separation),
			zap.Float64("width", c.Width))

		paths, err := c.Paths()
		if err != nil {
			return err
		}
		return writeCoupler(cmd.OutOrStdout(), c, paths)
	},
}

func couplerFromFlags() (picgeom.Coupler, error) {
	c := picgeom.NewCoupler(couplerFlags.couplingLength)
	c.Separation = couplerFlags.separation
	c.Width = couplerFlags.width

	lengths, err := parseArmParams(couplerFlags.armLengths)
	if err != nil {
		return picgeom.Coupler{}, err
	}
	if c.ArmLengths, err = picgeom.NormalizeArmParams(lengths); err != nil {
		return picgeom.Coupler{}, err
	}
	heights, err := parseArmParams(couplerFlags.armHeights)
	if err != nil {
		return picgeom.Coupler{}, err
	}
	if c.ArmHeights, err = picgeom.NormalizeArmParams(heights); err != nil {
		return picgeom.Coupler{}, err
	}
	if c.Origin, err = parseOrigin(couplerFlags.origin); err != nil {
		return picgeom.Coupler{}, err
	}
	return c, nil
}

func init() {
	f := couplerCmd.Flags()
	f.Float64Var(&couplerFlags.couplingLength, "coupling-length", 10, "length of the straight coupling region")
	f.StringVar(&couplerFlags.armLengths, "arm-lengths", "16", "arm spans: one value or four comma-separated")
	f.StringVar(&couplerFlags.armHeights, "arm-heights", "8", "arm rises: one value or four comma-separated")
	f.Float64Var(&couplerFlags.separation, "separation", picgeom.DefaultSeparation, "edge-to-edge gap in the coupling region")
	f.Float64Var(&couplerFlags.width, "width", picgeom.DefaultWidth, "waveguide width")
	f.StringVar(&couplerFlags.origin, "origin", "port0", "coordinate origin: port0 or center")
	rootCmd.AddCommand(couplerCmd)
}
