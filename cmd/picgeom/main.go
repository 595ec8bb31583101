// Command picgeom generates photonic component geometry from the command
// line. Results are printed as JSON vertex lists plus derived metrics, ready
// for piping into layout tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose  bool
	specFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "picgeom",
	Short: "Generate parametric photonic waveguide geometry",
	Long: `picgeom computes centerline geometry for passive photonic components:
S-bend waveguides, directional couplers, and dense parallel routing fan-outs.

Parameters come from flags or from a YAML spec file (--spec). Geometry is
written to stdout as JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&specFile, "spec", "", "YAML spec file with component parameters")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
