package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onetree-sim/onetree-sim/sampler/sweep"
)

var sweepSpecPath string

// sweepCmd evaluates a grid of (csp, tau) pairs in parallel and writes
// the threshold rows to a CSV file.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a (csp, tau) parameter sweep from a YAML spec",
	Long:  "Load a sweep spec, evaluate every (csp, tau) grid point on a bounded worker pool, and write one CSV row of quantile thresholds per point.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := sweep.Load(sweepSpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load sweep spec %s: %v", sweepSpecPath, err)
		}

		logrus.Infof("Sweeping %d grid points on %d workers", len(spec.Grid()), spec.Workers)
		rows, err := sweep.Run(spec)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}

		if err := sweep.WriteCSVFile(spec.Output, rows); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		logrus.Infof("Wrote %d rows to %s", len(rows), spec.Output)
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepSpecPath, "spec", "", "Path to sweep spec YAML file")
	_ = sweepCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(sweepCmd)
}
