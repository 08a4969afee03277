package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onetree-sim/onetree-sim/sampler"
)

var (
	csp      int    // Cost budget parameter
	tau      int    // Quantization parameter; also the number of split events
	grind    int    // Grinding offset subtracted from csp before derivation
	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "onetree-sim",
	Short: "Exact distribution calculator for random one-tree splitting",
}

// setupLogging parses and applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// grindedParams applies the grind offset and derives the VC parameters
// and leaf count shared by the run and thresholds commands.
func grindedParams() (sampler.VCParams, int) {
	params, ok := sampler.DeriveVCParams(csp-grind, tau)
	if !ok {
		logrus.Fatalf("tau must be positive, got %d", tau)
	}
	leaves, err := params.LeafCount()
	if err != nil {
		logrus.Fatalf("Deriving leaf count: %v", err)
	}
	return params, leaves
}

// runCmd computes the full node-count histogram for one (csp, tau) pair
// and prints it.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the node-count histogram for one (csp, tau) pair",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		params, leaves := grindedParams()
		logrus.Infof("Starting with csp=%d (grind %d), tau=%d: L=%d, TOpen=%d",
			csp, grind, tau, leaves, params.TOpen())

		startTime := time.Now()
		hist, err := sampler.NodeCountHistogram(csp-grind, tau)
		if err != nil {
			logrus.Fatalf("Sampling failed: %v", err)
		}

		fmt.Printf("Histogram for one-tree distribution grinded_csp = %d tau = %d\n", csp-grind, tau)
		for _, bin := range hist {
			fmt.Printf("Size: %d Probability: %g\n", bin.Nodes, bin.Prob)
		}
		fmt.Printf("Expected size: %.6f\n", hist.Expectation())

		logrus.Infof("Completed in %s.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&grind, "grind", 8, "Grinding offset subtracted from csp")

	runCmd.Flags().IntVar(&csp, "csp", 0, "Cost budget parameter")
	runCmd.Flags().IntVar(&tau, "tau", 0, "Quantization parameter (number of split events)")
	_ = runCmd.MarkFlagRequired("csp")
	_ = runCmd.MarkFlagRequired("tau")

	rootCmd.AddCommand(runCmd)
}
