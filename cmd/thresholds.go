package cmd

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/onetree-sim/onetree-sim/sampler"
)

// thresholdRecord formats the CSV row batch tooling consumes:
// csp, tau, then the 1/8, 1/4 and 1/2 cumulative thresholds.
func thresholdRecord(csp, tau int, hist sampler.Histogram) []string {
	return []string{
		strconv.Itoa(csp),
		strconv.Itoa(tau),
		strconv.Itoa(hist.CumulativeThreshold(0.125)),
		strconv.Itoa(hist.CumulativeThreshold(0.25)),
		strconv.Itoa(hist.CumulativeThreshold(0.5)),
	}
}

// thresholdsCmd emits a single CSV row of quantile thresholds for one
// (csp, tau) pair.
var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Emit a CSV row of the 1/8, 1/4 and 1/2 cumulative thresholds",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		grindedParams() // surfaces invalid tau / overflow before the long computation
		hist, err := sampler.NodeCountHistogram(csp-grind, tau)
		if err != nil {
			logrus.Fatalf("Sampling failed: %v", err)
		}

		writer := csv.NewWriter(os.Stdout)
		if err := writer.Write(thresholdRecord(csp, tau, hist)); err != nil {
			logrus.Fatalf("Writing CSV row: %v", err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			logrus.Fatalf("Flushing CSV row: %v", err)
		}
	},
}

func init() {
	thresholdsCmd.Flags().IntVar(&csp, "csp", 0, "Cost budget parameter")
	thresholdsCmd.Flags().IntVar(&tau, "tau", 0, "Quantization parameter (number of split events)")
	_ = thresholdsCmd.MarkFlagRequired("csp")
	_ = thresholdsCmd.MarkFlagRequired("tau")

	rootCmd.AddCommand(thresholdsCmd)
}
