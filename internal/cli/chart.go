// internal/cli/chart.go
package mlmon

import (
	"github.com/spf13/cobra"
)

type chartOptions struct {
	recordsPath string
	specPath    string
	chartType   string
	first       string
	second      string
	binMethod   string
	binNumber   int
	metrics     []string
	outputPath  string
}

var chartOpts chartOptions

// chartCmd assembles the data of a single chart.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Assemble the data of one chart from a records file",
	Long: `Read prediction records (JSON array or JSON Lines), build the chart described
either by --spec (a chart spec JSON file) or by the --type/--first/--second/--bin-*
flags, and print the chart data as JSON. Histogram-bearing charts without a bin
method use the configured defaultBinMethod.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChart(cmd.OutOrStdout(), cmd.ErrOrStderr(), getConfig(), chartOpts)
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartOpts.recordsPath, "records", "", "Path to the prediction records file (required)")
	chartCmd.Flags().StringVar(&chartOpts.specPath, "spec", "", "Path to a chart spec JSON file")
	chartCmd.Flags().StringVar(&chartOpts.chartType, "type", "", "Chart type (see 'mlmon list chart-types')")
	chartCmd.Flags().StringVar(&chartOpts.first, "first", "", "First column")
	chartCmd.Flags().StringVar(&chartOpts.second, "second", "", "Second column (scatter charts)")
	chartCmd.Flags().StringVar(&chartOpts.binMethod, "bin-method", "", "Bin method (see 'mlmon list bin-methods')")
	chartCmd.Flags().IntVar(&chartOpts.binNumber, "bin-number", 0, "Number of bins for fixedNumber")
	chartCmd.Flags().StringSliceVar(&chartOpts.metrics, "metric", nil, "Metric to include (repeatable; default all)")
	chartCmd.Flags().StringVarP(&chartOpts.outputPath, "output", "o", "", "Write the chart JSON to this file")
	chartCmd.MarkFlagsMutuallyExclusive("spec", "type")

	rootCmd.AddCommand(chartCmd)
}
