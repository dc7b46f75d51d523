// internal/cli/charts.go
package mlmon

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/logging"
	"github.com/mwiater/mlmon/internal/report"
)

var (
	chartsRecordsPath string
	chartsSpecsPath   string
	chartsOutputPath  string
)

// chartsCmd assembles a batch of charts over one records snapshot.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Assemble every chart of a spec list from one records file",
	Long: `Read a JSON array of chart specs and a records file, assemble every chart
concurrently and print a JSON array of results in the order of the specs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCharts(cmd.Context(), cmd.OutOrStdout(), getConfig(), chartsRecordsPath, chartsSpecsPath, chartsOutputPath)
	},
}

func init() {
	chartsCmd.Flags().StringVar(&chartsRecordsPath, "records", "", "Path to the prediction records file (required)")
	chartsCmd.Flags().StringVar(&chartsSpecsPath, "specs", "", "Path to a JSON array of chart specs (required)")
	chartsCmd.Flags().StringVarP(&chartsOutputPath, "output", "o", "", "Write the results JSON to this file")
	_ = chartsCmd.MarkFlagRequired("specs")
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(ctx context.Context, out io.Writer, cfg appconfig.Config, recordsPath, specsPath, outputPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	data, err := os.ReadFile(specsPath)
	if err != nil {
		return fmt.Errorf("unable to read specs file %s: %w", specsPath, err)
	}
	specs, err := charts.ParseSpecs(data)
	if err != nil {
		return fmt.Errorf("%s: %w", specsPath, err)
	}

	records, err := loadRecords(recordsPath)
	if err != nil {
		return err
	}

	results, err := charts.AssembleAll(ctx, specs, records)
	if err != nil {
		return err
	}
	l := logging.Logger()
	l.Info().Int("charts", len(results)).Msg("charts assembled")

	return emit(out, cfg, outputPath, results, func(w io.Writer) {
		for _, res := range results {
			report.Summary(w, res)
		}
	})
}
