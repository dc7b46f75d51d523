// internal/cli/daily.go
package mlmon

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/report"
)

var (
	dailyRecordsPath string
	dailyOutputPath  string
)

// dailyCmd implements 'daily', the predictions-per-day series.
var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Count predictions per UTC day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaily(cmd.OutOrStdout(), getConfig(), dailyRecordsPath, dailyOutputPath)
	},
}

func init() {
	dailyCmd.Flags().StringVar(&dailyRecordsPath, "records", "", "Path to the prediction records file (required)")
	dailyCmd.Flags().StringVarP(&dailyOutputPath, "output", "o", "", "Write the daily counts JSON to this file")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(out io.Writer, cfg appconfig.Config, recordsPath, outputPath string) error {
	records, err := loadRecords(recordsPath)
	if err != nil {
		return err
	}
	days := charts.PredictionsPerDay(records)
	return emit(out, cfg, outputPath, days, func(w io.Writer) {
		report.Daily(w, days)
	})
}
