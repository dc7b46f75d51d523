// internal/cli/metrics.go
package mlmon

import (
	"github.com/spf13/cobra"
)

var (
	metricsRecordsPath string
	metricsOutputPath  string
)

// metricsCmd groups the model scoring subcommands.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Score the model against ground truth",
	Long:  `The 'metrics' command computes classification or regression metrics over the records that carry an actual value.`,
}

// classificationCmd implements 'metrics classification'.
var classificationCmd = &cobra.Command{
	Use:   "classification",
	Short: "Accuracy, macro precision/recall/F1, MCC and per-class counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassification(cmd.OutOrStdout(), getConfig(), metricsRecordsPath, metricsOutputPath)
	},
}

// regressionCmd implements 'metrics regression'.
var regressionCmd = &cobra.Command{
	Use:   "regression",
	Short: "R², MAE, MSE, RMSE, MAPE, MedAE, MSLE, RMSLE and SMAPE",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegression(cmd.OutOrStdout(), getConfig(), metricsRecordsPath, metricsOutputPath)
	},
}

func init() {
	metricsCmd.PersistentFlags().StringVar(&metricsRecordsPath, "records", "", "Path to the prediction records file (required)")
	metricsCmd.PersistentFlags().StringVarP(&metricsOutputPath, "output", "o", "", "Write the metrics JSON to this file")

	metricsCmd.AddCommand(classificationCmd)
	metricsCmd.AddCommand(regressionCmd)
	rootCmd.AddCommand(metricsCmd)
}
