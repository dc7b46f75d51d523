// internal/cli/list.go
package mlmon

import (
	"github.com/spf13/cobra"
)

// listCmd groups the 'list' subcommands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing supported values",
	Long:  `The 'list' command groups subcommands that print the chart types, bin methods, metrics and commands mlmon supports.`,
}

// chartTypesCmd implements 'list chart-types'.
var chartTypesCmd = &cobra.Command{
	Use:   "chart-types",
	Short: "List the supported chart types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListChartTypes(cmd.OutOrStdout())
	},
}

// binMethodsCmd implements 'list bin-methods'.
var binMethodsCmd = &cobra.Command{
	Use:   "bin-methods",
	Short: "List the histogram bin methods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListBinMethods(cmd.OutOrStdout())
	},
}

// metricsListCmd implements 'list metrics'.
var metricsListCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the classification and regression metrics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListMetrics(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(chartTypesCmd)
	listCmd.AddCommand(binMethodsCmd)
	listCmd.AddCommand(metricsListCmd)
	rootCmd.AddCommand(listCmd)
}
