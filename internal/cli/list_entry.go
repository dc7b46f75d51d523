package mlmon

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/report"
)

func runListChartTypes(out io.Writer) {
	keys := make([]string, len(charts.Types))
	for i, t := range charts.Types {
		keys[i] = string(t)
	}
	fmt.Fprintln(out, "Chart types:")
	writeKeyNames(out, keys, func(k string) string { return report.ChartTypeName(charts.Type(k)) })
}

func runListBinMethods(out io.Writer) {
	keys := make([]string, len(binning.Rules))
	for i, r := range binning.Rules {
		keys[i] = string(r)
	}
	fmt.Fprintln(out, "Bin methods:")
	writeKeyNames(out, keys, func(k string) string { return report.BinMethodName(binning.Rule(k)) })
}

func runListMetrics(out io.Writer) {
	fmt.Fprintln(out, "Classification metrics:")
	writeKeyNames(out, metrics.ClassificationKeys, report.MetricName)
	fmt.Fprintln(out, "Regression metrics:")
	writeKeyNames(out, metrics.RegressionKeys, report.MetricName)
}

// writeKeyNames prints key and display name in two aligned columns.
func writeKeyNames(out io.Writer, keys []string, name func(string) string) {
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(out, "  %s%s%s\n", k, strings.Repeat(" ", width-len(k)+2), name(k))
	}
}
