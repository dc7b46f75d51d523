// internal/report/report.go
// Package report renders assembled chart data as terminal summaries.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/metrics"
)

const barWidth = 40

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	undefinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	passMarker = color.New(color.FgGreen).SprintFunc()
	failMarker = color.New(color.FgRed).SprintFunc()
)

// Summary writes a short human-readable view of res.
func Summary(w io.Writer, res charts.Result) {
	fmt.Fprintln(w, titleStyle.Render(ChartTypeName(res.ChartType)))

	switch {
	case res.Histogram != nil:
		writeHistogram(w, *res.Histogram)
	case res.CountPlot != nil:
		writeCounts(w, res.CountPlot.Categories, res.CountPlot.Counts)
	case res.Scatter != nil:
		writeScatter(w, *res.Scatter)
	case res.ScatterWithHistograms != nil:
		writeScatter(w, res.ScatterWithHistograms.ScatterData)
		writeHistogram(w, res.ScatterWithHistograms.XHistogram)
		writeHistogram(w, res.ScatterWithHistograms.YHistogram)
	case res.Timeseries != nil:
		writeTimeseries(w, *res.Timeseries)
	case res.Metrics != nil:
		fmt.Fprintf(w, "  samples: %d\n", res.Metrics.Samples)
		MetricsTable(w, res.Metrics.Bars)
	case res.Confusion != nil:
		ConfusionTable(w, res.Confusion.Matrix.Classes, res.Confusion.Matrix.Counts)
	}
	fmt.Fprintln(w)
}

// Daily writes one bar per prediction day.
func Daily(w io.Writer, days []charts.DayCount) {
	fmt.Fprintln(w, titleStyle.Render("Predictions per day"))
	labels := make([]string, len(days))
	counts := make([]int, len(days))
	for i, d := range days {
		labels[i] = d.Day
		counts[i] = d.Count
	}
	writeCounts(w, labels, counts)
}

// MetricsTable writes one aligned row per metric. Undefined values print as n/a.
func MetricsTable(w io.Writer, bars []metrics.Bar) {
	width := 0
	for _, b := range bars {
		width = max(width, len(MetricName(b.Key)))
	}
	for _, b := range bars {
		name := labelStyle.Render(fmt.Sprintf("%-*s", width, MetricName(b.Key)))
		fmt.Fprintf(w, "  %s  %s\n", name, FormatMetric(b.Value))
	}
}

// FormatMetric prints f with four decimals, or n/a when undefined.
func FormatMetric(f metrics.Float) string {
	if !f.Defined() {
		return undefinedStyle.Render("n/a")
	}
	return valueStyle.Render(fmt.Sprintf("%.4f", float64(f)))
}

// ConfusionTable writes the matrix with actual classes as rows.
func ConfusionTable(w io.Writer, classes []string, counts [][]int) {
	if len(classes) == 0 {
		fmt.Fprintln(w, undefinedStyle.Render("  no pairs with ground truth"))
		return
	}
	width := len("actual\\pred")
	for _, c := range classes {
		width = max(width, len(c))
	}
	for _, row := range counts {
		for _, n := range row {
			width = max(width, len(fmt.Sprint(n)))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s", width, "actual\\pred")
	for _, c := range classes {
		fmt.Fprintf(&b, " %*s", width, c)
	}
	fmt.Fprintln(w, labelStyle.Render(b.String()))
	for i, c := range classes {
		b.Reset()
		fmt.Fprintf(&b, "  %-*s", width, c)
		for _, n := range counts[i] {
			fmt.Fprintf(&b, " %*d", width, n)
		}
		fmt.Fprintln(w, b.String())
	}
}

// Bar scales count against peak into at most width cells. A non-zero count
// always gets at least one cell.
func Bar(count, peak, width int) string {
	if count <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	cells := count * width / peak
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

// Validation prints a PASS or FAIL line for one checked item.
func Validation(w io.Writer, name string, err error) {
	if err == nil {
		fmt.Fprintf(w, "%s %s\n", passMarker("PASS"), name)
		return
	}
	fmt.Fprintf(w, "%s %s: %v\n", failMarker("FAIL"), name, err)
}

// Dump pretty-prints v for debugging.
func Dump(w io.Writer, v any) {
	_, _ = pp.Fprintln(w, v)
}

func writeHistogram(w io.Writer, data charts.HistogramData) {
	fmt.Fprintf(w, "  %s (%s)\n", labelStyle.Render(data.Column), BinMethodName(data.Rule))
	if data.Histogram == nil {
		fmt.Fprintln(w, undefinedStyle.Render("  no values"))
		return
	}
	labels := make([]string, len(data.Histogram.Bins))
	counts := make([]int, len(data.Histogram.Bins))
	for i, bin := range data.Histogram.Bins {
		labels[i] = bin.Label
		counts[i] = bin.Count
	}
	writeCounts(w, labels, counts)
}

func writeCounts(w io.Writer, labels []string, counts []int) {
	width, peak := 0, 0
	for i, l := range labels {
		width = max(width, len(l))
		peak = max(peak, counts[i])
	}
	for i, l := range labels {
		fmt.Fprintf(w, "  %-*s %s %d\n", width, l, barStyle.Render(Bar(counts[i], peak, barWidth)), counts[i])
	}
}

func writeScatter(w io.Writer, data charts.ScatterData) {
	fmt.Fprintf(w, "  %s vs %s: %d points\n", labelStyle.Render(data.XColumn), labelStyle.Render(data.YColumn), len(data.Points))
	if n := len(data.Points); n > 0 {
		fmt.Fprintf(w, "  x range: %g .. %g\n", data.Points[0].X, data.Points[n-1].X)
	}
}

func writeTimeseries(w io.Writer, data charts.TimeseriesData) {
	fmt.Fprintf(w, "  %s: %d points\n", labelStyle.Render(data.Column), len(data.Points))
	if n := len(data.Points); n > 0 {
		fmt.Fprintf(w, "  from %s to %s\n",
			data.Points[0].At.UTC().Format("2006-01-02 15:04:05"),
			data.Points[n-1].At.UTC().Format("2006-01-02 15:04:05"))
	}
}
