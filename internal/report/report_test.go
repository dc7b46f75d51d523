package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/prediction"
)

func TestDisplayNames(t *testing.T) {
	t.Parallel()
	for _, ct := range charts.Types {
		if ChartTypeName(ct) == string(ct) {
			t.Fatalf("missing display name for chart type %q", ct)
		}
	}
	for _, r := range binning.Rules {
		if BinMethodName(r) == string(r) {
			t.Fatalf("missing display name for bin method %q", r)
		}
	}
	for _, k := range append(append([]string{}, metrics.ClassificationKeys...), metrics.RegressionKeys...) {
		if MetricName(k) == k {
			t.Fatalf("missing display name for metric %q", k)
		}
	}
	if got := MetricName("auc"); got != "auc" {
		t.Fatalf("unknown metric should fall back to key, got %q", got)
	}
}

func TestBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		count, peak, width int
		want               int
	}{
		{10, 10, 40, 40},
		{5, 10, 40, 20},
		{1, 1000, 40, 1},
		{0, 10, 40, 0},
		{3, 0, 40, 0},
	}
	for _, tt := range tests {
		got := Bar(tt.count, tt.peak, tt.width)
		if n := strings.Count(got, "█"); n != tt.want {
			t.Fatalf("Bar(%d, %d, %d) has %d cells, want %d", tt.count, tt.peak, tt.width, n, tt.want)
		}
	}
}

func TestFormatMetric(t *testing.T) {
	t.Parallel()
	if got := FormatMetric(metrics.Float(math.NaN())); !strings.Contains(got, "n/a") {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := FormatMetric(0.5); !strings.Contains(got, "0.5000") {
		t.Fatalf("expected 0.5000, got %q", got)
	}
}

func TestSummaryHistogram(t *testing.T) {
	t.Parallel()
	hist, err := binning.ComputeHistogram([]float64{0, 1, 2, 3, 4, 5, 6, 7}, binning.FixedNumber, 2)
	if err != nil {
		t.Fatalf("ComputeHistogram: %v", err)
	}
	res := charts.Result{
		ChartType: charts.TypeHistogram,
		Histogram: &charts.HistogramData{Column: "age", Rule: binning.FixedNumber, Histogram: &hist, Data: hist.Tuples()},
	}

	var buf bytes.Buffer
	Summary(&buf, res)
	out := buf.String()
	for _, want := range []string{"Histogram", "age", "Fixed number of bins", "[0.0, 3.5)", "[3.5, 7.0]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, out)
		}
	}
}

func TestSummaryEmptyHistogram(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Summary(&buf, charts.Result{ChartType: charts.TypeHistogram, Histogram: &charts.HistogramData{Column: "x", Rule: binning.Sturges}})
	if !strings.Contains(buf.String(), "no values") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestSummaryMetricsAndConfusion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Summary(&buf, charts.Result{
		ChartType: charts.TypeRegressionMetrics,
		Metrics: &charts.MetricsData{Samples: 3, Bars: []metrics.Bar{
			{Key: metrics.KeyR2, Value: metrics.NaN()},
			{Key: metrics.KeyMAE, Value: 0.25},
		}},
	})
	out := buf.String()
	for _, want := range []string{"Regression metrics", "samples: 3", "R2", "n/a", "MAE", "0.2500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, out)
		}
	}

	buf.Reset()
	Summary(&buf, charts.Result{
		ChartType: charts.TypeConfusionMatrix,
		Confusion: &charts.ConfusionData{},
	})
	if !strings.Contains(buf.String(), "no pairs with ground truth") {
		t.Fatalf("expected empty matrix notice, got:\n%s", buf.String())
	}
}

func TestConfusionTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ConfusionTable(&buf, []string{"dog", "cat"}, [][]int{{3, 1}, {0, 12}})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "cat") || !strings.HasSuffix(lines[2], "12") {
		t.Fatalf("unexpected cat row: %q", lines[2])
	}
}

func TestSummaryScatterAndTimeseries(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Summary(&buf, charts.Result{
		ChartType: charts.TypeScatter,
		Scatter: &charts.ScatterData{XColumn: "age", YColumn: "fare", Points: []charts.ScatterPoint{
			{X: 1, Y: 2, Prediction: prediction.Number(1)},
			{X: 9, Y: 3, Prediction: prediction.Number(0)},
		}},
	})
	if !strings.Contains(buf.String(), "2 points") || !strings.Contains(buf.String(), "1 .. 9") {
		t.Fatalf("unexpected scatter summary:\n%s", buf.String())
	}

	buf.Reset()
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	Summary(&buf, charts.Result{
		ChartType:  charts.TypeTimeseries,
		Timeseries: &charts.TimeseriesData{Column: "prediction", Points: []charts.TimePoint{{At: at, Value: prediction.Number(1)}}},
	})
	if !strings.Contains(buf.String(), "2024-03-01 08:00:00") {
		t.Fatalf("unexpected timeseries summary:\n%s", buf.String())
	}
}

func TestDaily(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Daily(&buf, []charts.DayCount{{Day: "2024-03-01", Count: 4}, {Day: "2024-03-02", Count: 2}})
	out := buf.String()
	if !strings.Contains(out, "2024-03-01") || !strings.Contains(out, strings.Repeat("█", 20)) {
		t.Fatalf("unexpected daily output:\n%s", out)
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Validation(&buf, "spec.json", nil)
	Validation(&buf, "other.json", errors.New("bin_method is required"))
	out := buf.String()
	if !strings.Contains(out, "PASS") || !strings.Contains(out, "spec.json") {
		t.Fatalf("expected pass line, got:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "bin_method is required") {
		t.Fatalf("expected fail line, got:\n%s", out)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Dump(&buf, charts.Spec{ChartType: charts.TypeHistogram, FirstColumn: "age"})
	if !strings.Contains(buf.String(), "age") {
		t.Fatalf("expected dumped field, got:\n%s", buf.String())
	}
}
