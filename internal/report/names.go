// internal/report/names.go
package report

import (
	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/metrics"
)

var chartTypeNames = map[charts.Type]string{
	charts.TypeHistogram:             "Histogram",
	charts.TypeTimeseries:            "Timeseries",
	charts.TypeClassificationMetrics: "Classification metrics",
	charts.TypeRegressionMetrics:     "Regression metrics",
	charts.TypeCountPlot:             "Countplot",
	charts.TypeScatter:               "Scatter",
	charts.TypeScatterWithHistograms: "Scatter with histograms",
	charts.TypeConfusionMatrix:       "Confusion matrix",
}

var binMethodNames = map[binning.Rule]string{
	binning.SquareRoot:       "Square root rule",
	binning.Scott:            "Scott rule",
	binning.FreedmanDiaconis: "Freedman-Diaconis rule",
	binning.Sturges:          "Sturges rule",
	binning.FixedNumber:      "Fixed number of bins",
}

var metricNames = map[string]string{
	metrics.KeyMCC:       "MCC (Matthews Correlation Coefficient)",
	metrics.KeyAccuracy:  "Accuracy",
	metrics.KeyF1:        "F1 Score",
	metrics.KeyPrecision: "Precision",
	metrics.KeyRecall:    "Recall",
	metrics.KeyR2:        "R2",
	metrics.KeyMAE:       "MAE",
	metrics.KeyMSE:       "MSE",
	metrics.KeyRMSE:      "RMSE",
	metrics.KeyMAPE:      "MAPE",
	metrics.KeyRMSLE:     "RMSLE",
	metrics.KeyMSLE:      "MSLE",
	metrics.KeyMedAE:     "MedianAE",
	metrics.KeySMAPE:     "SMAPE",
}

// ChartTypeName returns the display name of t, or t itself when unknown.
func ChartTypeName(t charts.Type) string {
	if name, ok := chartTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// BinMethodName returns the display name of r, or r itself when unknown.
func BinMethodName(r binning.Rule) string {
	if name, ok := binMethodNames[r]; ok {
		return name
	}
	return string(r)
}

// MetricName returns the display name of a metric key, or the key itself.
func MetricName(key string) string {
	if name, ok := metricNames[key]; ok {
		return name
	}
	return key
}
