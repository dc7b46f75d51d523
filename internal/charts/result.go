// internal/charts/result.go
package charts

import (
	"encoding/json"
	"time"

	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/confusion"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/prediction"
)

// Result is the assembled data of one chart. Exactly one payload field is
// set, matching ChartType.
type Result struct {
	ChartType             Type                   `json:"chart_type"`
	Histogram             *HistogramData         `json:"histogram,omitempty"`
	CountPlot             *CountData             `json:"countplot,omitempty"`
	Scatter               *ScatterData           `json:"scatter,omitempty"`
	ScatterWithHistograms *ScatterHistogramsData `json:"scatter_with_histograms,omitempty"`
	Timeseries            *TimeseriesData        `json:"timeseries,omitempty"`
	Metrics               *MetricsData           `json:"metrics,omitempty"`
	Confusion             *ConfusionData         `json:"confusion_matrix,omitempty"`
}

// HistogramData is a binned numeric column. Histogram is nil when the column
// has no usable values; Data then is empty.
type HistogramData struct {
	Column    string             `json:"column"`
	Rule      binning.Rule       `json:"bin_method"`
	Histogram *binning.Histogram `json:"histogram"`
	Data      [][4]float64       `json:"data"`
}

// CountData holds category counts in first-seen order.
type CountData struct {
	Column     string   `json:"column"`
	Categories []string `json:"categories"`
	Counts     []int    `json:"counts"`
}

// ScatterPoint is written as [x, y, prediction].
type ScatterPoint struct {
	X          float64
	Y          float64
	Prediction prediction.Value
}

// MarshalJSON implements json.Marshaler.
func (p ScatterPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{p.X, p.Y, p.Prediction})
}

// ScatterData holds points sorted ascending by X.
type ScatterData struct {
	XColumn string         `json:"x_column"`
	YColumn string         `json:"y_column"`
	Points  []ScatterPoint `json:"data"`
}

// ScatterHistogramsData is a scatter plot plus one histogram per axis. Each
// histogram is binned from its own column.
type ScatterHistogramsData struct {
	ScatterData
	XHistogram HistogramData `json:"x_histogram"`
	YHistogram HistogramData `json:"y_histogram"`
}

// TimePoint is written as [unix milliseconds, value].
type TimePoint struct {
	At    time.Time
	Value prediction.Value
}

// MarshalJSON implements json.Marshaler.
func (p TimePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.At.UnixMilli(), p.Value})
}

// TimeseriesData holds points sorted ascending by time.
type TimeseriesData struct {
	Column string      `json:"column"`
	Points []TimePoint `json:"data"`
}

// MetricsData is one single-value bar per metric.
type MetricsData struct {
	Samples int           `json:"samples"`
	Bars    []metrics.Bar `json:"bars"`
}

// ConfusionData is the matrix and its heatmap cells.
type ConfusionData struct {
	Matrix confusion.Matrix `json:"matrix"`
	Cells  [][3]int         `json:"data"`
}
