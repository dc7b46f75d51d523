// internal/charts/chart.go
// Package charts binds prediction records to chart specifications and
// produces the data series each monitoring chart renders.
package charts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/prediction"
)

// Chart is one validated chart request. Each chart type has its own
// implementation carrying only the fields it reads.
type Chart interface {
	Type() Type
	Assemble(records []prediction.Record) (Result, error)
}

// Histogram bins one numeric column.
type Histogram struct {
	Column string
	Rule   binning.Rule
	Bins   int
}

// CountPlot counts the distinct values of one column.
type CountPlot struct {
	Column string
}

// Scatter plots one column against another, colored by the prediction.
type Scatter struct {
	X string
	Y string
}

// ScatterWithHistograms is a scatter plot with a marginal histogram per axis.
type ScatterWithHistograms struct {
	X    string
	Y    string
	Rule binning.Rule
	Bins int
}

// Timeseries plots one column against the prediction date.
type Timeseries struct {
	Column string
}

// ClassificationMetrics is a bar chart of classification metrics.
type ClassificationMetrics struct {
	Metrics []string
}

// RegressionMetrics is a bar chart of regression metrics.
type RegressionMetrics struct {
	Metrics []string
}

// ConfusionMatrix is a heatmap of predicted against actual classes.
type ConfusionMatrix struct{}

func (Histogram) Type() Type             { return TypeHistogram }
func (CountPlot) Type() Type             { return TypeCountPlot }
func (Scatter) Type() Type               { return TypeScatter }
func (ScatterWithHistograms) Type() Type { return TypeScatterWithHistograms }
func (Timeseries) Type() Type            { return TypeTimeseries }
func (ClassificationMetrics) Type() Type { return TypeClassificationMetrics }
func (RegressionMetrics) Type() Type     { return TypeRegressionMetrics }
func (ConfusionMatrix) Type() Type       { return TypeConfusionMatrix }

// New validates s and returns the chart it describes.
func New(s Spec) (Chart, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch s.ChartType {
	case TypeHistogram:
		if err := requireColumn(s.ChartType, "first_column", s.FirstColumn); err != nil {
			return nil, err
		}
		rule, bins, err := binSettings(s)
		if err != nil {
			return nil, err
		}
		return Histogram{Column: s.FirstColumn, Rule: rule, Bins: bins}, nil

	case TypeCountPlot:
		if err := requireColumn(s.ChartType, "first_column", s.FirstColumn); err != nil {
			return nil, err
		}
		return CountPlot{Column: s.FirstColumn}, nil

	case TypeScatter:
		if err := requireAxes(s); err != nil {
			return nil, err
		}
		return Scatter{X: s.FirstColumn, Y: s.SecondColumn}, nil

	case TypeScatterWithHistograms:
		if err := requireAxes(s); err != nil {
			return nil, err
		}
		rule, bins, err := binSettings(s)
		if err != nil {
			return nil, err
		}
		return ScatterWithHistograms{X: s.FirstColumn, Y: s.SecondColumn, Rule: rule, Bins: bins}, nil

	case TypeTimeseries:
		if err := requireColumn(s.ChartType, "first_column", s.FirstColumn); err != nil {
			return nil, err
		}
		return Timeseries{Column: s.FirstColumn}, nil

	case TypeClassificationMetrics:
		keys, err := metricKeys(s.Metrics, metrics.ClassificationKeys)
		if err != nil {
			return nil, err
		}
		return ClassificationMetrics{Metrics: keys}, nil

	case TypeRegressionMetrics:
		keys, err := metricKeys(s.Metrics, metrics.RegressionKeys)
		if err != nil {
			return nil, err
		}
		return RegressionMetrics{Metrics: keys}, nil

	case TypeConfusionMatrix:
		return ConfusionMatrix{}, nil
	}
	return nil, fmt.Errorf("%w: unsupported chart_type %q", ErrInvalidSpec, s.ChartType)
}

// Assemble builds the chart described by s from records.
func Assemble(s Spec, records []prediction.Record) (Result, error) {
	chart, err := New(s)
	if err != nil {
		return Result{}, err
	}
	return chart.Assemble(records)
}

func requireAxes(s Spec) error {
	if err := requireColumn(s.ChartType, "first_column", s.FirstColumn); err != nil {
		return err
	}
	return requireColumn(s.ChartType, "second_column", s.SecondColumn)
}

// metricKeys normalizes requested metric names and rejects unknown ones. An
// empty request keeps every metric.
func metricKeys(requested, known []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(requested))
	for _, k := range requested {
		normalized := strings.ToLower(strings.TrimSpace(k))
		if !slices.Contains(known, normalized) {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidSpec, metrics.ErrUnknownMetric, k)
		}
		keys = append(keys, normalized)
	}
	return keys, nil
}

// source applies the ground-truth filter when any of columns reads actual.
func source(records []prediction.Record, columns ...string) []prediction.Record {
	if slices.Contains(columns, prediction.ColumnActual) {
		return prediction.WithActual(records)
	}
	return records
}
