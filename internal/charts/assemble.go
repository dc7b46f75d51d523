// internal/charts/assemble.go
package charts

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/confusion"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/prediction"
)

// Assemble implements Chart.
func (c Histogram) Assemble(records []prediction.Record) (Result, error) {
	data, err := histogramData(source(records, c.Column), c.Column, c.Rule, c.Bins)
	if err != nil {
		return Result{}, err
	}
	return Result{ChartType: TypeHistogram, Histogram: &data}, nil
}

// Assemble implements Chart.
func (c CountPlot) Assemble(records []prediction.Record) (Result, error) {
	data := CountData{Column: c.Column, Categories: []string{}, Counts: []int{}}
	index := make(map[string]int)
	for _, v := range prediction.Extract(source(records, c.Column), c.Column) {
		if v.IsNull() {
			continue
		}
		key := v.Label()
		i, ok := index[key]
		if !ok {
			i = len(data.Categories)
			index[key] = i
			data.Categories = append(data.Categories, key)
			data.Counts = append(data.Counts, 0)
		}
		data.Counts[i]++
	}
	return Result{ChartType: TypeCountPlot, CountPlot: &data}, nil
}

// Assemble implements Chart.
func (c Scatter) Assemble(records []prediction.Record) (Result, error) {
	data, err := scatterData(source(records, c.X, c.Y), c.X, c.Y)
	if err != nil {
		return Result{}, err
	}
	return Result{ChartType: TypeScatter, Scatter: &data}, nil
}

// Assemble implements Chart.
func (c ScatterWithHistograms) Assemble(records []prediction.Record) (Result, error) {
	rows := source(records, c.X, c.Y)
	scatter, err := scatterData(rows, c.X, c.Y)
	if err != nil {
		return Result{}, err
	}
	xh, err := histogramData(rows, c.X, c.Rule, c.Bins)
	if err != nil {
		return Result{}, err
	}
	yh, err := histogramData(rows, c.Y, c.Rule, c.Bins)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ChartType: TypeScatterWithHistograms,
		ScatterWithHistograms: &ScatterHistogramsData{
			ScatterData: scatter,
			XHistogram:  xh,
			YHistogram:  yh,
		},
	}, nil
}

// Assemble implements Chart. Records without a prediction date or with a
// null value are left out.
func (c Timeseries) Assemble(records []prediction.Record) (Result, error) {
	data := TimeseriesData{Column: c.Column, Points: []TimePoint{}}
	for _, r := range source(records, c.Column) {
		v := r.Field(c.Column)
		if v.IsNull() || r.PredictionDate.IsZero() {
			continue
		}
		data.Points = append(data.Points, TimePoint{At: r.PredictionDate, Value: v})
	}
	slices.SortStableFunc(data.Points, func(a, b TimePoint) int {
		return a.At.Compare(b.At)
	})
	return Result{ChartType: TypeTimeseries, Timeseries: &data}, nil
}

// Assemble implements Chart.
func (c ClassificationMetrics) Assemble(records []prediction.Record) (Result, error) {
	scores := metrics.ComputeClassification(prediction.Pairs(prediction.WithActual(records)))
	bars, err := scores.Select(c.Metrics)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ChartType: TypeClassificationMetrics,
		Metrics:   &MetricsData{Samples: scores.Samples, Bars: bars},
	}, nil
}

// Assemble implements Chart.
func (c RegressionMetrics) Assemble(records []prediction.Record) (Result, error) {
	pairs, err := metrics.NumericPairs(prediction.Pairs(prediction.WithActual(records)))
	if err != nil {
		return Result{}, err
	}
	scores := metrics.ComputeRegression(pairs)
	bars, err := scores.Select(c.Metrics)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ChartType: TypeRegressionMetrics,
		Metrics:   &MetricsData{Samples: scores.Samples, Bars: bars},
	}, nil
}

// Assemble implements Chart.
func (ConfusionMatrix) Assemble(records []prediction.Record) (Result, error) {
	m := confusion.Build(prediction.Pairs(prediction.WithActual(records)))
	return Result{
		ChartType: TypeConfusionMatrix,
		Confusion: &ConfusionData{Matrix: m, Cells: m.Cells()},
	}, nil
}

// histogramData bins one column of rows. A column without a single usable
// value gives an empty histogram instead of reaching the binning engine.
func histogramData(rows []prediction.Record, column string, rule binning.Rule, bins int) (HistogramData, error) {
	data := HistogramData{Column: column, Rule: rule, Data: [][4]float64{}}
	values, err := prediction.NumericColumn(rows, column)
	if err != nil {
		return HistogramData{}, err
	}
	if len(values) == 0 {
		return data, nil
	}
	hist, err := binning.ComputeHistogram(values, rule, bins)
	if err != nil {
		return HistogramData{}, fmt.Errorf("column %q: %w", column, err)
	}
	data.Histogram = &hist
	data.Data = hist.Tuples()
	return data, nil
}

// scatterData pairs two numeric columns. Rows missing either value are
// skipped.
func scatterData(rows []prediction.Record, x, y string) (ScatterData, error) {
	data := ScatterData{XColumn: x, YColumn: y, Points: []ScatterPoint{}}
	for i, r := range rows {
		xv, yv := r.Field(x), r.Field(y)
		if xv.IsNull() || yv.IsNull() {
			continue
		}
		xf, ok := xv.Float()
		if !ok {
			return ScatterData{}, fmt.Errorf("column %q: row %d (%s %q): %w", x, i, xv.Kind(), xv.Label(), prediction.ErrInvalidColumnKind)
		}
		yf, ok := yv.Float()
		if !ok {
			return ScatterData{}, fmt.Errorf("column %q: row %d (%s %q): %w", y, i, yv.Kind(), yv.Label(), prediction.ErrInvalidColumnKind)
		}
		data.Points = append(data.Points, ScatterPoint{X: xf, Y: yf, Prediction: r.Prediction})
	}
	slices.SortStableFunc(data.Points, func(a, b ScatterPoint) int {
		return cmp.Compare(a.X, b.X)
	})
	return data, nil
}
