package mlmon

import (
	"fmt"
	"io"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/confusion"
	"github.com/mwiater/mlmon/internal/metrics"
	"github.com/mwiater/mlmon/internal/prediction"
	"github.com/mwiater/mlmon/internal/report"
)

// classificationReport is the JSON written by 'metrics classification'.
type classificationReport struct {
	metrics.Classification
	PerClass  []metrics.ClassStats `json:"per_class"`
	Confusion confusion.Matrix     `json:"confusion_matrix"`
}

func runClassification(out io.Writer, cfg appconfig.Config, recordsPath, outputPath string) error {
	records, err := loadRecords(recordsPath)
	if err != nil {
		return err
	}
	pairs := prediction.Pairs(records)
	m := confusion.Build(pairs)
	rep := classificationReport{
		Classification: metrics.ComputeClassification(pairs),
		PerClass:       metrics.PerClass(m),
		Confusion:      m,
	}

	bars, err := rep.Select(nil)
	if err != nil {
		return fmt.Errorf("classification metrics: %w", err)
	}

	return emit(out, cfg, outputPath, rep, func(w io.Writer) {
		fmt.Fprintf(w, "Classification (%d samples, %d classes)\n", rep.Samples, rep.Classes)
		report.MetricsTable(w, bars)
		fmt.Fprintln(w)
		report.ConfusionTable(w, m.Classes, m.Counts)
	})
}

func runRegression(out io.Writer, cfg appconfig.Config, recordsPath, outputPath string) error {
	records, err := loadRecords(recordsPath)
	if err != nil {
		return err
	}
	pairs, err := metrics.NumericPairs(prediction.Pairs(records))
	if err != nil {
		return fmt.Errorf("regression metrics: %w", err)
	}
	rep := metrics.ComputeRegression(pairs)

	bars, err := rep.Select(nil)
	if err != nil {
		return fmt.Errorf("regression metrics: %w", err)
	}

	return emit(out, cfg, outputPath, rep, func(w io.Writer) {
		fmt.Fprintf(w, "Regression (%d samples)\n", rep.Samples)
		report.MetricsTable(w, bars)
	})
}
