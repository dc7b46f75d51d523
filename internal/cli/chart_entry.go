package mlmon

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mwiater/mlmon/internal/appconfig"
	"github.com/mwiater/mlmon/internal/binning"
	"github.com/mwiater/mlmon/internal/charts"
	"github.com/mwiater/mlmon/internal/logging"
	"github.com/mwiater/mlmon/internal/report"
)

// runChart builds one chart and writes it out.
func runChart(out, errOut io.Writer, cfg appconfig.Config, opts chartOptions) error {
	spec, err := chartSpec(cfg, opts)
	if err != nil {
		return err
	}
	if cfg.Debug {
		report.Dump(errOut, spec)
	}

	records, err := loadRecords(opts.recordsPath)
	if err != nil {
		return err
	}

	res, err := charts.Assemble(spec, records)
	if err != nil {
		return fmt.Errorf("assemble %s: %w", spec.ChartType, err)
	}
	l := logging.Logger()
	l.Info().Str("chart_type", string(spec.ChartType)).Msg("chart assembled")

	return emit(out, cfg, opts.outputPath, res, func(w io.Writer) {
		report.Summary(w, res)
	})
}

// chartSpec reads --spec or builds a spec from the individual flags.
func chartSpec(cfg appconfig.Config, opts chartOptions) (charts.Spec, error) {
	if opts.specPath != "" {
		data, err := os.ReadFile(opts.specPath)
		if err != nil {
			return charts.Spec{}, fmt.Errorf("unable to read spec file %s: %w", opts.specPath, err)
		}
		spec, err := charts.ParseSpec(data)
		if err != nil {
			return charts.Spec{}, fmt.Errorf("%s: %w", opts.specPath, err)
		}
		return spec, nil
	}

	if opts.chartType == "" {
		return charts.Spec{}, fmt.Errorf("chart type is required (pass --type or --spec)")
	}
	spec := charts.Spec{
		ChartType:    charts.Type(opts.chartType),
		FirstColumn:  opts.first,
		SecondColumn: opts.second,
		BinMethod:    opts.binMethod,
		BinNumber:    opts.binNumber,
		Metrics:      opts.metrics,
	}
	applyBinDefaults(cfg, &spec)
	if _, err := charts.New(spec); err != nil {
		return charts.Spec{}, err
	}
	return spec, nil
}

// applyBinDefaults fills in the configured bin method and count for
// histogram-bearing charts built from flags.
func applyBinDefaults(cfg appconfig.Config, spec *charts.Spec) {
	if !slices.Contains([]charts.Type{charts.TypeHistogram, charts.TypeScatterWithHistograms}, spec.ChartType) {
		return
	}
	if spec.BinMethod == "" {
		spec.BinMethod = cfg.DefaultBinMethod
	}
	if spec.BinMethod == string(binning.FixedNumber) && spec.BinNumber == 0 {
		spec.BinNumber = cfg.DefaultBinNumber
	}
}
