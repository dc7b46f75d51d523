// internal/metrics/regression.go
package metrics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/mlmon/internal/prediction"
)

// NumericPair is a regression observation.
type NumericPair struct {
	Predicted float64 `json:"predicted"`
	Actual    float64 `json:"actual"`
}

// Regression holds error metrics for numeric predictions.
type Regression struct {
	MAE     Float `json:"mae"`
	MSE     Float `json:"mse"`
	RMSE    Float `json:"rmse"`
	R2      Float `json:"r2"`
	MAPE    Float `json:"mape"`
	MSLE    Float `json:"msle"`
	RMSLE   Float `json:"rmsle"`
	MedAE   Float `json:"medae"`
	SMAPE   Float `json:"smape"`
	Samples int   `json:"samples"`
}

// NumericPairs keeps the pairs with ground truth and reads both sides as
// numbers.
func NumericPairs(pairs []prediction.Pair) ([]NumericPair, error) {
	out := make([]NumericPair, 0, len(pairs))
	for i, p := range pairs {
		if p.Actual.IsNull() {
			continue
		}
		pred, ok := p.Predicted.Float()
		if !ok {
			return nil, fmt.Errorf("pair %d prediction %q: %w", i, p.Predicted.Label(), prediction.ErrInvalidColumnKind)
		}
		actual, ok := p.Actual.Float()
		if !ok {
			return nil, fmt.Errorf("pair %d actual %q: %w", i, p.Actual.Label(), prediction.ErrInvalidColumnKind)
		}
		out = append(out, NumericPair{Predicted: pred, Actual: actual})
	}
	return out, nil
}

// ComputeRegression scores numeric pairs. R² is NaN when every actual value is
// identical. MAPE only averages pairs whose actual value is non-zero and is
// NaN when there are none. MSLE and RMSLE are NaN when any value is ≤ -1.
// With no pairs every metric is NaN.
func ComputeRegression(pairs []NumericPair) Regression {
	n := len(pairs)
	if n == 0 {
		return Regression{
			MAE: NaN(), MSE: NaN(), RMSE: NaN(), R2: NaN(), MAPE: NaN(),
			MSLE: NaN(), RMSLE: NaN(), MedAE: NaN(), SMAPE: NaN(),
		}
	}

	actuals := make([]float64, n)
	absErrors := make([]float64, n)
	sqErrors := make([]float64, n)
	smapeTerms := make([]float64, n)
	var pctErrors []float64
	var sqLogErrors []float64
	logDefined := true

	for i, p := range pairs {
		diff := p.Predicted - p.Actual
		actuals[i] = p.Actual
		absErrors[i] = math.Abs(diff)
		sqErrors[i] = diff * diff

		if p.Actual != 0 {
			pctErrors = append(pctErrors, math.Abs(diff)/math.Abs(p.Actual))
		}

		if denom := (math.Abs(p.Actual) + math.Abs(p.Predicted)) / 2; denom != 0 {
			smapeTerms[i] = math.Abs(diff) / denom
		}

		if p.Actual <= -1 || p.Predicted <= -1 {
			logDefined = false
		} else if logDefined {
			d := math.Log1p(p.Actual) - math.Log1p(p.Predicted)
			sqLogErrors = append(sqLogErrors, d*d)
		}
	}

	ssRes := floats.Sum(sqErrors)
	mse := ssRes / float64(n)
	meanActual := stat.Mean(actuals, nil)
	var ssTot float64
	for _, a := range actuals {
		ssTot += (a - meanActual) * (a - meanActual)
	}

	r := Regression{
		MAE:     Float(stat.Mean(absErrors, nil)),
		MSE:     Float(mse),
		RMSE:    Float(math.Sqrt(mse)),
		R2:      NaN(),
		MAPE:    NaN(),
		MSLE:    NaN(),
		RMSLE:   NaN(),
		MedAE:   Float(median(absErrors)),
		SMAPE:   Float(stat.Mean(smapeTerms, nil)),
		Samples: n,
	}
	if ssTot != 0 {
		r.R2 = Float(1 - ssRes/ssTot)
	}
	if len(pctErrors) > 0 {
		r.MAPE = Float(stat.Mean(pctErrors, nil))
	}
	if logDefined {
		msle := stat.Mean(sqLogErrors, nil)
		r.MSLE = Float(msle)
		r.RMSLE = Float(math.Sqrt(msle))
	}
	return r
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
