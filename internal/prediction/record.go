// internal/prediction/record.go
// Package prediction holds the prediction record model shared by the
// monitoring engine and the column extractor that projects records into
// flat value sequences.
package prediction

import "time"

// Column keys with special meaning. Any other key names an input feature.
const (
	ColumnPrediction = "prediction"
	ColumnActual     = "actual"
)

// Record is a single observation sent by a monitored model.
type Record struct {
	ID             string           `json:"id"`
	Prediction     Value            `json:"prediction"`
	Actual         Value            `json:"actual"`
	PredictionDate time.Time        `json:"prediction_date"`
	InputData      map[string]Value `json:"input_data"`
}

// HasActual reports whether ground truth is available for r.
func (r Record) HasActual() bool { return !r.Actual.IsNull() }

// Field returns the value of the named column for r.
func (r Record) Field(key string) Value {
	switch key {
	case ColumnPrediction:
		return r.Prediction
	case ColumnActual:
		return r.Actual
	default:
		v, ok := r.InputData[key]
		if !ok {
			return Null()
		}
		return v
	}
}

// Pair couples a model output with its ground truth.
type Pair struct {
	Predicted Value `json:"predicted"`
	Actual    Value `json:"actual"`
}

// WithActual returns the records that carry ground truth, in their original order.
func WithActual(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.HasActual() {
			out = append(out, r)
		}
	}
	return out
}

// Pairs builds (predicted, actual) pairs for the records that carry ground truth.
func Pairs(records []Record) []Pair {
	pairs := make([]Pair, 0, len(records))
	for _, r := range records {
		if !r.HasActual() {
			continue
		}
		pairs = append(pairs, Pair{Predicted: r.Prediction, Actual: r.Actual})
	}
	return pairs
}
