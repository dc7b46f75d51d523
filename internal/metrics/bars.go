package metrics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned when a metrics chart names a metric that the
// engine does not compute.
var ErrUnknownMetric = errors.New("unknown metric")

// Classification metric keys, as used in chart specifications.
const (
	KeyAccuracy  = "accuracy"
	KeyPrecision = "precision"
	KeyRecall    = "recall"
	KeyF1        = "f1score"
	KeyMCC       = "mcc"
)

// Regression metric keys, as used in chart specifications.
const (
	KeyMAE   = "mae"
	KeyMSE   = "mse"
	KeyRMSE  = "rmse"
	KeyR2    = "r2"
	KeyMAPE  = "mape"
	KeyMSLE  = "msle"
	KeyRMSLE = "rmsle"
	KeyMedAE = "medae"
	KeySMAPE = "smape"
)

// ClassificationKeys lists classification metrics in canonical order.
var ClassificationKeys = []string{KeyAccuracy, KeyPrecision, KeyRecall, KeyF1, KeyMCC}

// RegressionKeys lists regression metrics in canonical order.
var RegressionKeys = []string{KeyR2, KeyMAE, KeyMSE, KeyRMSE, KeyMAPE, KeyMedAE, KeyMSLE, KeyRMSLE, KeySMAPE}

// Bar is one single-value series of a metrics bar chart.
type Bar struct {
	Key   string `json:"key"`
	Value Float  `json:"value"`
}

// Lookup returns the named classification metric.
func (c Classification) Lookup(key string) (Float, bool) {
	switch key {
	case KeyAccuracy:
		return c.Accuracy, true
	case KeyPrecision:
		return c.Precision, true
	case KeyRecall:
		return c.Recall, true
	case KeyF1:
		return c.F1, true
	case KeyMCC:
		return c.MCC, true
	}
	return 0, false
}

// Lookup returns the named regression metric.
func (r Regression) Lookup(key string) (Float, bool) {
	switch key {
	case KeyMAE:
		return r.MAE, true
	case KeyMSE:
		return r.MSE, true
	case KeyRMSE:
		return r.RMSE, true
	case KeyR2:
		return r.R2, true
	case KeyMAPE:
		return r.MAPE, true
	case KeyMSLE:
		return r.MSLE, true
	case KeyRMSLE:
		return r.RMSLE, true
	case KeyMedAE:
		return r.MedAE, true
	case KeySMAPE:
		return r.SMAPE, true
	}
	return 0, false
}

// Select returns one bar per requested key, in request order. No keys selects
// every classification metric.
func (c Classification) Select(keys []string) ([]Bar, error) {
	return selectBars(keys, ClassificationKeys, c.Lookup)
}

// Select returns one bar per requested key, in request order. No keys selects
// every regression metric.
func (r Regression) Select(keys []string) ([]Bar, error) {
	return selectBars(keys, RegressionKeys, r.Lookup)
}

func selectBars(keys, all []string, lookup func(string) (Float, bool)) ([]Bar, error) {
	if len(keys) == 0 {
		keys = all
	}
	bars := make([]Bar, 0, len(keys))
	for _, key := range keys {
		normalized := strings.ToLower(strings.TrimSpace(key))
		v, ok := lookup(normalized)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
		}
		bars = append(bars, Bar{Key: normalized, Value: v})
	}
	return bars, nil
}
