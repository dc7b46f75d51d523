// internal/metrics/float.go
package metrics

import (
	"encoding/json"
	"math"
)

// Float is a metric value. NaN marks an undefined result (for example R² when
// every actual value is identical) and is written to JSON as null.
type Float float64

// NaN is the undefined metric value.
func NaN() Float { return Float(math.NaN()) }

// Defined reports whether f holds a finite value.
func (f Float) Defined() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Defined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// UnmarshalJSON reads null back as NaN.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NaN()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func safeRatio(num, den float64) Float {
	if den == 0 {
		return NaN()
	}
	return Float(num / den)
}
