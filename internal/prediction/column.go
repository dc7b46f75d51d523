package prediction

import (
	"errors"
	"fmt"
)

// ErrInvalidColumnKind is returned when a column expected to be numeric holds
// a value that cannot be read as a number.
var ErrInvalidColumnKind = errors.New("column holds non-numeric values")

// Extract projects every record onto the named column. The result has one
// entry per record; missing features and missing ground truth are null.
func Extract(records []Record, key string) []Value {
	values := make([]Value, len(records))
	for i, r := range records {
		values[i] = r.Field(key)
	}
	return values
}

// Numeric converts values to numbers, skipping nulls.
func Numeric(values []Value) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for i, v := range values {
		if v.IsNull() {
			continue
		}
		f, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf("position %d (%s %q): %w", i, v.Kind(), v.Label(), ErrInvalidColumnKind)
		}
		out = append(out, f)
	}
	return out, nil
}

// NumericColumn extracts the named column and converts it to numbers.
func NumericColumn(records []Record, key string) ([]float64, error) {
	values, err := Numeric(Extract(records, key))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", key, err)
	}
	return values, nil
}
