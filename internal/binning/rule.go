// internal/binning/rule.go
package binning

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Rule selects how many bins a histogram gets.
type Rule string

const (
	SquareRoot       Rule = "squareRoot"
	Sturges          Rule = "sturges"
	Scott            Rule = "scott"
	FreedmanDiaconis Rule = "freedmanDiaconis"
	FixedNumber      Rule = "fixedNumber"
)

// Rules lists every supported rule in display order.
var Rules = []Rule{SquareRoot, Sturges, Scott, FreedmanDiaconis, FixedNumber}

// ParseRule maps the chart specification spelling onto a Rule.
func ParseRule(s string) (Rule, error) {
	trimmed := strings.TrimSpace(s)
	for _, r := range Rules {
		if string(r) == trimmed {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// String implements fmt.Stringer.
func (r Rule) String() string { return string(r) }

// BinCount returns the number of bins rule assigns to an ascending, non-empty,
// non-constant series. fixedCount is only read for FixedNumber; values below 1
// give one bin and values above MaxBins are rejected with ErrTooManyBins.
func BinCount(sorted []float64, rule Rule, fixedCount int) (int, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptySeries
	}
	spread := sorted[n-1] - sorted[0]

	switch rule {
	case SquareRoot:
		return min(int(math.Ceil(math.Sqrt(float64(n)))), MaxBins), nil
	case Sturges:
		return sturges(n), nil
	case Scott:
		if spread == 0 || n < 2 {
			return 1, nil
		}
		width := 3.49 * stat.StdDev(sorted, nil) * math.Pow(float64(n), -1.0/3.0)
		return countForWidth(spread, width), nil
	case FreedmanDiaconis:
		iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
		if iqr == 0 {
			return sturges(n), nil
		}
		width := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		return countForWidth(spread, width), nil
	case FixedNumber:
		if fixedCount < 1 {
			return 1, nil
		}
		if fixedCount > MaxBins {
			return 0, fmt.Errorf("%w: %d exceeds %d", ErrTooManyBins, fixedCount, MaxBins)
		}
		return fixedCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, string(rule))
	}
}

func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)) + 1))
}

// countForWidth is ceil(spread/width), kept within [1, MaxBins].
func countForWidth(spread, width float64) int {
	if width <= 0 || math.IsNaN(width) {
		return 1
	}
	k := math.Ceil(spread / width)
	if math.IsNaN(k) || k < 1 {
		return 1
	}
	if k > MaxBins {
		return MaxBins
	}
	return int(k)
}

// Quantile returns the q-quantile of an ascending series, interpolating
// linearly between the two closest ranks at index (n-1)*q.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	index := float64(n-1) * q
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	fraction := index - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}
