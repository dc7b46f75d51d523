// internal/binning/histogram.go
// Package binning computes equal-width histograms under the classic
// bin-count rules.
package binning

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptySeries is returned when a histogram is requested for no values.
	ErrEmptySeries = errors.New("histogram requires a non-empty series")
	// ErrNonFiniteValue is returned when the series holds NaN or ±Inf.
	ErrNonFiniteValue = errors.New("histogram series contains a non-finite value")
	// ErrUnknownRule is returned for a bin rule outside Rules.
	ErrUnknownRule = errors.New("unknown bin rule")
	// ErrTooManyBins is returned when a fixed bin count exceeds MaxBins.
	ErrTooManyBins = errors.New("too many bins")
	// ErrRangeOverflow is returned when max-min of the series does not fit
	// in a float64.
	ErrRangeOverflow = errors.New("histogram range overflows float64")
)

// MaxBins bounds the number of bins of a single histogram. Rules that derive
// the count from the data are capped at it.
const MaxBins = 10000

// Bin is one histogram bucket. Every bin is half-open [Lower, Upper) except
// the last one, which also holds Upper.
type Bin struct {
	Lower  float64 `json:"lower_bound"`
	Upper  float64 `json:"upper_bound"`
	Center float64 `json:"center"`
	Count  int     `json:"count"`
	Label  string  `json:"label"`
}

// Histogram is an ascending, gap-free run of bins covering [Min, Max].
type Histogram struct {
	Rule  Rule    `json:"rule"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Width float64 `json:"width"`
	Total int     `json:"total"`
	Bins  []Bin   `json:"bins"`
}

// ComputeHistogram bins series under rule. The series need not be sorted and
// is not modified. An empty series is a caller error. When every value is
// identical the result is one zero-width bin holding all of them.
func ComputeHistogram(series []float64, rule Rule, fixedCount int) (Histogram, error) {
	if len(series) == 0 {
		return Histogram{}, ErrEmptySeries
	}
	sorted := slices.Clone(series)
	for i, v := range sorted {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Histogram{}, fmt.Errorf("index %d: %w", i, ErrNonFiniteValue)
		}
	}
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if math.IsInf(hi-lo, 0) {
		return Histogram{}, fmt.Errorf("%w: [%g, %g]", ErrRangeOverflow, lo, hi)
	}
	hist := Histogram{Rule: rule, Min: lo, Max: hi, Total: len(sorted)}

	if lo == hi {
		if _, err := BinCount(sorted, rule, fixedCount); err != nil {
			return Histogram{}, err
		}
		hist.Bins = []Bin{{
			Lower:  lo,
			Upper:  hi,
			Center: lo,
			Count:  len(sorted),
			Label:  binLabel(lo, hi, true),
		}}
		return hist, nil
	}

	k, err := BinCount(sorted, rule, fixedCount)
	if err != nil {
		return Histogram{}, err
	}

	hist.Width = (hi - lo) / float64(k)
	hist.Bins = buildBins(lo, hi, hist.Width, k)
	countInto(hist.Bins, sorted)
	return hist, nil
}

// buildBins lays out k contiguous bins. Each upper edge is the next bin's
// lower edge and the last upper edge is exactly hi.
func buildBins(lo, hi, width float64, k int) []Bin {
	edges := make([]float64, k+1)
	for i := 0; i < k; i++ {
		edges[i] = lo + float64(i)*width
	}
	edges[k] = hi

	bins := make([]Bin, k)
	for i := range bins {
		last := i == k-1
		bins[i] = Bin{
			Lower:  edges[i],
			Upper:  edges[i+1],
			Center: edges[i] + (edges[i+1]-edges[i])/2,
			Label:  binLabel(edges[i], edges[i+1], last),
		}
	}
	return bins
}

// countInto walks an ascending series once, advancing the current bin while
// the value has reached the next bin's lower edge.
func countInto(bins []Bin, sorted []float64) {
	b := 0
	last := len(bins) - 1
	for _, v := range sorted {
		for b < last && v >= bins[b+1].Lower {
			b++
		}
		bins[b].Count++
	}
}

// Counts returns the per-bin counts in bin order.
func (h Histogram) Counts() []int {
	out := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = b.Count
	}
	return out
}

// Tuples returns [start, end, center, count] per bin, the row shape
// histogram renderers consume.
func (h Histogram) Tuples() [][4]float64 {
	out := make([][4]float64, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = [4]float64{b.Lower, b.Upper, b.Center, float64(b.Count)}
	}
	return out
}

func binLabel(lower, upper float64, closed bool) string {
	end := ")"
	if closed {
		end = "]"
	}
	return "[" + formatBound(lower) + ", " + formatBound(upper) + end
}

// formatBound rounds to two decimals and keeps at least one fractional digit.
func formatBound(v float64) string {
	rounded := math.Round(v*100) / 100
	if math.IsInf(rounded, 0) {
		rounded = v
	}
	if rounded == 0 {
		rounded = 0 // no "-0.0"
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
