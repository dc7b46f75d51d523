package binning

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestFixedNumberOnHundredValues(t *testing.T) {
	hist, err := ComputeHistogram(sequence(100), FixedNumber, 5)
	require.NoError(t, err)
	require.Len(t, hist.Bins, 5)

	assert.InDelta(t, 19.8, hist.Width, 1e-9)
	for i, b := range hist.Bins {
		assert.InDelta(t, 19.8, b.Upper-b.Lower, 1e-9, "bin %d width", i)
		assert.Equal(t, 20, b.Count, "bin %d count", i)
	}
	last := hist.Bins[4]
	assert.Equal(t, 99.0, last.Upper)
	assert.Equal(t, "[79.2, 99.0]", last.Label)
	assert.Equal(t, "[0.0, 19.8)", hist.Bins[0].Label)
}

func TestBinCountRules(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		rule   Rule
		fixed  int
		want   int
	}{
		{name: "square root n=10", series: sequence(10), rule: SquareRoot, want: 4},
		{name: "square root n=100", series: sequence(100), rule: SquareRoot, want: 10},
		{name: "sturges n=8", series: sequence(8), rule: Sturges, want: 4},
		{name: "sturges n=10", series: sequence(10), rule: Sturges, want: 5},
		{name: "scott n=100", series: sequence(100), rule: Scott, want: 5},
		{name: "freedman diaconis n=100", series: sequence(100), rule: FreedmanDiaconis, want: 5},
		{name: "freedman diaconis zero iqr falls back to sturges", series: []float64{1, 1, 1, 1, 1, 1, 1, 5}, rule: FreedmanDiaconis, want: 4},
		{name: "fixed", series: sequence(10), rule: FixedNumber, fixed: 3, want: 3},
		{name: "fixed clamps to one", series: sequence(10), rule: FixedNumber, fixed: 0, want: 1},
		{name: "fixed clamps negative", series: sequence(10), rule: FixedNumber, fixed: -4, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BinCount(tt.series, tt.rule, tt.fixed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			hist, err := ComputeHistogram(tt.series, tt.rule, tt.fixed)
			require.NoError(t, err)
			assert.Len(t, hist.Bins, tt.want)
		})
	}
}

func TestBinsCoverRangeWithoutGaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	series := map[string][]float64{
		"uniform":  randomSeries(250, func() float64 { return rng.Float64() * 40 }),
		"normal":   randomSeries(500, func() float64 { return rng.NormFloat64()*3 + 10 }),
		"skewed":   randomSeries(120, func() float64 { return math.Exp(rng.Float64() * 4) }),
		"negative": randomSeries(33, func() float64 { return -rng.Float64() * 1000 }),
		"two":      {3, -3},
	}

	for name, values := range series {
		for _, rule := range Rules {
			hist, err := ComputeHistogram(values, rule, 7)
			require.NoError(t, err, "%s/%s", name, rule)

			lo, hi := minMax(values)
			require.NotEmpty(t, hist.Bins)
			assert.Equal(t, lo, hist.Bins[0].Lower, "%s/%s min", name, rule)
			assert.Equal(t, hi, hist.Bins[len(hist.Bins)-1].Upper, "%s/%s max", name, rule)

			total := 0
			for i, b := range hist.Bins {
				total += b.Count
				if i > 0 {
					assert.Equal(t, hist.Bins[i-1].Upper, b.Lower, "%s/%s gap before bin %d", name, rule, i)
				}
				assert.LessOrEqual(t, b.Lower, b.Upper)
			}
			assert.Equal(t, len(values), total, "%s/%s total", name, rule)
			assert.Equal(t, len(values), hist.Total)
		}
	}
}

func TestSquareRootCountMatchesFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 300; n += 7 {
		values := randomSeries(n, rng.Float64)
		values[0], values[1] = -1, 2 // keep the range non-zero
		hist, err := ComputeHistogram(values, SquareRoot, 0)
		require.NoError(t, err)
		assert.Equal(t, int(math.Ceil(math.Sqrt(float64(n)))), len(hist.Bins), "n=%d", n)
	}
}

func TestConstantSeriesYieldsSingleZeroWidthBin(t *testing.T) {
	for _, rule := range Rules {
		hist, err := ComputeHistogram([]float64{4.2, 4.2, 4.2}, rule, 5)
		require.NoError(t, err)
		require.Len(t, hist.Bins, 1, "rule %s", rule)
		assert.Equal(t, 3, hist.Bins[0].Count)
		assert.Equal(t, 4.2, hist.Bins[0].Lower)
		assert.Equal(t, 4.2, hist.Bins[0].Upper)
		assert.Zero(t, hist.Width)
	}

	hist, err := ComputeHistogram([]float64{9}, Scott, 0)
	require.NoError(t, err)
	require.Len(t, hist.Bins, 1)
	assert.Equal(t, 1, hist.Bins[0].Count)
}

func TestMaximumLandsInLastBinAndEdgesAreHalfOpen(t *testing.T) {
	hist, err := ComputeHistogram([]float64{0, 2, 4, 6, 8}, FixedNumber, 4)
	require.NoError(t, err)
	// edges 0,2,4,6,8: 2 goes right of the first edge, 8 stays in the last bin
	assert.Equal(t, []int{1, 1, 1, 2}, hist.Counts())
	assert.Equal(t, "[6.0, 8.0]", hist.Bins[3].Label)
	assert.Equal(t, "[2.0, 4.0)", hist.Bins[1].Label)
}

func TestInputIsNotReordered(t *testing.T) {
	values := []float64{5, 1, 3}
	_, err := ComputeHistogram(values, SquareRoot, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 3}, values)
}

func TestPreconditionErrors(t *testing.T) {
	_, err := ComputeHistogram(nil, SquareRoot, 0)
	require.ErrorIs(t, err, ErrEmptySeries)

	_, err = ComputeHistogram([]float64{1, math.NaN()}, Sturges, 0)
	require.ErrorIs(t, err, ErrNonFiniteValue)

	_, err = ComputeHistogram([]float64{1, math.Inf(1)}, Sturges, 0)
	require.ErrorIs(t, err, ErrNonFiniteValue)

	_, err = ComputeHistogram([]float64{1, 2}, Rule("doane"), 0)
	require.ErrorIs(t, err, ErrUnknownRule)

	_, err = ComputeHistogram([]float64{2, 2}, Rule("doane"), 0)
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestOversizedFixedCountIsRejected(t *testing.T) {
	_, err := ComputeHistogram([]float64{1, 2, 3}, FixedNumber, 9000000000000000000)
	require.ErrorIs(t, err, ErrTooManyBins)

	_, err = ComputeHistogram([]float64{4, 4}, FixedNumber, MaxBins+1)
	require.ErrorIs(t, err, ErrTooManyBins)

	hist, err := ComputeHistogram(sequence(10), FixedNumber, MaxBins)
	require.NoError(t, err)
	assert.Len(t, hist.Bins, MaxBins)
}

func TestDerivedCountIsCapped(t *testing.T) {
	series := make([]float64, 0, 1001)
	for i := range 1000 {
		series = append(series, float64(i)*1e-3)
	}
	series = append(series, 1e9)

	k, err := BinCount(series, FreedmanDiaconis, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxBins, k)
}

func TestRangeOverflow(t *testing.T) {
	_, err := ComputeHistogram([]float64{-1e308, 0, 1e308}, SquareRoot, 0)
	require.ErrorIs(t, err, ErrRangeOverflow)
}

func TestExtremeFiniteRangeStaysFinite(t *testing.T) {
	hist, err := ComputeHistogram([]float64{0, 1.7e308}, SquareRoot, 0)
	require.NoError(t, err)
	require.Len(t, hist.Bins, 2)

	assert.Equal(t, 0.0, hist.Bins[0].Lower)
	assert.Equal(t, hist.Bins[0].Upper, hist.Bins[1].Lower)
	assert.Equal(t, 1.7e308, hist.Bins[1].Upper)
	for i, b := range hist.Bins {
		assert.False(t, math.IsInf(b.Center, 0) || math.IsNaN(b.Center), "bin %d center %v", i, b.Center)
	}
	_, err = json.Marshal(hist)
	require.NoError(t, err)
}

func TestParseRule(t *testing.T) {
	for _, rule := range Rules {
		got, err := ParseRule(string(rule))
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}
	_, err := ParseRule("rice")
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestQuantileInterpolates(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, Quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 3.25, Quantile(sorted, 0.75), 1e-12)
	assert.Equal(t, 1.0, Quantile(sorted, 0))
	assert.Equal(t, 4.0, Quantile(sorted, 1))
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestTuples(t *testing.T) {
	hist, err := ComputeHistogram([]float64{0, 1, 2, 3}, FixedNumber, 2)
	require.NoError(t, err)
	assert.Equal(t, [][4]float64{{0, 1.5, 0.75, 2}, {1.5, 3, 2.25, 2}}, hist.Tuples())
}

func randomSeries(n int, next func() float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = next()
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
