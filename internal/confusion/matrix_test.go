package confusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/mlmon/internal/prediction"
)

func pair(predicted, actual prediction.Value) prediction.Pair {
	return prediction.Pair{Predicted: predicted, Actual: actual}
}

func str(s string) prediction.Value { return prediction.String(s) }

func TestBuildFirstSeenOrder(t *testing.T) {
	pairs := []prediction.Pair{
		pair(str("dog"), str("cat")),
		pair(str("cat"), str("cat")),
		pair(str("bird"), str("dog")),
		pair(str("dog"), str("dog")),
	}
	m := Build(pairs)

	assert.Equal(t, []string{"dog", "cat", "bird"}, m.Classes)
	assert.Equal(t, map[string]int{"dog": 0, "cat": 1, "bird": 2}, m.Index)
	// rows = actual, cols = predicted
	assert.Equal(t, [][]int{
		{1, 0, 1}, // actual dog
		{1, 1, 0}, // actual cat
		{0, 0, 0}, // actual bird (predicted only)
	}, m.Counts)
	assert.Equal(t, 4, m.Total())
	assert.Equal(t, 2, m.Correct())
	assert.Equal(t, 0, m.RowSum(2))
	assert.Equal(t, 1, m.ColSum(2))
}

func TestBuildInterleavesSidesPairByPair(t *testing.T) {
	pairs := []prediction.Pair{
		pair(str("fox"), str("cat")),
		pair(str("cat"), str("owl")),
	}
	m := Build(pairs)

	// An actuals-first union would give cat, owl, fox.
	assert.Equal(t, []string{"fox", "cat", "owl"}, m.Classes)
	assert.Equal(t, 0, m.RowSum(m.Index["fox"]), "fox is never an actual label")
}

func TestBuildSkipsMissingActual(t *testing.T) {
	pairs := []prediction.Pair{
		pair(prediction.Number(1), prediction.Number(1)),
		pair(prediction.Number(7), prediction.Null()),
		pair(prediction.Number(0), prediction.Number(1)),
	}
	m := Build(pairs)

	assert.Equal(t, []string{"1", "0"}, m.Classes, "label of a skipped pair is not registered")
	assert.Equal(t, 2, m.Total())
}

func TestBuildTotalMatchesPairsWithActual(t *testing.T) {
	var pairs []prediction.Pair
	withActual := 0
	for i := 0; i < 60; i++ {
		actual := prediction.Number(float64(i % 4))
		if i%5 == 0 {
			actual = prediction.Null()
		} else {
			withActual++
		}
		pairs = append(pairs, pair(prediction.Number(float64((i*7)%3)), actual))
	}
	m := Build(pairs)
	assert.Equal(t, withActual, m.Total())
	require.Equal(t, m.Size(), len(m.Counts))
	for _, row := range m.Counts {
		assert.Len(t, row, m.Size())
	}
}

func TestBuildUnionWithOneSidedLabels(t *testing.T) {
	base := []prediction.Pair{
		pair(str("a"), str("a")),
		pair(str("b"), str("a")),
	}
	extended := append(append([]prediction.Pair{}, base...),
		pair(str("ghost"), str("b")),   // predicted-only label
		pair(str("a"), str("shadow")), // actual-only label
	)

	m := Build(extended)
	require.Contains(t, m.Index, "ghost")
	require.Contains(t, m.Index, "shadow")
	assert.Equal(t, 0, m.RowSum(m.Index["ghost"]))
	assert.Equal(t, 0, m.ColSum(m.Index["shadow"]))
	assert.Equal(t, len(extended), m.Total())

	// the base counts are untouched by the injected labels
	small := Build(base)
	for _, actual := range small.Classes {
		for _, predicted := range small.Classes {
			assert.Equal(t,
				small.Counts[small.Index[actual]][small.Index[predicted]],
				m.Counts[m.Index[actual]][m.Index[predicted]],
			)
		}
	}
}

func TestNumericLabelsShareKeys(t *testing.T) {
	m := Build([]prediction.Pair{
		pair(prediction.Number(1), prediction.String("1")),
		pair(prediction.String("1.0"), prediction.Number(1)),
	})
	assert.Equal(t, []string{"1"}, m.Classes)
	assert.Equal(t, [][]int{{2}}, m.Counts)
}

func TestEmptyAndCells(t *testing.T) {
	m := Build(nil)
	assert.Empty(t, m.Classes)
	assert.Zero(t, m.Total())
	assert.Empty(t, m.Cells())

	m = Build([]prediction.Pair{pair(str("x"), str("y"))})
	assert.Equal(t, [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 1}, {1, 1, 0}}, m.Cells())
}
