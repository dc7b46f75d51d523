// internal/confusion/matrix.go
// Package confusion aggregates (predicted, actual) pairs into a class-by-class
// count matrix.
package confusion

import "github.com/mwiater/mlmon/internal/prediction"

// Matrix counts label agreement. Rows are actual classes and columns are
// predicted classes: Counts[Index[actual]][Index[predicted]].
type Matrix struct {
	Classes []string       `json:"classes"`
	Counts  [][]int        `json:"matrix"`
	Index   map[string]int `json:"class_index"`
}

// Build aggregates pairs, skipping those without ground truth. Classes are
// indexed in first-seen order, reading each pair's predicted label before its
// actual label, and every label seen on either side gets a row and a column.
// The order interleaves the two sides pair by pair; it is not the union of all
// actual labels followed by all predicted labels, so a class that is only
// ever predicted can precede actual-only classes that appear in later pairs.
func Build(pairs []prediction.Pair) Matrix {
	m := Matrix{Index: make(map[string]int)}

	type cell struct{ row, col int }
	cells := make([]cell, 0, len(pairs))
	for _, p := range pairs {
		if p.Actual.IsNull() {
			continue
		}
		col := m.indexOf(p.Predicted.Label())
		row := m.indexOf(p.Actual.Label())
		cells = append(cells, cell{row: row, col: col})
	}

	m.Counts = make([][]int, len(m.Classes))
	for i := range m.Counts {
		m.Counts[i] = make([]int, len(m.Classes))
	}
	for _, c := range cells {
		m.Counts[c.row][c.col]++
	}
	return m
}

func (m *Matrix) indexOf(label string) int {
	if idx, ok := m.Index[label]; ok {
		return idx
	}
	idx := len(m.Classes)
	m.Index[label] = idx
	m.Classes = append(m.Classes, label)
	return idx
}

// Size is the number of classes.
func (m Matrix) Size() int { return len(m.Classes) }

// Total is the number of aggregated pairs.
func (m Matrix) Total() int {
	total := 0
	for _, row := range m.Counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// Correct is the trace of the matrix.
func (m Matrix) Correct() int {
	correct := 0
	for i := range m.Counts {
		correct += m.Counts[i][i]
	}
	return correct
}

// RowSum is the number of pairs whose actual class is i.
func (m Matrix) RowSum(i int) int {
	sum := 0
	for _, c := range m.Counts[i] {
		sum += c
	}
	return sum
}

// ColSum is the number of pairs whose predicted class is j.
func (m Matrix) ColSum(j int) int {
	sum := 0
	for _, row := range m.Counts {
		sum += row[j]
	}
	return sum
}

// Cells returns [predicted index, actual index, count] for every cell, row by
// row. Heatmap renderers plot x=predicted, y=actual.
func (m Matrix) Cells() [][3]int {
	out := make([][3]int, 0, len(m.Classes)*len(m.Classes))
	for row, counts := range m.Counts {
		for col, c := range counts {
			out = append(out, [3]int{col, row, c})
		}
	}
	return out
}
