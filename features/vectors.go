package features

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// standardize builds the z-score feature matrix: one row per record, each
// column scaled to zero mean and unit variance using the table's own
// statistics. A constant column maps to all zeros rather than dividing by a
// zero standard deviation.
func standardize(t *Table) [][]float64 {
	n := t.Len()
	cols := len(t.featureCols)

	vectors := make([][]float64, n)
	for i := range vectors {
		vectors[i] = make([]float64, cols)
	}

	column := make([]float64, n)
	for j := 0; j < cols; j++ {
		for i := 0; i < n; i++ {
			column[i] = t.records[i].Features[j]
		}

		mean := stat.Mean(column, nil)
		std := stat.StdDev(column, nil)
		if n < 2 || std < 1e-12 || math.IsNaN(std) {
			continue // column stays all zeros
		}

		for i := 0; i < n; i++ {
			vectors[i][j] = (column[i] - mean) / std
		}
	}

	return vectors
}
