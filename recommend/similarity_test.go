package recommend

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"scaled copy", []float64{1, 2, 3}, []float64{2, 4, 6}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 1}, []float64{-1, -1}, -1.0},
		{"zero vector", []float64{0, 0}, []float64{1, 2}, 0.0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
		{"empty", nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRankBySimilarity(t *testing.T) {
	vectors := [][]float64{
		{1, 0},    // reference
		{1, 0.1},  // close
		{0, 1},    // orthogonal
		{1, 0.01}, // closest
		{-1, 0},   // opposite
	}

	order := rankBySimilarity(vectors, 0)
	want := []int{0, 3, 1, 2, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("rankBySimilarity() = %v, want %v", order, want)
		}
	}
}

func TestRankBySimilarityStableTies(t *testing.T) {
	// Rows 1..3 are colinear with the reference so all tie at similarity
	// 1; row order must be preserved among them.
	vectors := [][]float64{
		{1, 0},
		{2, 0},
		{3, 0},
		{4, 0},
		{0, 5},
	}

	order := rankBySimilarity(vectors, 0)
	want := []int{0, 1, 2, 3, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("rankBySimilarity() = %v, want %v", order, want)
		}
	}
}
