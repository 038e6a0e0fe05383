package recommend

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity computes the cosine of the angle between two vectors,
// in [-1, 1]. A zero vector has no direction and scores 0 against anything.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	dot := floats.Dot(a, b)
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (normA * normB)
}

// rankBySimilarity orders all row indices by descending cosine similarity to
// the reference row. The sort is stable so equal scores keep original row
// order.
func rankBySimilarity(vectors [][]float64, row int) []int {
	ref := vectors[row]

	scores := make([]float64, len(vectors))
	for i, vec := range vectors {
		scores[i] = CosineSimilarity(ref, vec)
	}

	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	return order
}
