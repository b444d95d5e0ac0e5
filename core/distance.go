package core

import "math"

// CosineSimilarity calculates cosine similarity between two vectors.
// Returns similarity score (higher = more similar).
//
// Malformed input is coerced to a neutral score: nil vectors, mismatched
// lengths, and zero-norm vectors all yield 0 so that a missing or broken
// embedding ranks as unrelated instead of feeding NaN into the sort.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
