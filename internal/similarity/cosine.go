// Package similarity scores embedding vectors against a reference vector.
package similarity

import (
	"math"

	"github.com/jonathan/talent-match/internal/embedding"
)

// Cosine returns the cosine similarity of two vectors in [-1, 1]. A zero-norm
// vector models "no information" and yields 0 rather than dividing by zero.
// Vectors of different lengths are compared over their shared prefix.
func Cosine(a, b embedding.Vector) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against floating drift outside the mathematical range.
	return math.Max(-1, math.Min(1, cos))
}

// scoreFromCosine floor-truncates a raw cosine into an integer score in [0, 100].
func scoreFromCosine(cos float64) int {
	score := int(math.Floor(cos * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
