// Package embedding resolves free text into fixed-dimension vectors, caching
// results by content fingerprint and degrading to a deterministic local
// generator when the network provider is unavailable.
package embedding

// DefaultDimension is the vector width produced by both providers.
const DefaultDimension = 1536

// Vector is a fixed-dimension embedding. Provider-sourced and
// fallback-synthesized vectors are dimensionally compatible but not
// numerically comparable in distribution; only cosine similarity between them
// is meaningful.
type Vector []float32

// Fit pads with zeros or truncates so the vector has exactly dim components.
func (v Vector) Fit(dim int) Vector {
	if dim <= 0 || len(v) == dim {
		return v
	}
	if len(v) > dim {
		return v[:dim]
	}
	out := make(Vector, dim)
	copy(out, v)
	return out
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
