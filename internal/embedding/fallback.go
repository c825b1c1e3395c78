package embedding

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/talent-match/internal/textnorm"
)

// keywordBuckets are small token groups counted while synthesizing a local
// vector. The bucket order is fixed; each bucket contributes one component.
var keywordBuckets = []struct {
	name   string
	tokens []string
}{
	{"development", []string{"development", "developer", "programming", "coding", "software", "engineering", "engineer"}},
	{"frontend", []string{"frontend", "react", "vue", "angular", "css", "html", "javascript", "typescript", "ui", "ux"}},
	{"backend", []string{"backend", "server", "api", "database", "sql", "microservices", "go", "java", "python"}},
	{"infrastructure", []string{"cloud", "aws", "azure", "kubernetes", "docker", "devops", "infrastructure", "terraform"}},
	{"data", []string{"data", "analytics", "ml", "machine", "learning", "ai", "statistics", "pipeline"}},
	{"seniority", []string{"senior", "lead", "principal", "staff", "architect", "junior", "intern", "head"}},
	{"collaboration", []string{"team", "teamwork", "communication", "leadership", "mentoring", "agile", "scrum", "stakeholder"}},
}

// fingerprintComponents is how many pseudo-random components are derived from
// the fingerprint so texts that miss every bucket still get distinct vectors.
const fingerprintComponents = 8

// FallbackProvider synthesizes vectors locally without any external call.
// The output is pure and deterministic: the same normalized text always
// yields the same vector, which keeps cache keys stable during provider
// outages and makes tests reproducible.
type FallbackProvider struct {
	dimension int
}

// NewFallbackProvider creates a local provider producing vectors of the given
// dimension (DefaultDimension when non-positive).
func NewFallbackProvider(dimension int) *FallbackProvider {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &FallbackProvider{dimension: dimension}
}

// Dimension returns the width of produced vectors.
func (p *FallbackProvider) Dimension() int { return p.dimension }

// EmbedBatch synthesizes one vector per input text, in order. It never fails.
func (p *FallbackProvider) EmbedBatch(_ context.Context, texts []string) ([]Vector, error) {
	vectors := make([]Vector, len(texts))
	for i, text := range texts {
		vectors[i] = p.embed(text)
	}
	return vectors, nil
}

func (p *FallbackProvider) embed(normalized string) Vector {
	vec := make(Vector, p.dimension)

	tokens := strings.Fields(stripPunctuation(normalized))
	if len(tokens) > 0 {
		counts := make([]int, len(keywordBuckets))
		other := 0
		for _, tok := range tokens {
			matched := false
			for b, bucket := range keywordBuckets {
				for _, kw := range bucket.tokens {
					if tok == kw {
						counts[b]++
						matched = true
						break
					}
				}
				if matched {
					break
				}
			}
			if !matched {
				other++
			}
		}

		total := float32(len(tokens))
		for b, count := range counts {
			if b < p.dimension {
				vec[b] = float32(count) / total
			}
		}
		if len(keywordBuckets) < p.dimension {
			vec[len(keywordBuckets)] = float32(other) / total
		}
	}

	// Perturb with components sliced from the fingerprint so two texts that
	// miss every bucket still receive visibly different vectors.
	fp := textnorm.Fingerprint(normalized)
	offset := len(keywordBuckets) + 1
	for i := 0; i < fingerprintComponents; i++ {
		start := i * 4
		if start+4 > len(fp) || offset+i >= p.dimension {
			break
		}
		group, err := strconv.ParseUint(fp[start:start+4], 16, 32)
		if err != nil {
			continue
		}
		vec[offset+i] = float32(group) / 65535.0 * 0.25
	}

	return vec
}

func stripPunctuation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
