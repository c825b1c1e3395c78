package embedding

import "context"

// Provider converts already-normalized text into vectors.
// Implementations must return one vector per input, in input order.
type Provider interface {
	// EmbedBatch embeds all texts in a single logical operation.
	EmbedBatch(ctx context.Context, texts []string) ([]Vector, error)
	// Dimension returns the width of produced vectors.
	Dimension() int
}

// NewProvider selects an implementation by configuration at construction
// time: the Gemini-backed network provider when an API key is configured,
// the deterministic local generator otherwise. Absence of a credential is a
// normal configuration state, not an error.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return NewFallbackProvider(cfg.Dimension), nil
	}
	return NewGeminiProvider(ctx, cfg)
}
