package embedding

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/talent-match/internal/textnorm"
)

// TextKind tags a text with its cache lifetime.
type TextKind string

// Text kinds recognized by the service.
const (
	// KindProfile is long-lived skill-profile text (24h cache TTL).
	KindProfile TextKind = "profile"
	// KindSession is ephemeral parse-session text (1h cache TTL).
	KindSession TextKind = "session"
)

// Service resolves raw texts into vectors: normalize, consult the cache by
// fingerprint, batch the misses to the provider, and fall back to the local
// generator when the provider fails. Downstream ranking degrades gracefully
// rather than failing hard, so provider failures never surface as errors.
type Service struct {
	cache    *Cache
	store    Store // optional persistent tier, may be nil
	provider Provider
	fallback *FallbackProvider
	cfg      Config
	logf     func(format string, args ...any)
}

// NewService wires a cache and provider together. A nil cache gets a fresh
// in-memory one; store may be nil when no persistent tier is configured.
func NewService(cache *Cache, store Store, provider Provider, cfg Config) *Service {
	cfg = cfg.withDefaults()
	if cache == nil {
		cache = NewCache()
	}
	return &Service{
		cache:    cache,
		store:    store,
		provider: provider,
		fallback: NewFallbackProvider(cfg.Dimension),
		cfg:      cfg,
		logf:     log.Printf,
	}
}

// SetLogf replaces the degradation logger. Intended for tests.
func (s *Service) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		s.logf = logf
	}
}

// Cache exposes the in-memory tier, mainly so callers can Clear it in tests.
func (s *Service) Cache() *Cache { return s.cache }

// Dimension returns the vector width this service produces.
func (s *Service) Dimension() int { return s.cfg.Dimension }

// EmbedBatch returns one vector per input text, in input order. kinds may be
// nil (every text is treated as KindProfile) or must match texts in length;
// a mismatch is caller misuse and the only error this method returns.
func (s *Service) EmbedBatch(ctx context.Context, texts []string, kinds []TextKind) ([]Vector, error) {
	if kinds != nil && len(kinds) != len(texts) {
		return nil, fmt.Errorf("kinds length %d does not match texts length %d", len(kinds), len(texts))
	}
	if len(texts) == 0 {
		return nil, nil
	}

	normalized := make([]string, len(texts))
	fingerprints := make([]string, len(texts))
	for i, text := range texts {
		normalized[i] = textnorm.Normalize(text)
		fingerprints[i] = textnorm.Fingerprint(normalized[i])
	}

	// Partition into cache hits and misses.
	results := make([]Vector, len(texts))
	var missIdx []int
	for i, fp := range fingerprints {
		if vec, ok := s.cache.Get(fp); ok {
			results[i] = vec
			continue
		}
		if vec, ok := s.storeGet(ctx, fp); ok {
			results[i] = vec
			s.cache.Put(fp, vec, s.ttlFor(kindAt(kinds, i)))
			continue
		}
		missIdx = append(missIdx, i)
	}
	if len(missIdx) == 0 {
		return results, nil
	}

	missTexts := make([]string, len(missIdx))
	for j, i := range missIdx {
		missTexts[j] = normalized[i]
	}

	vectors, err := s.provider.EmbedBatch(ctx, missTexts)
	if err != nil || len(vectors) != len(missTexts) {
		if err != nil {
			s.logf("embedding provider failed, using local fallback for %d texts: %v", len(missTexts), err)
		} else {
			s.logf("embedding provider returned %d vectors for %d texts, using local fallback", len(vectors), len(missTexts))
		}
		vectors, _ = s.fallback.EmbedBatch(ctx, missTexts)
	}

	for j, i := range missIdx {
		vec := vectors[j].Fit(s.cfg.Dimension)
		results[i] = vec
		ttl := s.ttlFor(kindAt(kinds, i))
		s.cache.Put(fingerprints[i], vec, ttl)
		s.storePut(ctx, fingerprints[i], vec, ttl)
	}

	return results, nil
}

// EmbedOne is a convenience wrapper around EmbedBatch for a single text.
func (s *Service) EmbedOne(ctx context.Context, text string, kind TextKind) (Vector, error) {
	vectors, err := s.EmbedBatch(ctx, []string{text}, []TextKind{kind})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (s *Service) ttlFor(kind TextKind) time.Duration {
	if kind == KindSession {
		return s.cfg.SessionTTL
	}
	return s.cfg.ProfileTTL
}

func (s *Service) storeGet(ctx context.Context, fingerprint string) (Vector, bool) {
	if s.store == nil {
		return nil, false
	}
	vec, ok, err := s.store.Get(ctx, fingerprint)
	if err != nil {
		s.logf("embedding store lookup failed for %s: %v", fingerprint[:8], err)
		return nil, false
	}
	return vec, ok
}

func (s *Service) storePut(ctx context.Context, fingerprint string, vec Vector, ttl time.Duration) {
	if s.store == nil {
		return
	}
	if err := s.store.Put(ctx, fingerprint, vec, ttl); err != nil {
		s.logf("embedding store write failed for %s: %v", fingerprint[:8], err)
	}
}

func kindAt(kinds []TextKind, i int) TextKind {
	if kinds == nil {
		return KindProfile
	}
	return kinds[i]
}
