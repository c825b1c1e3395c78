package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is an optional persistent tier under the in-memory cache, so
// provider-sourced vectors survive process restarts. Implementations follow
// the same contract as the cache: expired entries behave as absent.
type Store interface {
	Get(ctx context.Context, fingerprint string) (Vector, bool, error)
	Put(ctx context.Context, fingerprint string, vector Vector, ttl time.Duration) error
}

// PGStore keeps vectors in PostgreSQL, keyed by content hash with a lazy
// expiry check on read.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPGStore establishes a connection pool and ensures the cache table exists.
func ConnectPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PGStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PGStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS embedding_cache (
			content_hash TEXT PRIMARY KEY,
			embedding    REAL[] NOT NULL,
			expires_at   TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create embedding_cache table: %w", err)
	}
	return nil
}

// Get returns the stored vector for a fingerprint if it has not expired.
func (s *PGStore) Get(ctx context.Context, fingerprint string) (Vector, bool, error) {
	var values []float32
	err := s.pool.QueryRow(ctx,
		`SELECT embedding FROM embedding_cache
		 WHERE content_hash = $1 AND expires_at > NOW()`,
		fingerprint,
	).Scan(&values)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read embedding cache: %w", err)
	}
	return Vector(values), true, nil
}

// Put upserts a vector with its expiry. Re-writing an existing fingerprint
// refreshes the TTL; writes from discarded requests are still valid to keep.
func (s *PGStore) Put(ctx context.Context, fingerprint string, vector Vector, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO embedding_cache (content_hash, embedding, expires_at)
		 VALUES ($1, $2, NOW() + $3)
		 ON CONFLICT (content_hash) DO UPDATE SET embedding = $2, expires_at = NOW() + $3`,
		fingerprint, []float32(vector), ttl,
	)
	if err != nil {
		return fmt.Errorf("failed to write embedding cache: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ Store = (*PGStore)(nil)
