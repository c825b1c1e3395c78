package embedding

import (
	"sync"
	"time"
)

// Cache is a content-addressed store mapping text fingerprints to previously
// computed vectors. Entries expire after their TTL and are purged lazily on
// lookup; expired entries behave as absent. Safe for concurrent use from
// multiple in-flight scoring requests.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	vector    Vector
	expiresAt time.Time
}

// NewCache creates an empty cache using the wall clock.
func NewCache() *Cache {
	return NewCacheWithClock(time.Now)
}

// NewCacheWithClock creates a cache with an injected clock for tests.
func NewCacheWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

// Get returns the cached vector for a fingerprint. An expired entry is
// deleted and reported as absent, so post-expiry reads never see stale data.
func (c *Cache) Get(fingerprint string) (Vector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[fingerprint]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, fingerprint)
		return nil, false
	}
	return entry.vector, true
}

// Put stores a vector under a fingerprint with the given TTL. A non-positive
// TTL is ignored; such an entry would be born expired.
func (c *Cache) Put(fingerprint string, vector Vector, ttl time.Duration) {
	if fingerprint == "" || ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = cacheEntry{
		vector:    vector,
		expiresAt: c.now().Add(ttl),
	}
}

// Len returns the number of stored entries, including any not yet purged.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries. Intended for test isolation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
