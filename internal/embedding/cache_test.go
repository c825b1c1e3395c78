package embedding

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutAndGet(t *testing.T) {
	cache := NewCache()
	vec := Vector{1, 2, 3}

	cache.Put("fp1", vec, time.Hour)

	got, ok := cache.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, vec, got)
}

func TestCache_MissingFingerprint(t *testing.T) {
	cache := NewCache()
	_, ok := cache.Get("absent")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryBehavesAsAbsent(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	cache := NewCacheWithClock(func() time.Time { return clock() })

	cache.Put("fp1", Vector{1}, time.Hour)

	// Advance past the TTL; the entry must be gone and purged.
	now = now.Add(2 * time.Hour)
	_, ok := cache.Get("fp1")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_NonPositiveTTLIgnored(t *testing.T) {
	cache := NewCache()
	cache.Put("fp1", Vector{1}, 0)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache()
	cache.Put("fp1", Vector{1}, time.Hour)
	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Put("shared", Vector{1, 2}, time.Hour)
		}()
		go func() {
			defer wg.Done()
			cache.Get("shared")
		}()
	}
	wg.Wait()

	got, ok := cache.Get("shared")
	require.True(t, ok)
	assert.Equal(t, Vector{1, 2}, got)
}
