package breeds

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoteumpet/service-adoption/internal/domain/breed"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sampleBreeds(name string) []breed.Breed {
	return []breed.Breed{{Name: name, Origin: "Alemanha", EnergyLevel: 4, Temperament: "leal"}}
}

func TestCacheHitWithinTTL(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(time.Hour, clock)

	cache.Set("dog_all", sampleBreeds("German Shepherd"))

	clock.Advance(59 * time.Minute)
	got, hit := cache.Get("dog_all")
	require.True(t, hit)
	assert.Equal(t, "German Shepherd", got[0].Name)
}

func TestCacheMissAfterTTL(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(time.Hour, clock)

	cache.Set("dog_all", sampleBreeds("German Shepherd"))

	// Expiry is inclusive: exactly at the TTL the entry is gone.
	clock.Advance(time.Hour)
	_, hit := cache.Get("dog_all")
	assert.False(t, hit)
	assert.Zero(t, cache.Len(), "expired entry is evicted on read")
}

func TestCacheMissUnknownKey(t *testing.T) {
	cache := NewCache(time.Hour, newFakeClock())

	_, hit := cache.Get("cat_all")
	assert.False(t, hit)
}

func TestCacheSetReplacesEntry(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(time.Hour, clock)

	cache.Set("dog_all", sampleBreeds("Old"))
	clock.Advance(50 * time.Minute)
	cache.Set("dog_all", sampleBreeds("New"))

	// The replacement restarts the TTL from the second write.
	clock.Advance(50 * time.Minute)
	got, hit := cache.Get("dog_all")
	require.True(t, hit)
	assert.Equal(t, "New", got[0].Name)
}

func TestCacheSweepRemovesExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(time.Hour, clock)

	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("dog_query%d", i), sampleBreeds("Beagle"))
	}
	require.Equal(t, 100, cache.Len())

	// All 100 entries expire; the write that pushes the size past the
	// threshold sweeps them out.
	clock.Advance(2 * time.Hour)
	cache.Set("dog_all", sampleBreeds("Beagle"))
	assert.Equal(t, 1, cache.Len())

	_, hit := cache.Get("dog_all")
	assert.True(t, hit)
}

func TestCacheBelowThresholdKeepsExpiredEntriesUntilRead(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(time.Hour, clock)

	cache.Set("dog_all", sampleBreeds("Beagle"))
	clock.Advance(2 * time.Hour)
	cache.Set("cat_all", sampleBreeds("Siamese"))

	// No sweep below the threshold; the expired entry lingers until read.
	assert.Equal(t, 2, cache.Len())
	_, hit := cache.Get("dog_all")
	assert.False(t, hit)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheNilClockDefaultsToSystemClock(t *testing.T) {
	cache := NewCache(time.Hour, nil)

	cache.Set("dog_all", sampleBreeds("Beagle"))
	_, hit := cache.Get("dog_all")
	assert.True(t, hit)
}
