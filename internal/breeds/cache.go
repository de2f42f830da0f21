package breeds

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/adoteumpet/service-adoption/internal/domain/breed"
)

// DefaultTTL is how long a cache entry stays valid after its write.
const DefaultTTL = time.Hour

// sweepThreshold is the entry count above which a write triggers an
// opportunistic sweep of expired entries. This is not a strict bound: the
// cache may hold more than this many live entries.
const sweepThreshold = 100

// Clock abstracts wall time so TTL behavior can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type cacheEntry struct {
	breeds   []breed.Breed
	storedAt time.Time
}

// Cache is a TTL-keyed cache of normalized breed lists. Expiry is checked
// lazily on read; there is no background sweeper. Concurrent readers of an
// expired key may both miss and both trigger an upstream fetch — each write
// is a full key replacement, so the race only costs a redundant fetch.
type Cache struct {
	entries *xsync.MapOf[string, cacheEntry]
	ttl     time.Duration
	clock   Clock
}

// NewCache creates a breed cache with the given TTL. A nil clock falls back
// to the system clock.
func NewCache(ttl time.Duration, clock Clock) *Cache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache{
		entries: xsync.NewMapOf[string, cacheEntry](),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the live entry for key, evicting it first if it has expired.
func (c *Cache) Get(key string) ([]breed.Breed, bool) {
	entry, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	if c.expired(entry) {
		c.entries.Delete(key)
		return nil, false
	}
	return entry.breeds, true
}

// Set stores breeds under key with the current timestamp, replacing any
// prior entry. When the cache grows past the sweep threshold, every expired
// entry is removed.
func (c *Cache) Set(key string, breeds []breed.Breed) {
	c.entries.Store(key, cacheEntry{breeds: breeds, storedAt: c.clock.Now()})

	if c.entries.Size() > sweepThreshold {
		c.entries.Range(func(k string, entry cacheEntry) bool {
			if c.expired(entry) {
				c.entries.Delete(k)
			}
			return true
		})
	}
}

// Len returns the current entry count, expired entries included.
func (c *Cache) Len() int { return c.entries.Size() }

func (c *Cache) expired(entry cacheEntry) bool {
	return c.clock.Now().Sub(entry.storedAt) >= c.ttl
}
