package collector

import (
	"sync"
	"time"

	"StockSeer/internal/model"
)

const (
	// DefaultCacheTTL is how long a resolved series stays fresh.
	DefaultCacheTTL = 5 * time.Minute
	// DefaultCacheCapacity caps the number of cached symbols.
	DefaultCacheCapacity = 100
)

type cacheEntry struct {
	series    model.Series
	fetchedAt time.Time
}

// SeriesCache is an in-process TTL cache for resolved series, capped at a
// fixed capacity. Insertion beyond the cap evicts exactly one entry in
// insertion order (FIFO, not LRU). Entries are stored and returned as
// copies so no caller ever shares bars with the cache.
//
// TODO: evaluate switching eviction to true LRU; FIFO keeps parity with
// the original behavior.
type SeriesCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	order    []string // insertion order, oldest first
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewSeriesCache creates a cache with the given capacity and TTL.
func NewSeriesCache(capacity int, ttl time.Duration) *SeriesCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SeriesCache{
		entries:  make(map[string]*cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the cached series when present and unexpired.
// An expired entry is a miss; it stays in place until a fresh Put
// supersedes it or PurgeExpired removes it.
func (c *SeriesCache) Get(symbol string) (model.Series, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[symbol]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.series.Clone(), true
}

// Put stores a copy of the series under the symbol key and reports
// whether an existing entry was evicted to make room.
func (c *SeriesCache) Put(symbol string, series model.Series) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[symbol]; ok {
		// Supersede in place; the key keeps its insertion-order slot.
		e.series = series.Clone()
		e.fetchedAt = c.now()
		return false
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		evicted = true
	}

	c.entries[symbol] = &cacheEntry{series: series.Clone(), fetchedAt: c.now()}
	c.order = append(c.order, symbol)
	return evicted
}

// PurgeExpired removes all expired entries and returns how many were
// dropped.
func (c *SeriesCache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	kept := c.order[:0]
	for _, key := range c.order {
		e := c.entries[key]
		if c.now().Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
	return removed
}

// Len returns the number of entries currently held, expired or not.
func (c *SeriesCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
