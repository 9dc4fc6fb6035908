package storage

import (
	"sync"
	"time"

	"github.com/chitieu-app/chitieu/internal/model"
)

// readTTL is how long a memoized read result stays valid before it is
// recomputed from storage.
const readTTL = 10 * time.Second

// cacheEntry represents one memoized query result.
type cacheEntry struct {
	expiry time.Time
	rows   []model.Row
}

// readCache memoizes view query results per (query name, owner). Every
// successful write invalidates the whole namespace, not just the affected
// owner: a write by user A forces a fresh read for user B's next view
// within the window. The dataset is small enough that the coarse policy
// is an accepted tradeoff.
type readCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
}

func newReadCache(ttl time.Duration) *readCache {
	if ttl == 0 {
		ttl = readTTL
	}
	return &readCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// key builds the cache key for a query/owner pair.
func cacheKey(query string, owner string) string {
	return query + "|" + owner
}

// get returns the memoized rows if present and not expired.
func (c *readCache) get(key string) ([]model.Row, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiry) {
		return nil, false
	}
	return entry.rows, true
}

// set stores rows under key with a fresh TTL.
func (c *readCache) set(key string, rows []model.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		rows:   rows,
		expiry: time.Now().Add(c.ttl),
	}
}

// invalidateAll drops every entry.
func (c *readCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
