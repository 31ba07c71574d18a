package style

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Entries   int    `json:"entries"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// Cache memoizes resolved sheets by their typed props key. A cache created with
// maxEntries <= 0 never evicts.
type Cache struct {
	mu        sync.Mutex
	entries   *lru.Cache
	hits      uint64
	misses    uint64
	evictions uint64
}

// NewCache creates a sheet cache holding at most maxEntries sheets.
func NewCache(maxEntries int) *Cache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	c := &Cache{entries: lru.New(maxEntries)}
	c.entries.OnEvicted = func(lru.Key, interface{}) {
		c.evictions++
	}
	return c
}

// Get returns the sheet stored under key and marks it recently used.
func (c *Cache) Get(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

// peek is Get without touching the hit and miss counters.
func (c *Cache) peek(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Get(key)
}

// Add stores value under key, evicting the least recently used entry when full.
func (c *Cache) Add(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, value)
}

// Len returns the number of cached sheets.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every cached sheet. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	onEvicted := c.entries.OnEvicted
	c.entries.OnEvicted = nil
	c.entries.Clear()
	c.entries.OnEvicted = onEvicted
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Entries:   c.entries.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
