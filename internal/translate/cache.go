package translate

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
)

const (
	defaultCacheCapacity = 1000
	cacheEvictBatch      = 100
)

// CacheKey builds the tiered-cache key. The content hash is part of the key,
// so a changed input always produces a new entry instead of corrupting an
// old one; entries are never invalidated.
func CacheKey(sourceLang, targetLang, text string) string {
	sum := md5.Sum([]byte(text))
	return sourceLang + ":" + targetLang + ":" + hex.EncodeToString(sum[:])
}

// Cache is the bounded in-process tier. At capacity it evicts the 100
// insertion-oldest entries (FIFO, not LRU) before inserting. Safe for
// concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]string
	order    []string
	capacity int
}

func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &Cache{
		entries:  make(map[string]string, capacity),
		capacity: capacity,
	}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.entries) >= c.capacity {
		evict := cacheEvictBatch
		if evict > len(c.order) {
			evict = len(c.order)
		}
		for _, old := range c.order[:evict] {
			delete(c.entries, old)
		}
		c.order = c.order[evict:]
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot copies the current entries, for periodic persistence.
func (c *Cache) Snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Warm pre-populates the cache, oldest-first ordering taken as given.
func (c *Cache) Warm(entries map[string]string) {
	for k, v := range entries {
		c.Put(k, v)
	}
}
