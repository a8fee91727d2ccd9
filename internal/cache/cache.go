package cache

import "sync"

// Cache is a generic thread-safe keyed store. Entries live until the cache
// is discarded.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V

	hits, misses uint64
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// GetOrCreate returns the cached value for key, or calls create, stores its
// result and returns it. created reports whether create was called.
//
// create runs under the cache lock, so two concurrent callers never create
// the same key twice. It must not call back into the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, false
	}

	c.misses++
	value = create()
	c.entries[key] = value
	return value, true
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Values returns a snapshot of all cached values in unspecified order.
func (c *Cache[K, V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]V, 0, len(c.entries))
	for _, v := range c.entries {
		out = append(out, v)
	}
	return out
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:    len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits and Misses count GetOrCreate calls that found or created an
	// entry.
	Hits, Misses uint64
}
