// Package cache provides a small generic LRU cache used to memoize text
// measurements.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

import "sync"

// Cache is a thread-safe LRU cache with a fixed capacity.
// When the cache is full, the least recently used entry is evicted.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	order    list[K, V]
	capacity int

	hits   uint64
	misses uint64
}

// New creates a cache holding at most capacity entries.
// A capacity of 0 or less means unlimited.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(n)
	return n.value, true
}

// Set stores a value, evicting the least recently used entry if needed.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the cache lock and must not call back into c.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value
	}
	c.misses++
	value := create()
	c.setLocked(key, value)
	return value
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}
	c.entries[key] = c.order.pushFront(key, value)
	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.order.back()
		c.order.remove(oldest)
		delete(c.entries, oldest.key)
	}
}

// Delete removes an entry. It reports whether the entry was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.remove(n)
	delete(c.entries, key)
	return true
}

// Clear removes all entries and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*node[K, V])
	c.order = list[K, V]{}
	c.hits, c.misses = 0, 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries, 0 for unlimited.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:      len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
}
