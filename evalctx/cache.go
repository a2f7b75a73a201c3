package evalctx

// Cache memoizes resolved sample series by structural key. Like Context, it
// is not synchronized: a cache belongs to a single resolution flow unless
// the caller adds its own locking.
type Cache struct {
	entries map[CacheKey][]float64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey][]float64)}
}

// Lookup returns the series stored under key. The returned slice is the
// stored value itself, not a copy, so repeated hits yield the identical
// array.
func (c *Cache) Lookup(key CacheKey) ([]float64, bool) {
	samples, ok := c.entries[key]
	return samples, ok
}

// Store records a resolved series under key.
func (c *Cache) Store(key CacheKey, samples []float64) {
	c.entries[key] = samples
}

// Len reports the number of cached series.
func (c *Cache) Len() int {
	return len(c.entries)
}
