package internal

const defaultMaxCacheSize = 8

// Cache is a small LRU keyed by string. Evicted values are passed to the
// release function, which is where textures or other native resources are freed.
type Cache[V any] struct {
	values  map[string]V
	order   []string // tracks use order for LRU eviction
	maxSize int
	release func(V)
}

func NewCache[V any](release func(V)) *Cache[V] {
	return NewCacheWithSize(defaultMaxCacheSize, release)
}

func NewCacheWithSize[V any](maxSize int, release func(V)) *Cache[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Cache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	value, exists := c.values[key]
	if exists {
		c.moveToEnd(key)
	}
	return value, exists
}

func (c *Cache[V]) Set(key string, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		c.releaseValue(old)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	return len(c.order)
}

func (c *Cache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		c.releaseValue(value)
	}
}

func (c *Cache[V]) releaseValue(v V) {
	if c.release != nil {
		c.release(v)
	}
}

// Destroy releases every cached value and empties the cache.
func (c *Cache[V]) Destroy() {
	for _, value := range c.values {
		c.releaseValue(value)
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
