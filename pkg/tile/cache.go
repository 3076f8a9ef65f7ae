package tile

import "sync"

// cacheKey identifies an Apply call by layout name, window count, and
// container. The layout is identified by its name alone: no other field of
// the LayoutDefinition is part of the key, so two differently-shaped
// layouts under one name share entries, and a caller that mutates a layout
// must call Invalidate for its name.
type cacheKey struct {
	layout      string
	windowCount int
	container   Rect
}

// Cache memoizes Apply results. Because Apply is referentially transparent
// (§5), a cache hit and a cache miss are guaranteed to return
// byte-identical slices; the cache is purely a performance optimization,
// never a correctness concern.
//
// The zero value is not usable; construct with NewCache.
type Cache struct {
	mu    sync.RWMutex
	items map[cacheKey][]Rect
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey][]Rect)}
}

// Apply returns the tiling for layout/windowCount/container, computing and
// storing it on a cache miss. The returned slice must not be mutated by the
// caller; callers that need a mutable copy should copy it themselves.
func (c *Cache) Apply(layout LayoutDefinition, windowCount int, container Rect) []Rect {
	key := cacheKey{layout: layout.Name, windowCount: windowCount, container: container}

	c.mu.RLock()
	if tiles, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return tiles
	}
	c.mu.RUnlock()

	tiles := Apply(layout, windowCount, container)

	c.mu.Lock()
	c.items[key] = tiles
	c.mu.Unlock()

	return tiles
}

// Invalidate drops every cached entry for the given layout name, for use
// after a caller mutates a LayoutDefinition through one of its setters.
func (c *Cache) Invalidate(layoutName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if k.layout == layoutName {
			delete(c.items, k)
		}
	}
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
