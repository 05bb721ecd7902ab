// Package cache provides an expiring in-process key/value cache used to
// front the game API. Catalog data (items, recipes, realms) changes rarely
// and gets a long TTL; auction snapshots go stale within the hour.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Default TTLs per data category.
const (
	TTLStatic   = 24 * time.Hour
	TTLSnapshot = 30 * time.Minute

	cleanupInterval = 10 * time.Minute
)

// Cache is an expiring key/value store.
type Cache struct {
	c *gocache.Cache
}

// New creates a cache whose unqualified Set uses defaultTTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		c: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Key builds a namespaced cache key from a category and its parts.
func Key(category string, parts ...any) string {
	key := category
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	return c.c.Get(key)
}

// Set stores value under key with the cache's default TTL.
func (c *Cache) Set(key string, value any) {
	c.c.SetDefault(key, value)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.c.Set(key, value, ttl)
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.c.Delete(key)
}

// Flush removes every entry.
func (c *Cache) Flush() {
	c.c.Flush()
}

// ItemCount returns the number of entries, expired ones included.
func (c *Cache) ItemCount() int {
	return c.c.ItemCount()
}

// Fetch returns the cached value for key, or invokes fill, stores the result
// with ttl and returns it. Errors from fill are not cached.
func Fetch[T any](c *Cache, key string, ttl time.Duration, fill func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fill()
	if err != nil {
		var zero T
		return zero, err
	}

	c.SetWithTTL(key, v, ttl)
	return v, nil
}
