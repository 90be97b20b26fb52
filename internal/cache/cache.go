package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ignatzorin/projecthub-backend/internal/goroutine"
)

const defaultCleanupInterval = 5 * time.Minute

// Cache provides in-memory caching with TTL and invalidation support.
type Cache struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// New creates a cache. Expired entries are swept in the background until ctx is done.
func New(ctx context.Context, cleanupInterval time.Duration) *Cache {
	c := &Cache{
		cache: make(map[string]*cacheEntry),
		now:   time.Now,
	}

	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		c.cleanup(ctx, cleanupInterval)
	})

	return c
}

// Get retrieves a value from cache.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, false
	}

	// Don't delete here, let cleanup handle it
	if c.now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.data, true
}

// Set stores a value in cache with TTL.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes a key from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}

// CountByPrefix returns the number of live entries with the given prefix.
func (c *Cache) CountByPrefix(prefix string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	count := 0
	for key, entry := range c.cache {
		if strings.HasPrefix(key, prefix) && !now.After(entry.expiresAt) {
			count++
		}
	}
	return count
}

// cleanup removes expired entries periodically.
func (c *Cache) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.cache {
		if now.After(entry.expiresAt) {
			delete(c.cache, key)
		}
	}
}
