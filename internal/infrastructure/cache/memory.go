package cache

import (
	"context"
	"sync"
	"time"

	"github.com/foodbook/backend/internal/domain"
)

// cacheItem represents a single cached result with expiration
type cacheItem struct {
	result     *domain.ShoppingListResult
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache for generated shopping
// lists with TTL support. Results are cloned on the way in and out so a
// caller checking items off its copy never mutates the cached one.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Cleanup goroutine removes expired entries every 10 minutes
	go c.cleanupExpired()

	return c
}

// Get retrieves a cached result
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.ShoppingListResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.result.Clone(), nil
}

// Set stores a result with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, result *domain.ShoppingListResult, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		result:     result.Clone(),
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a cached result
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of cached entries (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
