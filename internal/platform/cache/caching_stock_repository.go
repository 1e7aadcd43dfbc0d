// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"watchlist_backend/internal/feature/watchlist/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "watchlist".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "watchlist"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListSymbols retrieves the user's symbols, checking cache first then falling
// back to the database.
func (c *CachingStockRepository) ListSymbols(ctx context.Context, userID uint) ([]string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListSymbols(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListSymbols(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Add adds a symbol and invalidates the user's cache entry.
func (c *CachingStockRepository) Add(ctx context.Context, userID uint, symbol string) error {
	if err := c.inner.Add(ctx, userID, symbol); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// Remove removes a symbol and invalidates the user's cache entry.
func (c *CachingStockRepository) Remove(ctx context.Context, userID uint, symbol string) error {
	if err := c.inner.Remove(ctx, userID, symbol); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// invalidate drops the user's cached list. Best effort: a failed delete only
// means a stale read until the TTL runs out.
func (c *CachingStockRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's watchlist.
func (c *CachingStockRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
