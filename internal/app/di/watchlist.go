// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"watchlist_backend/internal/feature/watchlist/adapters"
	"watchlist_backend/internal/feature/watchlist/usecase"
	"watchlist_backend/internal/platform/cache"
)

// watchlistCacheTTL bounds how stale a cached list can get if an
// invalidation is lost.
const watchlistCacheTTL = 5 * time.Minute

// NewStockRepository creates a StockRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read-through
// cache. Otherwise it is returned as-is.
func NewStockRepository(rdb *redis.Client, db *gorm.DB) usecase.StockRepository {
	repo := adapters.NewStockRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingStockRepository(rdb, watchlistCacheTTL, repo, "watchlist")
}
