package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"watchlist_backend/internal/app/di"
	"watchlist_backend/internal/app/router"
	authadapters "watchlist_backend/internal/feature/auth/adapters"
	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	authusecase "watchlist_backend/internal/feature/auth/usecase"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "watchlist_backend/internal/feature/watchlist/usecase"
	"watchlist_backend/internal/platform/config"
	infradb "watchlist_backend/internal/platform/db"
	jwtmw "watchlist_backend/internal/platform/jwt"
	infraredis "watchlist_backend/internal/platform/redis"
)

func main() {
	// 設定読み込み（.env → 環境変数）
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.Open(cfg)

	// Redis（未設定・接続不可の場合はキャッシュなしで動作）
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		log.Println("[INFO] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// トークン発行・検証（シークレットはここで一度だけ注入する）
	tokens := jwtmw.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	stockRepo := di.NewStockRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(stockRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	// ルータ生成（CORS込み）
	r := router.NewRouter(authH, watchlistH, tokens)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
