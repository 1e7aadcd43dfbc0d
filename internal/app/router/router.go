// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/platform/http/handler"
	jwtmw "watchlist_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, watchlist *watchlisthandler.WatchlistHandler,
	verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// CORS: モバイルクライアント向けに全オリジンを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.GET("/ping", handler.Ping)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/mystocks", watchlist.List)
		auth.POST("/mystocks", watchlist.Add)
		auth.DELETE("/mystocks", watchlist.Remove)
	}

	return r
}
