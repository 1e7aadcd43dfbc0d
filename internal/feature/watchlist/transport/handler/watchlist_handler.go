package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/feature/watchlist/transport/http/dto"
	"watchlist_backend/internal/feature/watchlist/usecase"
	jwtmw "watchlist_backend/internal/platform/jwt"
)

// WatchlistUsecase はウォッチリスト操作のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	List(ctx context.Context, userID uint) ([]string, error)
	Add(ctx context.Context, userID uint, symbol string) error
	Remove(ctx context.Context, userID uint, symbol string) error
}

// WatchlistHandler はウォッチリストに関するHTTPリクエストを処理します。
// 認証ミドルウェアがコンテキストに設定したユーザーIDを使用します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List はログイン中ユーザーのウォッチリストを取得するAPIです。
// 銘柄が1件もない場合は空の配列を返します。
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	symbols, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list stocks", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if symbols == nil {
		symbols = []string{}
	}
	c.JSON(http.StatusOK, dto.StockListRes{Stocks: symbols})
}

// Add は銘柄をウォッチリストに追加するAPIです。
// 同じ銘柄の再追加は成功として扱われます（冪等）。
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol"})
		return
	}

	if err := h.uc.Add(c.Request.Context(), userID, req.Symbol); err != nil {
		if errors.Is(err, usecase.ErrEmptySymbol) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol"})
			return
		}
		slog.Error("failed to add stock", "error", err, "user_id", userID, "symbol", req.Symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add stock"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessRes{Success: true})
}

// Remove は銘柄をウォッチリストから削除するAPIです。
// 存在しない銘柄の削除も成功として扱われます（冪等）。
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.StockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), userID, req.Symbol); err != nil {
		if errors.Is(err, usecase.ErrEmptySymbol) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol"})
			return
		}
		slog.Error("failed to remove stock", "error", err, "user_id", userID, "symbol", req.Symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, dto.SuccessRes{Success: true})
}

// currentUserID fetches the authenticated user's ID set by the JWT middleware.
// It aborts with 401 when the middleware did not run.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token"})
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return 0, false
	}
	return userID, true
}
