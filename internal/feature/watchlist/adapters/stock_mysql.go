// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// stockMySQL はStockRepositoryインターフェースのGORM実装です。
type stockMySQL struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockRepository は指定されたDB接続でstockMySQLリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// ListSymbols はユーザーのウォッチリストに登録された銘柄コードを返します。
func (r *stockMySQL) ListSymbols(ctx context.Context, userID uint) ([]string, error) {
	var symbols []string
	if err := r.db.WithContext(ctx).
		Model(&entity.UserStock{}).
		Where("user_id = ?", userID).
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// Add は銘柄をウォッチリストに追加します。
// (user_id, symbol) が既に存在する場合は何もしません（insert-or-ignore）。
func (r *stockMySQL) Add(ctx context.Context, userID uint, symbol string) error {
	stock := entity.UserStock{UserID: userID, Symbol: symbol}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&stock).Error
}

// Remove は銘柄をウォッチリストから削除します。
// 該当行が存在しない場合もエラーにはなりません（delete-if-exists）。
func (r *stockMySQL) Remove(ctx context.Context, userID uint, symbol string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&entity.UserStock{}).Error
}
