// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// UserStock represents one ticker symbol on a user's watchlist.
// The (user_id, symbol) pair is unique; re-adding an existing symbol is a
// no-op at the store level.
type UserStock struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_stocks_user_symbol;not null"`
	Symbol    string    `gorm:"uniqueIndex:idx_user_stocks_user_symbol;size:20;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (UserStock) TableName() string {
	return "user_stocks"
}
