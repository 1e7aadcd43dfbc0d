package usecase

import (
	"context"
)

// StockRepository abstracts the persistence layer for a user's watched symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	// ListSymbols returns the symbols on the user's watchlist.
	ListSymbols(ctx context.Context, userID uint) ([]string, error)

	// Add puts a symbol on the user's watchlist. Adding a symbol that is
	// already present succeeds without creating a duplicate.
	Add(ctx context.Context, userID uint, symbol string) error

	// Remove takes a symbol off the user's watchlist. Removing an absent
	// symbol succeeds.
	Remove(ctx context.Context, userID uint, symbol string) error
}

// WatchlistUsecase provides business logic for watchlist operations.
type WatchlistUsecase struct {
	repo StockRepository
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given repository.
func NewWatchlistUsecase(r StockRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: r}
}

// List returns all symbols on the user's watchlist.
// A user who never added a symbol gets an empty list, not an error.
func (u *WatchlistUsecase) List(ctx context.Context, userID uint) ([]string, error) {
	return u.repo.ListSymbols(ctx, userID)
}

// Add puts a symbol on the user's watchlist. It is idempotent.
func (u *WatchlistUsecase) Add(ctx context.Context, userID uint, symbol string) error {
	if symbol == "" {
		return ErrEmptySymbol
	}
	return u.repo.Add(ctx, userID, symbol)
}

// Remove takes a symbol off the user's watchlist. It is idempotent:
// removing a symbol that was never added succeeds.
func (u *WatchlistUsecase) Remove(ctx context.Context, userID uint, symbol string) error {
	if symbol == "" {
		return ErrEmptySymbol
	}
	return u.repo.Remove(ctx, userID, symbol)
}
