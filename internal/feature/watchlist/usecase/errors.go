// Package usecase implements the business logic for watchlist operations.
package usecase

import "errors"

// ErrEmptySymbol is returned when an add or remove request carries no symbol.
var ErrEmptySymbol = errors.New("no symbol")
