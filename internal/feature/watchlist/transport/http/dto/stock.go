// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

// StockReq represents the request body for adding or removing a symbol.
// The empty-symbol check lives in the usecase so add and remove report the
// same error for a missing symbol; binding stays tag-free here.
type StockReq struct {
	Symbol string `json:"symbol"`
}

// StockListRes represents the response for the watchlist listing.
type StockListRes struct {
	Stocks []string `json:"stocks"`
}

// SuccessRes represents the response for a successful add or remove.
type SuccessRes struct {
	Success bool `json:"success"`
}
