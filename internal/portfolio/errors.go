package portfolio

import "errors"

var (
	ErrSymbolEmpty       = errors.New("Symbol cannot be empty")
	ErrSharesNotPositive = errors.New("Shares must be greater than 0")
	ErrPriceNotPositive  = errors.New("Average price must be greater than 0")
	ErrNotFound          = errors.New("Stock not found")
	ErrNotOwner          = errors.New("Unauthorized")
)
