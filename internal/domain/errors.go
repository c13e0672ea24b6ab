package domain

import "errors"

var (
	ErrOutOfRangeDate   = errors.New("date is outside of the interest rate table range")
	ErrRateNotFound     = errors.New("rate not found")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrUnknownPriceType = errors.New("unknown price type")
)
