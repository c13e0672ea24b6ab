package rate

import (
	"errors"
	"fmt"

	"fxcalc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrFromRequired     = errors.New("from currency is required")
	ErrToRequired       = errors.New("to currency is required")
	ErrQuotesRequired   = errors.New("at least one bid or ask quote is required")
	ErrInvalidQuoteKey  = errors.New("quote keys must be in BASE/QUOTE form")
	ErrNonPositiveQuote = errors.New("quotes must be strictly positive")
)

// RequestValidator checks exchange rate requests before they reach the calculator.
// Currency codes are only checked for presence.
type RequestValidator struct{}

func (v *RequestValidator) ValidateCodes(from, to string) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	return nil
}

func (v *RequestValidator) ValidateQuotes(quotes domain.QuoteSnapshot) error {
	if len(quotes.Bid) == 0 && len(quotes.Ask) == 0 {
		return ErrQuotesRequired
	}
	for _, rates := range []map[string]decimal.Decimal{quotes.Bid, quotes.Ask} {
		for key, value := range rates {
			if _, err := domain.ParsePair(key); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidQuoteKey, key)
			}
			if !value.IsPositive() {
				return fmt.Errorf("%w: %s=%s", ErrNonPositiveQuote, key, value)
			}
		}
	}
	return nil
}

func NewValidator() *RequestValidator {
	return &RequestValidator{}
}
