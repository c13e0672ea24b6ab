package domain

import (
	"fmt"
	"strings"
)

// Currency is an ISO-like currency code such as "USD" or "BTC".
type Currency string

func (c Currency) String() string { return string(c) }

// CurrencyPair is an ordered (base, quote) pair. "AUD/USD" and "USD/AUD" are different pairs.
type CurrencyPair struct {
	Base  Currency
	Quote Currency
}

func NewCurrencyPair(base, quote Currency) CurrencyPair {
	return CurrencyPair{Base: base, Quote: quote}
}

// String returns the canonical "BASE/QUOTE" form used as a quote snapshot key.
func (p CurrencyPair) String() string {
	return string(p.Base) + "/" + string(p.Quote)
}

func (p CurrencyPair) Reversed() CurrencyPair {
	return CurrencyPair{Base: p.Quote, Quote: p.Base}
}

// ParsePair parses a canonical "BASE/QUOTE" key.
func ParsePair(key string) (CurrencyPair, error) {
	base, quote, ok := strings.Cut(key, "/")
	if !ok || base == "" || quote == "" || strings.Contains(quote, "/") {
		return CurrencyPair{}, fmt.Errorf("%w: %q is not in BASE/QUOTE form", ErrInvalidSymbol, key)
	}
	return NewCurrencyPair(Currency(base), Currency(quote)), nil
}

// ParseSymbol splits an instrument symbol into its currencies. Accepted forms are
// "AUD/USD", "AUDUSD" and the venue-qualified "AUDUSD.FXCM".
func ParseSymbol(symbol string) (CurrencyPair, error) {
	code := strings.ToUpper(strings.TrimSpace(symbol))
	if i := strings.IndexByte(code, '.'); i >= 0 {
		code = code[:i]
	}
	if strings.Contains(code, "/") {
		return ParsePair(code)
	}
	if len(code) != 6 {
		return CurrencyPair{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return NewCurrencyPair(Currency(code[:3]), Currency(code[3:])), nil
}
