// Package exchange resolves exchange rates between currencies from a snapshot of
// directly quoted bid/ask pairs.
package exchange

import (
	"fxcalc/internal/domain"

	"github.com/shopspring/decimal"
)

// Calculator is stateless; a single value can be shared by any number of goroutines.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// GetRate returns the rate for converting from into to at the requested price type.
//
// The rate is looked up directly ("FROM/TO"), then as the reciprocal of the inverse
// pair ("TO/FROM"), and finally through one intermediate currency taken from the
// snapshot keys. Zero is returned when no rate can be derived; it is never a valid rate.
func (c *Calculator) GetRate(from, to domain.Currency, priceType domain.PriceType, quotes domain.QuoteSnapshot) decimal.Decimal {
	if from == to {
		return one
	}

	if rate, ok := resolve(from, to, priceType, quotes, Precision); ok {
		return rate
	}

	for _, via := range quotes.Currencies() {
		if via == from || via == to {
			continue
		}
		first, ok := resolve(from, via, priceType, quotes, legPrecision)
		if !ok {
			continue
		}
		second, ok := resolve(via, to, priceType, quotes, legPrecision)
		if !ok {
			continue
		}
		return mul(first, second)
	}

	return decimal.Zero
}

// resolve finds a rate from the direct pair or the reciprocal of the inverse pair,
// rounded to digits significant digits.
func resolve(from, to domain.Currency, priceType domain.PriceType, quotes domain.QuoteSnapshot, digits int32) (decimal.Decimal, bool) {
	pair := domain.NewCurrencyPair(from, to)
	if rate, ok := price(pair, priceType, quotes, digits); ok {
		return rate, true
	}
	if rate, ok := price(pair.Reversed(), priceType, quotes, digits); ok {
		return inverseTo(rate, digits), true
	}
	return decimal.Zero, false
}

// price reads the pair's value for priceType. Mid needs both sides of the same pair.
func price(pair domain.CurrencyPair, priceType domain.PriceType, quotes domain.QuoteSnapshot, digits int32) (decimal.Decimal, bool) {
	switch priceType {
	case domain.PriceTypeBid, domain.PriceTypeAsk:
		return quotes.Side(pair, priceType)
	case domain.PriceTypeMid:
		bid, ok := quotes.Side(pair, domain.PriceTypeBid)
		if !ok {
			return decimal.Zero, false
		}
		ask, ok := quotes.Side(pair, domain.PriceTypeAsk)
		if !ok {
			return decimal.Zero, false
		}
		return meanTo(bid, ask, digits), true
	default:
		return decimal.Zero, false
	}
}
