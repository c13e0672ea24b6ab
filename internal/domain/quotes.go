package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// QuoteSnapshot holds bid and ask rates keyed by "BASE/QUOTE" for a single market instant.
// It is passed by value and never modified by its consumers.
type QuoteSnapshot struct {
	Bid map[string]decimal.Decimal
	Ask map[string]decimal.Decimal
}

func NewQuoteSnapshot(bid, ask map[string]decimal.Decimal) QuoteSnapshot {
	return QuoteSnapshot{Bid: bid, Ask: ask}
}

// Side returns the quoted bid or ask value for the pair. Non-positive quotes are treated as missing.
func (s QuoteSnapshot) Side(pair CurrencyPair, side PriceType) (decimal.Decimal, bool) {
	var rates map[string]decimal.Decimal
	switch side {
	case PriceTypeBid:
		rates = s.Bid
	case PriceTypeAsk:
		rates = s.Ask
	default:
		return decimal.Zero, false
	}
	v, ok := rates[pair.String()]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// Currencies returns every distinct currency appearing on either side of any key, sorted by code.
// Keys that are not in BASE/QUOTE form are skipped.
func (s QuoteSnapshot) Currencies() []Currency {
	set := make(map[Currency]struct{})
	for _, rates := range []map[string]decimal.Decimal{s.Bid, s.Ask} {
		for key := range rates {
			pair, err := ParsePair(key)
			if err != nil {
				continue
			}
			set[pair.Base] = struct{}{}
			set[pair.Quote] = struct{}{}
		}
	}
	codes := make([]Currency, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
