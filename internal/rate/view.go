package rate

import (
	"time"

	"fxcalc/internal/domain"

	"github.com/shopspring/decimal"
)

type ExchangeRateView struct {
	From      domain.Currency
	To        domain.Currency
	PriceType domain.PriceType
	Rate      decimal.Decimal
	Resolved  bool
}

type OvernightRateView struct {
	Pair domain.CurrencyPair
	Date time.Time
	Rate float64
}

type Coverage struct {
	From time.Time
	To   time.Time
}

// RateTable is the interest rate table keyed by ISO date, then currency.
type RateTable struct {
	Coverage Coverage
	Rates    map[string]map[domain.Currency]float64
}
