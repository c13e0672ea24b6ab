package adapters

import (
	"context"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rollover"
)

// InterestRateSource loads a complete reference interest rate table.
type InterestRateSource interface {
	Load(ctx context.Context) (*rollover.Table, error)
}

// OvernightRateCache memoises overnight rates. Entries are keyed by the generation of
// the table they were computed from, so a rate from a replaced table is never served.
type OvernightRateCache interface {
	Get(generation uint64, pair domain.CurrencyPair, date time.Time) (float64, bool)
	Set(generation uint64, pair domain.CurrencyPair, date time.Time, rate float64)
	Clear()
}
