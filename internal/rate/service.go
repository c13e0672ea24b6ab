package rate

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fxcalc/internal/adapters"
	"fxcalc/internal/domain"
	"fxcalc/internal/exchange"
	"fxcalc/internal/rollover"

	"golang.org/x/sync/singleflight"
)

const loadTimeout = 2 * time.Minute

var ErrRatesNotLoaded = errors.New("interest rates are not loaded yet")

// loadedTable pairs a rollover calculator with the generation its cache entries use.
type loadedTable struct {
	calc       *rollover.Calculator
	generation uint64
}

type Service struct {
	exchange    *exchange.Calculator
	source      adapters.InterestRateSource
	cache       adapters.OvernightRateCache
	current     atomic.Pointer[loadedTable]
	generations atomic.Uint64
	loads       singleflight.Group
}

// ExchangeRate resolves a rate from the request's quote snapshot.
func (s *Service) ExchangeRate(from, to domain.Currency, priceType domain.PriceType, quotes domain.QuoteSnapshot) ExchangeRateView {
	rate := s.exchange.GetRate(from, to, priceType, quotes)
	return ExchangeRateView{
		From:      from,
		To:        to,
		PriceType: priceType,
		Rate:      rate,
		Resolved:  !rate.IsZero(),
	}
}

// LoadInterestRates replaces the current rollover calculator with one built on a
// freshly loaded table. The previous calculator keeps serving if loading fails.
//
// Concurrent callers share a single load. The load is detached from the callers'
// cancellation and bounded by its own timeout; a caller whose ctx ends stops waiting
// without failing the others.
func (s *Service) LoadInterestRates(ctx context.Context) (Coverage, error) {
	ch := s.loads.DoChan("interest-rates", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		table, err := s.source.Load(loadCtx)
		if err != nil {
			return Coverage{}, fmt.Errorf("failed to load interest rates: %w", err)
		}

		loaded := &loadedTable{
			calc:       rollover.NewCalculator(table),
			generation: s.generations.Add(1),
		}
		s.current.Store(loaded)
		if s.cache != nil {
			s.cache.Clear()
		}
		return coverageOf(loaded.calc), nil
	})

	select {
	case res := <-ch:
		coverage, _ := res.Val.(Coverage)
		return coverage, res.Err
	case <-ctx.Done():
		return Coverage{}, ctx.Err()
	}
}

func (s *Service) OvernightRate(symbol string, date time.Time) (OvernightRateView, error) {
	loaded := s.current.Load()
	if loaded == nil {
		return OvernightRateView{}, ErrRatesNotLoaded
	}

	pair, err := domain.ParseSymbol(symbol)
	if err != nil {
		return OvernightRateView{}, err
	}

	if s.cache != nil {
		if rate, ok := s.cache.Get(loaded.generation, pair, date); ok {
			return OvernightRateView{Pair: pair, Date: date, Rate: rate}, nil
		}
	}

	rate, err := loaded.calc.CalcOvernightRate(pair.String(), date)
	if err != nil {
		return OvernightRateView{}, err
	}
	if s.cache != nil {
		s.cache.Set(loaded.generation, pair, date, rate)
	}
	return OvernightRateView{Pair: pair, Date: date, Rate: rate}, nil
}

// RateTable returns the coverage and rates of one table, even while a reload swaps it.
func (s *Service) RateTable() (RateTable, error) {
	loaded := s.current.Load()
	if loaded == nil {
		return RateTable{}, ErrRatesNotLoaded
	}
	return RateTable{Coverage: coverageOf(loaded.calc), Rates: loaded.calc.GetRateData()}, nil
}

func coverageOf(calc *rollover.Calculator) Coverage {
	from, to := calc.Coverage()
	return Coverage{From: from, To: to}
}

// NewService creates a service with no interest rates loaded. cache may be nil.
func NewService(source adapters.InterestRateSource, cache adapters.OvernightRateCache) *Service {
	return &Service{
		exchange: exchange.NewCalculator(),
		source:   source,
		cache:    cache,
	}
}
