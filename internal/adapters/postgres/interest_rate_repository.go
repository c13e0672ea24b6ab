package postgres

import (
	"context"
	"fmt"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rollover"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InterestRateRepository reads the reference interest rate table maintained by the
// market data loaders.
type InterestRateRepository struct {
	pool *pgxpool.Pool
}

func (r *InterestRateRepository) Load(ctx context.Context) (*rollover.Table, error) {
	const q = `
		select period_start, period_end, currency, value
		from short_term_interest_rates
		order by period_start, currency;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query interest rates: %w", err)
	}
	defer rows.Close()

	byStart := make(map[time.Time]map[domain.Currency]float64)
	ends := make(map[time.Time]time.Time)
	order := make([]time.Time, 0, 64)
	var maxDate time.Time
	for rows.Next() {
		var (
			start, end time.Time
			currency   string
			value      float64
		)
		if err = rows.Scan(&start, &end, &currency, &value); err != nil {
			return nil, fmt.Errorf("failed to scan interest rate: %w", err)
		}
		if _, ok := byStart[start]; !ok {
			byStart[start] = make(map[domain.Currency]float64)
			order = append(order, start)
		}
		byStart[start][domain.Currency(currency)] = value
		if end.After(ends[start]) {
			ends[start] = end
		}
		if end.After(maxDate) {
			maxDate = end
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interest rates: %w", err)
	}

	records := make([]rollover.Record, 0, len(order))
	for _, start := range order {
		records = append(records, rollover.Record{Date: start, End: ends[start], Rates: byStart[start]})
	}
	table, err := rollover.NewTable(records, maxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build interest rate table: %w", err)
	}
	return table, nil
}

func NewInterestRateRepository(pool *pgxpool.Pool) *InterestRateRepository {
	return &InterestRateRepository{pool: pool}
}
