// Package rollover computes overnight financing differentials from a table of
// short-term reference interest rates.
package rollover

import (
	"time"

	"fxcalc/internal/domain"
)

const (
	daysPerYear = 365
	percent     = 100
)

// Calculator owns a loaded Table for its whole lifetime. It is safe for concurrent use.
type Calculator struct {
	table *Table
}

func NewCalculator(table *Table) *Calculator {
	return &Calculator{table: table}
}

// GetRateData exposes the table keyed by ISO date. Every call returns a fresh copy.
func (c *Calculator) GetRateData() map[string]map[domain.Currency]float64 {
	return c.table.Snapshot()
}

// Coverage returns the first and last dates the table can answer for.
func (c *Calculator) Coverage() (time.Time, time.Time) {
	return c.table.MinDate(), c.table.MaxDate()
}

// CalcOvernightRate returns the daily interest differential between the symbol's base
// and quote currencies at date. A negative value means funding the base currency costs
// more than the quote. Dates outside the table fail with domain.ErrOutOfRangeDate.
func (c *Calculator) CalcOvernightRate(symbol string, date time.Time) (float64, error) {
	pair, err := domain.ParseSymbol(symbol)
	if err != nil {
		return 0, err
	}

	baseRate, err := c.table.RateAt(pair.Base, date)
	if err != nil {
		return 0, err
	}
	quoteRate, err := c.table.RateAt(pair.Quote, date)
	if err != nil {
		return 0, err
	}

	return ((baseRate - quoteRate) / daysPerYear) / percent, nil
}
