package rollover

import (
	"testing"
	"time"

	"fxcalc/internal/domain"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthEnd(start time.Time) time.Time {
	return start.AddDate(0, 1, -1)
}

// fixtureRecords covers 1970-01, 1970-02 and 2018-02 as whole months, unsorted.
func fixtureRecords() []Record {
	return []Record{
		{Date: day(2018, time.February, 1), End: monthEnd(day(2018, time.February, 1)), Rates: map[domain.Currency]float64{"AUD": 1.78, "USD": 1.79, "JPY": -0.05}},
		{Date: day(1970, time.January, 1), End: monthEnd(day(1970, time.January, 1)), Rates: map[domain.Currency]float64{"AUD": 5.05, "USD": 8.16}},
		{Date: day(1970, time.February, 1), End: monthEnd(day(1970, time.February, 1)), Rates: map[domain.Currency]float64{"AUD": 5.1, "USD": 8.0}},
	}
}

func newFixtureTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(fixtureRecords(), day(2018, time.February, 28))
	require.NoError(t, err)
	return table
}
