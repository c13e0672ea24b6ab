package rollover

import (
	"sync"
	"testing"
	"time"

	"fxcalc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const audUSD = "AUDUSD.FXCM"

var unixEpoch = time.Unix(0, 0).UTC()

func TestGetRateData_ReturnsDateKeyedMap(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	data := calc.GetRateData()

	require.IsType(t, map[string]map[domain.Currency]float64{}, data)
	require.Contains(t, data, "2018-02-01")
	require.Equal(t, -0.05, data["2018-02-01"]["JPY"])
}

func TestGetRateData_RoundTrip(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	first := calc.GetRateData()
	second := calc.GetRateData()

	require.Equal(t, first, second)

	delete(first, "1970-01-01")
	require.Equal(t, second, calc.GetRateData())
}

func TestCalcOvernightRate_OnUnixEpoch(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	rate, err := calc.CalcOvernightRate(audUSD, unixEpoch)

	require.NoError(t, err)
	require.Equal(t, -8.52054794520548e-05, rate)
}

func TestCalcOvernightRate_OnLaterDate(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	rate, err := calc.CalcOvernightRate(audUSD, day(2018, time.February, 1))

	require.NoError(t, err)
	require.Equal(t, -2.739726027397263e-07, rate)
}

func TestCalcOvernightRate_SignFollowsDifferential(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	rate, err := calc.CalcOvernightRate("USD/AUD", unixEpoch)
	require.NoError(t, err)
	require.Greater(t, rate, 0.0)

	rate, err = calc.CalcOvernightRate("AUDJPY", day(2018, time.February, 1))
	require.NoError(t, err)
	require.InDelta(t, (1.78+0.05)/365/100, rate, 1e-15)
}

func TestCalcOvernightRate_ImpossibleDates(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	_, err := calc.CalcOvernightRate(audUSD, day(1900, time.January, 1))
	require.ErrorIs(t, err, domain.ErrOutOfRangeDate)

	_, err = calc.CalcOvernightRate(audUSD, day(3000, time.January, 1))
	require.ErrorIs(t, err, domain.ErrOutOfRangeDate)
}

func TestCalcOvernightRate_InvalidSymbol(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	_, err := calc.CalcOvernightRate("AUD", unixEpoch)
	require.ErrorIs(t, err, domain.ErrInvalidSymbol)
}

func TestCalcOvernightRate_MissingCurrency(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	_, err := calc.CalcOvernightRate("USDJPY", unixEpoch)
	require.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestCalculator_Coverage(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	from, to := calc.Coverage()

	require.Equal(t, day(1970, time.January, 1), from)
	require.Equal(t, day(2018, time.February, 28), to)
}

func TestCalcOvernightRate_ConcurrentReads(t *testing.T) {
	calc := NewCalculator(newFixtureTable(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rate, err := calc.CalcOvernightRate(audUSD, day(2018, time.February, 1))
				assert.NoError(t, err)
				assert.Equal(t, -2.739726027397263e-07, rate)
			}
		}()
	}
	wg.Wait()
}
