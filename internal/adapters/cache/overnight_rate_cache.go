package cache

import (
	"fmt"
	"strconv"
	"time"

	"fxcalc/internal/domain"

	"github.com/dgraph-io/ristretto"
)

type RistrettoOvernightRateCache struct {
	cache *ristretto.Cache
}

func NewOvernightRateCache(maxItems int64) (*RistrettoOvernightRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create overnight rate cache failed: %w", err)
	}
	return &RistrettoOvernightRateCache{cache: c}, nil
}

func (c *RistrettoOvernightRateCache) Get(generation uint64, pair domain.CurrencyPair, date time.Time) (float64, bool) {
	if v, ok := c.cache.Get(toKey(generation, pair, date)); ok {
		rate, ok := v.(float64)
		return rate, ok
	}
	return 0, false
}

func (c *RistrettoOvernightRateCache) Set(generation uint64, pair domain.CurrencyPair, date time.Time, rate float64) {
	c.cache.Set(toKey(generation, pair, date), rate, 1)
}

// Clear drops every entry. Entries of older generations are unreachable anyway; this
// only frees their space.
func (c *RistrettoOvernightRateCache) Clear() { c.cache.Clear() }

func (c *RistrettoOvernightRateCache) Close() { c.cache.Close() }

func toKey(generation uint64, p domain.CurrencyPair, date time.Time) string {
	return strconv.FormatUint(generation, 10) + "|" + p.String() + ":" + date.Format(time.DateOnly)
}
