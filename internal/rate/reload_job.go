package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const reloadTimeout = 2 * time.Minute

type InterestRateLoader interface {
	LoadInterestRates(ctx context.Context) (Coverage, error)
}

// ReloadInterestRates swaps in a freshly loaded interest rate table
func ReloadInterestRates(ctx context.Context, execID string, loader InterestRateLoader) error {
	loadCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	coverage, err := loader.LoadInterestRates(loadCtx)
	if err != nil {
		return fmt.Errorf("failed to reload interest rates: %w", err)
	}

	logrus.Infof("Interest rates reloaded, coverage %s..%s; execID: %s",
		coverage.From.Format(time.DateOnly), coverage.To.Format(time.DateOnly), execID)
	return nil
}
