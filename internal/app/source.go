package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fxcalc/internal/adapters"
	"fxcalc/internal/adapters/httpclient"
	"fxcalc/internal/adapters/oecd"
	"fxcalc/internal/adapters/postgres"
	"fxcalc/internal/config"
	"fxcalc/internal/platform/db"

	"github.com/sirupsen/logrus"
)

// NewInterestRateSource builds the source selected by cfg.InterestRates.Source.
// The returned release func must be called once the source is no longer used.
func NewInterestRateSource(ctx context.Context, cfg *config.AppConfig) (adapters.InterestRateSource, func(), error) {
	noop := func() {}

	switch cfg.InterestRates.Source {
	case config.SourceFile:
		if cfg.InterestRates.Path == "" {
			return nil, noop, fmt.Errorf("interest rates path is required for %q source", config.SourceFile)
		}
		return oecd.NewFileSource(cfg.InterestRates.Path), noop, nil

	case config.SourceHTTP:
		if cfg.InterestRates.URL == "" {
			return nil, noop, fmt.Errorf("interest rates url is required for %q source", config.SourceHTTP)
		}
		timeout := time.Duration(cfg.HTTPClient.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return httpclient.NewInterestRateClient(&http.Client{Timeout: timeout}, cfg.InterestRates.URL), noop, nil

	case config.SourcePostgres:
		if cfg.DbServer.Migrate {
			if err := db.Migrate(ctx, cfg.DbServer); err != nil {
				return nil, noop, err
			}
			logrus.Info("✅ Migrations applied")
		}
		pool, err := db.Connect(ctx, cfg.DbServer)
		if err != nil {
			return nil, noop, fmt.Errorf("error connecting to db: %w", err)
		}
		logrus.Info("✅ Postgres connection successful")
		return postgres.NewInterestRateRepository(pool), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.InterestRates.Source)
	}
}
