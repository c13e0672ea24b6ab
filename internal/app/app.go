package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxcalc/internal/adapters/cache"
	"fxcalc/internal/api"
	"fxcalc/internal/config"
	httpserver "fxcalc/internal/platform/http"
	"fxcalc/internal/rate"
	"fxcalc/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// SetupLogging sends logs to stdout at the given level, falling back to info.
func SetupLogging(level string) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, err := logrus.ParseLevel(level); err != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// Run wires the application components, starts HTTP server and scheduler
func Run(configPath string) error {
	appCfg, err := config.Init(configPath)
	if err != nil {
		return err
	}
	SetupLogging(appCfg.Logging.Level)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial load)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	source, release, err := NewInterestRateSource(startupCtx, appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to create interest rates source")
		return err
	}
	defer release()

	overnightCache, err := cache.NewOvernightRateCache(appCfg.Cache.MaxItems)
	if err != nil {
		return err
	}
	defer overnightCache.Close()

	rateService := rate.NewService(source, overnightCache)

	// Serving rollover rates makes no sense without a table, so fail fast
	coverage, err := rateService.LoadInterestRates(startupCtx)
	if err != nil {
		logrus.WithError(err).WithField("source", appCfg.InterestRates.Source).Error("Initial interest rates load failed")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"source": appCfg.InterestRates.Source,
		"from":   coverage.From.Format(time.DateOnly),
		"to":     coverage.To.Format(time.DateOnly),
	}).Info("✅ Interest rates loaded")

	scheduler := rate.NewScheduler(rateService, time.Duration(appCfg.Scheduler.ReloadIntervalSec)*time.Second)
	// Ensure scheduler stops before the source is released
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.WithField("interval", time.Duration(appCfg.Scheduler.ReloadIntervalSec)*time.Second).
		Info("✅ Scheduler activation successful")

	rateHandler := handler.NewRateHandler(rate.NewValidator(), rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Serve(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
