package api

import (
	_ "fxcalc/docs"
	"fxcalc/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/rates/exchange", rateHandler.GetExchangeRate)
		r.Get("/rollover/rates", rateHandler.GetRateData)
		r.Post("/rollover/reload", rateHandler.ReloadInterestRates)
		r.Get("/rollover/{symbol}/{date:\\d{4}-\\d{2}-\\d{2}}", rateHandler.GetOvernightRate)
	})
	return router
}
