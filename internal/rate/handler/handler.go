package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rate"
)

type Validator interface {
	ValidateCodes(from, to string) error
	ValidateQuotes(quotes domain.QuoteSnapshot) error
}

type Service interface {
	ExchangeRate(from, to domain.Currency, priceType domain.PriceType, quotes domain.QuoteSnapshot) rate.ExchangeRateView
	OvernightRate(symbol string, date time.Time) (rate.OvernightRateView, error)
	RateTable() (rate.RateTable, error)
	LoadInterestRates(ctx context.Context) (rate.Coverage, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewRateHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
