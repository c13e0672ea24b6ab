package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"fxcalc/internal/domain"

	"github.com/shopspring/decimal"
)

const maxExchangeRequestBytes = 64 << 10

type ExchangeRateRequest struct {
	From      string                     `json:"from" example:"JPY"`
	To        string                     `json:"to" example:"AUD"`
	PriceType string                     `json:"price_type" example:"MID"`
	Bid       map[string]decimal.Decimal `json:"bid" swaggertype:"object,string" example:"USD/JPY:110.100"`
	Ask       map[string]decimal.Decimal `json:"ask" swaggertype:"object,string" example:"USD/JPY:110.130"`
}

type ExchangeRateResponse struct {
	From      string          `json:"from" example:"JPY"`
	To        string          `json:"to" example:"AUD"`
	PriceType string          `json:"price_type" example:"MID"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string" example:"0.01135331516802906448683015441"`
	Resolved  bool            `json:"resolved" example:"true"`
}

// GetExchangeRate godoc
// @Summary Resolve an exchange rate
// @Description Derive a rate between two currencies from a bid/ask quote snapshot (direct, inverse or via one intermediate currency). An unresolvable rate is returned as "0" with resolved=false.
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body ExchangeRateRequest true "Currencies, price type and quotes"
// @Success 200 {object} ExchangeRateResponse
// @Failure 400 {object} errorResponse
// @Router /rates/exchange [post]
func (h *Handler) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxExchangeRequestBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ExchangeRateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))
	if err := h.validator.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	priceType, err := domain.ParsePriceType(req.PriceType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quotes := domain.NewQuoteSnapshot(req.Bid, req.Ask)
	if err = h.validator.ValidateQuotes(quotes); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.service.ExchangeRate(domain.Currency(from), domain.Currency(to), priceType, quotes)
	writeJSON(w, http.StatusOK, ExchangeRateResponse{
		From:      string(view.From),
		To:        string(view.To),
		PriceType: view.PriceType.String(),
		Rate:      view.Rate,
		Resolved:  view.Resolved,
	})
}
