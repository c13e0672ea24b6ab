package handler

import (
	"errors"
	"net/http"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type OvernightRateResponse struct {
	Symbol string  `json:"symbol" example:"AUD/USD"`
	Date   string  `json:"date" example:"2018-02-01"`
	Rate   float64 `json:"rate" example:"-2.739726027397263e-07"`
}

// GetOvernightRate godoc
// @Summary Get overnight rollover rate
// @Description Daily interest differential between the base and quote currency of a symbol on a date. Negative means the base currency costs more to fund.
// @Tags Rollover
// @Produce json
// @Param symbol path string true "Symbol, e.g. AUDUSD or AUDUSD.FXCM"
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {object} OvernightRateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse "date outside of the interest rate table"
// @Failure 503 {object} errorResponse
// @Router /rollover/{symbol}/{date} [get]
func (h *Handler) GetOvernightRate(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	view, err := h.service.OvernightRate(symbol, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSymbol):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrOutOfRangeDate):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrRateNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rate.ErrRatesNotLoaded):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			msg := "ups, couldn't calculate overnight rate this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetOvernightRate", "symbol": symbol, "date": date}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, OvernightRateResponse{
		Symbol: view.Pair.String(),
		Date:   view.Date.Format(time.DateOnly),
		Rate:   view.Rate,
	})
}
