package handler

import (
	"errors"
	"net/http"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rate"

	"github.com/sirupsen/logrus"
)

type RateDataResponse struct {
	From  string                                 `json:"from" example:"1970-01-01"`
	To    string                                 `json:"to" example:"2018-02-28"`
	Rates map[string]map[domain.Currency]float64 `json:"rates" swaggertype:"object"`
}

// GetRateData godoc
// @Summary Get the interest rate table
// @Description Reference short-term interest rates (percent per annum) keyed by date, then by currency
// @Tags Rollover
// @Produce json
// @Success 200 {object} RateDataResponse
// @Failure 503 {object} errorResponse
// @Router /rollover/rates [get]
func (h *Handler) GetRateData(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.RateTable()
	if err != nil {
		h.writeTableError(w, "GetRateData", err)
		return
	}

	writeJSON(w, http.StatusOK, RateDataResponse{
		From:  table.Coverage.From.Format(time.DateOnly),
		To:    table.Coverage.To.Format(time.DateOnly),
		Rates: table.Rates,
	})
}

func (h *Handler) writeTableError(w http.ResponseWriter, handlerName string, err error) {
	if errors.Is(err, rate.ErrRatesNotLoaded) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	msg := "ups, couldn't read interest rates this time"
	logrus.WithError(err).WithField("handler", handlerName).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}
