package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type CoverageResponse struct {
	From string `json:"from" example:"1970-01-01"`
	To   string `json:"to" example:"2018-03-31"`
}

// ReloadInterestRates godoc
// @Summary Reload the interest rate table
// @Description Load the interest rate table from the configured source now and swap it in. The previous table keeps serving if the load fails.
// @Tags Rollover
// @Produce json
// @Success 200 {object} CoverageResponse
// @Failure 502 {object} errorResponse
// @Router /rollover/reload [post]
func (h *Handler) ReloadInterestRates(w http.ResponseWriter, r *http.Request) {
	coverage, err := h.service.LoadInterestRates(r.Context())
	if err != nil {
		msg := "ups, couldn't reload interest rates this time"
		logrus.WithError(err).WithField("handler", "ReloadInterestRates").Error(msg)
		writeError(w, http.StatusBadGateway, msg)
		return
	}

	logrus.WithFields(logrus.Fields{
		"from": coverage.From.Format(time.DateOnly),
		"to":   coverage.To.Format(time.DateOnly),
	}).Info("Interest rates reloaded on request")
	writeJSON(w, http.StatusOK, CoverageResponse{
		From: coverage.From.Format(time.DateOnly),
		To:   coverage.To.Format(time.DateOnly),
	})
}
