package handler

import (
	"fintrack/internal/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type RatesResponse struct {
	Base      string             `json:"base" example:"USD"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
	Fallback  bool               `json:"fallback"`
}

type RateResponse struct {
	From  string  `json:"from" example:"USD"`
	To    string  `json:"to" example:"EUR"`
	Value float64 `json:"value" example:"0.85"`
}

// GetRates godoc
// @Summary Current exchange rates
// @Description USD-based rate table. fallback is true when the static table is served because the upstream fetch failed.
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	snap := h.rates.GetRates(r.Context())
	writeJSON(w, http.StatusOK, newRatesResponse(snap))
}

// RefreshRates godoc
// @Summary Refetch exchange rates
// @Description Fetches a new table regardless of the cached one's age. The previous table stays cached when the fetch fails.
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Failure 502 {object} errorResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rates.Refresh(r.Context())
	if err != nil {
		msg := "failed to refresh exchange rates"
		logrus.WithError(err).WithField("handler", "RefreshRates").Error(msg)
		writeError(w, http.StatusBadGateway, msg)
		return
	}
	writeJSON(w, http.StatusOK, newRatesResponse(snap))
}

// GetRate godoc
// @Summary Exchange rate between two currencies
// @Tags Rates
// @Produce json
// @Param from path string true "Source currency"
// @Param to path string true "Target currency"
// @Success 200 {object} RateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	from := normalizeCode(chi.URLParam(r, "from"))
	to := normalizeCode(chi.URLParam(r, "to"))

	if err := h.validator.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	value, err := h.converter.GetRate(r.Context(), from, to)
	if err != nil {
		msg := "ups, couldn't get rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRate", "from": from, "to": to}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RateResponse{From: from, To: to, Value: value})
}

func newRatesResponse(snap domain.RateSnapshot) RatesResponse {
	return RatesResponse{
		Base:      domain.BaseCurrency,
		Rates:     snap.Rates,
		FetchedAt: snap.FetchedAt,
		Fallback:  snap.Fallback,
	}
}
