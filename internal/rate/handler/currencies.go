package handler

import (
	"fintrack/internal/currency"
	"fintrack/internal/domain"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type ListCurrenciesResponse struct {
	Currencies []domain.CurrencyInfo `json:"currencies"`
}

type FormatResponse struct {
	Code      string  `json:"code" example:"EUR"`
	Amount    float64 `json:"amount" example:"1234.5"`
	Formatted string  `json:"formatted" example:"€1,234.50"`
}

// ListCurrencies godoc
// @Summary List supported currencies
// @Description Display metadata for every supported currency, ordered by code
// @Tags Currencies
// @Produce json
// @Success 200 {object} ListCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ListCurrenciesResponse{Currencies: currency.List()})
}

// GetCurrency godoc
// @Summary Get currency metadata
// @Tags Currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} domain.CurrencyInfo
// @Failure 404 {object} errorResponse
// @Router /currencies/{code} [get]
func (h *Handler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	code := normalizeCode(chi.URLParam(r, "code"))

	info, ok := currency.GetCurrencyInfo(code)
	if !ok {
		writeError(w, http.StatusNotFound, "currency not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// FormatAmount godoc
// @Summary Format an amount for display
// @Description Unknown codes are rendered as "<amount> <CODE>". NaN and infinite amounts are shown as 0. When an original amount and currency are given, the original is appended in parentheses.
// @Tags Currencies
// @Produce json
// @Param code path string true "Currency code"
// @Param amount query number true "Amount"
// @Param original_amount query number false "Amount before conversion"
// @Param original_currency query string false "Currency before conversion"
// @Success 200 {object} FormatResponse
// @Failure 400 {object} errorResponse
// @Router /currencies/{code}/format [get]
func (h *Handler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	code := normalizeCode(chi.URLParam(r, "code"))
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(strings.TrimSpace(q.Get("amount")), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a number")
		return
	}
	amount = finiteOrZero(amount)

	formatted := h.formatter.Format(amount, code)
	if origCode := normalizeCode(q.Get("original_currency")); origCode != "" {
		origAmount, parseErr := strconv.ParseFloat(strings.TrimSpace(q.Get("original_amount")), 64)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "original_amount must be a number")
			return
		}
		origAmount = finiteOrZero(origAmount)
		formatted = h.formatter.FormatWithOriginal(amount, code, origAmount, origCode)
	}

	writeJSON(w, http.StatusOK, FormatResponse{Code: code, Amount: amount, Formatted: formatted})
}
