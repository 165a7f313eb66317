package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fintrack/internal/domain"
	"fintrack/internal/platform/validation"
	"fintrack/internal/rate"
	"math"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Validator interface {
	ValidateCodes(from, to string) error
	SupportedCodes() []string
}

type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (rate.Conversion, error)
	ConvertMany(ctx context.Context, amounts []float64, from, to string) ([]float64, error)
	GetRate(ctx context.Context, from, to string) (float64, error)
}

type RateStore interface {
	GetRates(ctx context.Context) domain.RateSnapshot
	Refresh(ctx context.Context) (domain.RateSnapshot, error)
}

type TransactionConverter interface {
	ConvertForDisplay(ctx context.Context, txs []domain.Transaction, displayCurrency string) ([]domain.ConvertedTransaction, domain.Totals, error)
}

type Formatter interface {
	Format(amount float64, code string) string
	FormatWithOriginal(amount float64, code string, originalAmount float64, originalCode string) string
}

type Handler struct {
	validator    Validator
	converter    Converter
	rates        RateStore
	transactions TransactionConverter
	formatter    Formatter
	validate     *validator.Validate
}

func NewRateHandler(
	currencyValidator Validator,
	converter Converter,
	rates RateStore,
	transactions TransactionConverter,
	formatter Formatter,
) *Handler {
	return &Handler{
		validator:    currencyValidator,
		converter:    converter,
		rates:        rates,
		transactions: transactions,
		formatter:    formatter,
		validate:     validation.New(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

// writeJSON encodes body before touching the response, so an unencodable
// body turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("failed to encode response")
		statusCode = http.StatusInternalServerError
		payload, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(payload, '\n'))
}

// decode reads a size-limited JSON body into dst, normalizes it and validates
// the result. On failure the 400 response is already written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, limit int64, dst normalizer) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	dst.normalize()
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validation.Message(err))
		return false
	}
	return true
}

type normalizer interface {
	normalize()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// finiteOrZero maps NaN and infinities to 0.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
