package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type ConvertRequest struct {
	Amount *float64 `json:"amount" validate:"required,gte=0,lte=1e15" example:"100"`
	From   string   `json:"from" validate:"required,alpha,len=3" example:"USD"`
	To     string   `json:"to" validate:"required,alpha,len=3" example:"EUR"`
}

func (req *ConvertRequest) normalize() {
	req.From = normalizeCode(req.From)
	req.To = normalizeCode(req.To)
}

// ConvertResponse always carries a usable amount. When converted is false and
// error is set, result equals the requested amount.
type ConvertResponse struct {
	Amount    float64 `json:"amount" example:"100"`
	From      string  `json:"from" example:"USD"`
	To        string  `json:"to" example:"EUR"`
	Result    float64 `json:"result" example:"85"`
	Rate      float64 `json:"rate" example:"0.85"`
	Converted bool    `json:"converted"`
	Fallback  bool    `json:"fallback"`
	Error     string  `json:"error,omitempty"`
}

type ConvertBatchRequest struct {
	Amounts []float64 `json:"amounts" validate:"max=1000,dive,gte=0,lte=1e15"`
	From    string    `json:"from" validate:"required,alpha,len=3" example:"USD"`
	To      string    `json:"to" validate:"required,alpha,len=3" example:"EUR"`
}

func (req *ConvertBatchRequest) normalize() {
	req.From = normalizeCode(req.From)
	req.To = normalizeCode(req.To)
}

type ConvertBatchResponse struct {
	From    string    `json:"from" example:"USD"`
	To      string    `json:"to" example:"EUR"`
	Results []float64 `json:"results"`
	Error   string    `json:"error,omitempty"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Converts through USD and rounds to cents. A failed conversion answers 200 with converted=false, the original amount and an error message.
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Router /conversions [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !h.decode(w, r, 1<<10, &req) {
		return
	}

	conv, err := h.converter.Convert(r.Context(), *req.Amount, req.From, req.To)
	res := ConvertResponse{
		Amount:    *req.Amount,
		From:      req.From,
		To:        req.To,
		Result:    conv.Amount,
		Rate:      conv.Rate,
		Converted: conv.Converted,
		Fallback:  conv.Fallback,
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": req.From, "to": req.To}).Warn("conversion failed, original amount returned")
		res.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, res)
}

// ConvertBatch godoc
// @Summary Convert many amounts
// @Description All amounts share one rate table and one currency pair. Failed elements keep their original amount.
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body ConvertBatchRequest true "Amounts"
// @Success 200 {object} ConvertBatchResponse
// @Failure 400 {object} errorResponse
// @Router /conversions/batch [post]
func (h *Handler) ConvertBatch(w http.ResponseWriter, r *http.Request) {
	var req ConvertBatchRequest
	if !h.decode(w, r, 32<<10, &req) {
		return
	}
	if req.Amounts == nil {
		req.Amounts = []float64{}
	}

	results, err := h.converter.ConvertMany(r.Context(), req.Amounts, req.From, req.To)
	res := ConvertBatchResponse{From: req.From, To: req.To, Results: results}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ConvertBatch", "from": req.From, "to": req.To, "count": len(req.Amounts)}).Warn("batch conversion failed, original amounts returned")
		res.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, res)
}
