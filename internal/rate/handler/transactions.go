package handler

import (
	"fintrack/internal/domain"
	"fintrack/internal/transaction"
	"net/http"

	"github.com/sirupsen/logrus"
)

type TransactionInput struct {
	ID               string  `json:"id" validate:"required,max=64"`
	Type             string  `json:"type" validate:"oneof=income expense"`
	Amount           float64 `json:"amount" validate:"gte=0,lte=1e15"`
	Category         string  `json:"category" validate:"max=100"`
	Description      string  `json:"description" validate:"max=500"`
	Date             string  `json:"date"`
	OriginalCurrency string  `json:"original_currency,omitempty" validate:"omitempty,alpha,len=3"`
}

type ConvertTransactionsRequest struct {
	DisplayCurrency string             `json:"display_currency" validate:"required,alpha,len=3" example:"EUR"`
	Transactions    []TransactionInput `json:"transactions" validate:"max=5000,dive"`
}

func (req *ConvertTransactionsRequest) normalize() {
	req.DisplayCurrency = normalizeCode(req.DisplayCurrency)
	for i := range req.Transactions {
		req.Transactions[i].OriginalCurrency = normalizeCode(req.Transactions[i].OriginalCurrency)
	}
}

type ConvertTransactionsResponse struct {
	DisplayCurrency string                        `json:"display_currency" example:"EUR"`
	Transactions    []domain.ConvertedTransaction `json:"transactions"`
	Totals          domain.Totals                 `json:"totals"`
	Health          domain.FinancialHealth        `json:"health"`
	Error           string                        `json:"error,omitempty"`
}

// ConvertTransactions godoc
// @Summary Convert transactions for display
// @Description Expresses every transaction in the display currency and sums income, expenses and net, with a savings rate and health score. Transactions without original_currency are in USD.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body ConvertTransactionsRequest true "Transactions"
// @Success 200 {object} ConvertTransactionsResponse
// @Failure 400 {object} errorResponse
// @Router /transactions/convert [post]
func (h *Handler) ConvertTransactions(w http.ResponseWriter, r *http.Request) {
	var req ConvertTransactionsRequest
	if !h.decode(w, r, 1<<20, &req) {
		return
	}

	txs := make([]domain.Transaction, len(req.Transactions))
	for i, in := range req.Transactions {
		txs[i] = domain.Transaction{
			ID:               in.ID,
			Type:             domain.TransactionType(in.Type),
			Amount:           in.Amount,
			Category:         in.Category,
			Description:      in.Description,
			Date:             in.Date,
			OriginalCurrency: in.OriginalCurrency,
		}
	}

	converted, totals, err := h.transactions.ConvertForDisplay(r.Context(), txs, req.DisplayCurrency)
	res := ConvertTransactionsResponse{
		DisplayCurrency: req.DisplayCurrency,
		Transactions:    converted,
		Totals:          totals,
		Health:          transaction.Assess(totals),
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ConvertTransactions", "display_currency": req.DisplayCurrency}).Warn("some transactions kept their original amount")
		res.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, res)
}
