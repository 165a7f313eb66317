package transaction

import (
	"context"
	"fintrack/internal/domain"
	"fintrack/internal/rate"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BatchConverter interface {
	ConvertBatch(ctx context.Context, items []rate.BatchItem, to string) ([]rate.Conversion, error)
}

type Service struct {
	converter BatchConverter
}

// ConvertForDisplay expresses every transaction in displayCurrency. Transactions
// without an original currency are taken to be in the base currency. A failed
// conversion keeps the stored amount and marks the transaction; the joined
// conversion errors are returned next to the otherwise complete result.
func (s *Service) ConvertForDisplay(ctx context.Context, txs []domain.Transaction, displayCurrency string) ([]domain.ConvertedTransaction, domain.Totals, error) {
	items := make([]rate.BatchItem, len(txs))
	for i, tx := range txs {
		items[i] = rate.BatchItem{Amount: tx.Amount, From: sourceCurrency(tx)}
	}

	conversions, convErr := s.converter.ConvertBatch(ctx, items, displayCurrency)
	if convErr != nil {
		logrus.WithError(convErr).WithField("display_currency", displayCurrency).Warn("Some transactions were not converted")
	}

	out := make([]domain.ConvertedTransaction, len(txs))
	for i, tx := range txs {
		conv := conversions[i]
		from := sourceCurrency(tx)
		ct := domain.ConvertedTransaction{
			Transaction:     tx,
			DisplayAmount:   conv.Amount,
			DisplayCurrency: displayCurrency,
			Converted:       conv.Converted,
		}
		if from != displayCurrency && !conv.Converted {
			ct.ConversionFailed = true
		}
		if conv.Converted {
			original := tx.Amount
			ct.OriginalAmount = &original
			ct.OriginalCurrency = from
			if r := conv.Amount / tx.Amount; tx.Amount != 0 && !math.IsNaN(r) && !math.IsInf(r, 0) {
				ct.ConversionRate = &r
			}
		}
		out[i] = ct
	}

	return out, Totals(out), convErr
}

// Totals sums display amounts by transaction type. Non-finite amounts are skipped.
func Totals(txs []domain.ConvertedTransaction) domain.Totals {
	income, expenses := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if math.IsNaN(tx.DisplayAmount) || math.IsInf(tx.DisplayAmount, 0) {
			logrus.WithField("transaction_id", tx.ID).Warn("Skipping non-finite amount in totals")
			continue
		}
		amount := decimal.NewFromFloat(tx.DisplayAmount)
		switch tx.Type {
		case domain.TransactionIncome:
			income = income.Add(amount)
		case domain.TransactionExpense:
			expenses = expenses.Add(amount)
		}
	}
	return domain.Totals{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Net:      income.Sub(expenses).InexactFloat64(),
	}
}

func sourceCurrency(tx domain.Transaction) string {
	if tx.OriginalCurrency == "" {
		return domain.BaseCurrency
	}
	return tx.OriginalCurrency
}

func NewService(converter BatchConverter) *Service {
	return &Service{converter: converter}
}
