package domain

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID               string          `json:"id"`
	Type             TransactionType `json:"type"`
	Amount           float64         `json:"amount"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Date             string          `json:"date"`
	OriginalCurrency string          `json:"original_currency,omitempty"`
}

type ConvertedTransaction struct {
	Transaction
	DisplayAmount    float64  `json:"display_amount"`
	DisplayCurrency  string   `json:"display_currency"`
	Converted        bool     `json:"converted"`
	ConversionRate   *float64 `json:"conversion_rate,omitempty"`
	OriginalAmount   *float64 `json:"original_amount,omitempty"`
	ConversionFailed bool     `json:"conversion_failed,omitempty"`
}

type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type HealthRating string

const (
	HealthExcellent HealthRating = "Excellent"
	HealthGood      HealthRating = "Good"
	HealthFair      HealthRating = "Fair"
	HealthPoor      HealthRating = "Poor"
)

// FinancialHealth scores a period's totals. Rates are percentages.
type FinancialHealth struct {
	SavingsRate  float64      `json:"savings_rate"`
	ExpenseRatio float64      `json:"expense_ratio"`
	Score        int          `json:"score"`
	Rating       HealthRating `json:"rating"`
}
