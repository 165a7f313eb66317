package transaction

import "fintrack/internal/domain"

// SavingsRate is the share of income left after expenses, in percent.
// It is 0 when there is no income.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// ExpenseRatio is expenses as a percentage of income. Without income any
// spending counts as 100%.
func ExpenseRatio(income, expenses float64) float64 {
	if income <= 0 {
		if expenses > 0 {
			return 100
		}
		return 0
	}
	return expenses / income * 100
}

// Assess scores totals out of 100: up to 50 points for the savings rate and
// up to 50 for a low expense ratio.
func Assess(t domain.Totals) domain.FinancialHealth {
	savings := SavingsRate(t.Income, t.Expenses)
	ratio := ExpenseRatio(t.Income, t.Expenses)

	score := savingsPoints(savings) + expensePoints(ratio)
	return domain.FinancialHealth{
		SavingsRate:  savings,
		ExpenseRatio: ratio,
		Score:        score,
		Rating:       rating(score),
	}
}

func savingsPoints(rate float64) int {
	switch {
	case rate >= 20:
		return 50
	case rate >= 15:
		return 40
	case rate >= 10:
		return 30
	case rate >= 5:
		return 20
	default:
		return 10
	}
}

func expensePoints(ratio float64) int {
	switch {
	case ratio <= 50:
		return 50
	case ratio <= 70:
		return 40
	case ratio <= 80:
		return 30
	case ratio <= 90:
		return 20
	default:
		return 10
	}
}

func rating(score int) domain.HealthRating {
	switch {
	case score >= 80:
		return domain.HealthExcellent
	case score >= 60:
		return domain.HealthGood
	case score >= 40:
		return domain.HealthFair
	default:
		return domain.HealthPoor
	}
}
