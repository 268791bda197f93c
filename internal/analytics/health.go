package analytics

import (
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeHealth derives the current balance and the savings rate.
// SavingsPercent is rounded to 2 places and is zero when income <= 0.
func ComputeHealth(income, totalExpenses decimal.Decimal) domain.HealthMetrics {
	balance := income.Sub(totalExpenses)

	savings := decimal.Zero
	if income.IsPositive() {
		savings = balance.Div(income).Mul(hundred).Round(2)
	}

	return domain.HealthMetrics{
		CurrentBalance: balance,
		SavingsPercent: savings,
	}
}

// ComputeBalanceSeries walks the last rangeInMonths months oldest to newest,
// starting from income and subtracting each month's spend before emitting
// that month's point.
// The walk starts from total income, not from the current balance.
func ComputeBalanceSeries(expenses []*domain.Expense, income decimal.Decimal, rangeInMonths int) []domain.BalancePoint {
	if rangeInMonths <= 0 {
		return []domain.BalancePoint{}
	}

	months := RecentMonths(GroupByMonth(expenses), rangeInMonths)
	points := make([]domain.BalancePoint, 0, len(months))

	running := income
	for _, m := range months {
		running = running.Sub(m.Total)
		points = append(points, domain.BalancePoint{MonthKey: m.MonthKey, Balance: running})
	}

	return points
}
