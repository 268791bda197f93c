package analytics

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
)

// ComputeStats derives income, total spend, savings rate and month-over-month
// spend change as of today
func ComputeStats(expenses []*domain.Expense, incomes []*domain.Income, today time.Time) domain.FinancialStats {
	income := SumIncomes(incomes)
	totalExpenses := SumAmounts(expenses)
	health := ComputeHealth(income, totalExpenses)
	increase := MonthOverMonthIncrease(GroupByMonth(expenses), today)

	return domain.FinancialStats{
		Income:                 income,
		TotalExpenses:          totalExpenses,
		SavingsPercent:         &health.SavingsPercent,
		MonthOverMonthIncrease: &increase,
	}
}

// BuildDashboard assembles every dashboard figure from the raw records
func BuildDashboard(expenses []*domain.Expense, incomes []*domain.Income, today time.Time, rangeInMonths int) *domain.DashboardSummary {
	stats := ComputeStats(expenses, incomes, today)

	return &domain.DashboardSummary{
		Stats:         stats,
		Health:        ComputeHealth(stats.Income, stats.TotalExpenses),
		Range:         rangeInMonths,
		BalanceSeries: ComputeBalanceSeries(expenses, stats.Income, rangeInMonths),
		TopCategories: TopCategories(GroupByCategory(expenses), domain.DefaultTopCategories),
		RecentMonths:  RecentMonths(GroupByMonth(expenses), domain.DefaultRecentMonths),
		Alerts:        DeriveAlerts(stats),
		GeneratedAt:   today,
	}
}
