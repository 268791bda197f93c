package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	today := date(2024, 2, 20)
	incomes := []*domain.Income{{Amount: decimal.NewFromInt(1000)}}

	stats := ComputeStats(sampleExpenses(), incomes, today)

	assert.Equal(t, "1000.00", stats.Income.StringFixed(2))
	assert.Equal(t, "100.00", stats.TotalExpenses.StringFixed(2))
	require.NotNil(t, stats.SavingsPercent)
	assert.Equal(t, "90.00", stats.SavingsPercent.StringFixed(2))
	require.NotNil(t, stats.MonthOverMonthIncrease)
	// January 50, February 50
	assert.Equal(t, "0.00", stats.MonthOverMonthIncrease.StringFixed(2))
}

func TestBuildDashboard(t *testing.T) {
	today := time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC)
	expenses := make([]*domain.Expense, 0)
	for i := 0; i < 10; i++ {
		// one category per month, January to October
		expenses = append(expenses, expense("10", fmt.Sprintf("cat-%d", i), date(2024, time.Month(i+1), 15)))
	}
	// a spike in October
	expenses = append(expenses, expense("20", "cat-9", date(2024, 10, 1)))
	incomes := []*domain.Income{{Amount: decimal.NewFromInt(110)}}

	summary := BuildDashboard(expenses, incomes, today, 3)

	assert.Equal(t, 3, summary.Range)
	assert.Len(t, summary.TopCategories, domain.DefaultTopCategories)
	assert.Equal(t, "cat-0", summary.TopCategories[0].Category)
	require.Len(t, summary.RecentMonths, domain.DefaultRecentMonths)
	assert.Equal(t, "2024-05", summary.RecentMonths[0].MonthKey)
	assert.Equal(t, "2024-10", summary.RecentMonths[5].MonthKey)

	require.Len(t, summary.BalanceSeries, 3)
	assert.Equal(t, "2024-08", summary.BalanceSeries[0].MonthKey)
	assert.Equal(t, "100.00", summary.BalanceSeries[0].Balance.StringFixed(2))
	assert.Equal(t, "60.00", summary.BalanceSeries[2].Balance.StringFixed(2))

	// income 110, spend 120
	assert.Equal(t, "-10.00", summary.Health.CurrentBalance.StringFixed(2))
	assert.Equal(t, "200.00", summary.Stats.MonthOverMonthIncrease.StringFixed(2))

	require.Len(t, summary.Alerts, 2)
	assert.Equal(t, domain.AlertTypeWarning, summary.Alerts[0].Type)
	assert.Equal(t, domain.AlertTypeDanger, summary.Alerts[1].Type)
	assert.Equal(t, today, summary.GeneratedAt)
}

func TestBuildDashboard_Empty(t *testing.T) {
	summary := BuildDashboard(nil, nil, time.Now(), domain.DefaultBalanceRange)

	assert.Empty(t, summary.TopCategories)
	assert.Empty(t, summary.RecentMonths)
	assert.Empty(t, summary.BalanceSeries)
	assert.True(t, summary.Health.SavingsPercent.IsZero())
	// zero income means zero savings, which is under the threshold
	require.Len(t, summary.Alerts, 1)
	assert.Equal(t, domain.AlertTypeWarning, summary.Alerts[0].Type)
}
