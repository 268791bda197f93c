package report

import (
	"time"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func sampleData() *Data {
	expenses := []*domain.Expense{
		{ID: uuid.New(), Amount: decimal.RequireFromString("12.5"), Category: "Food", Note: strPtr("lunch, with team"), Date: date(2024, 3, 2)},
		{ID: uuid.New(), Amount: decimal.RequireFromString("40"), Category: "Transport", Date: date(2024, 3, 5)},
		{ID: uuid.New(), Amount: decimal.RequireFromString("7.25"), Category: "Food", Date: date(2024, 3, 9)},
	}
	from := date(2024, 3, 1)
	return &Data{
		Expenses:    expenses,
		Categories:  analytics.GroupByCategory(expenses),
		Total:       analytics.SumAmounts(expenses),
		Range:       domain.DateRange{From: &from},
		GeneratedAt: date(2024, 3, 31),
	}
}
