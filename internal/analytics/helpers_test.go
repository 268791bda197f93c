package analytics

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func expense(amount string, category string, d time.Time) *domain.Expense {
	return &domain.Expense{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     d,
	}
}

// sampleExpenses is the three-record example used across the package tests
func sampleExpenses() []*domain.Expense {
	return []*domain.Expense{
		expense("50", "food", date(2024, 1, 5)),
		expense("30", "food", date(2024, 2, 10)),
		expense("20", "travel", date(2024, 2, 15)),
	}
}
