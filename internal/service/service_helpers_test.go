package service

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/testutil"
)

// testNow is the fixed "now" every service test runs at
var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func testClock() *Clock {
	return NewFixedClock(testNow)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func expense(amount, category string, date time.Time) *domain.Expense {
	return &domain.Expense{
		Amount:    testutil.Money(amount),
		Category:  category,
		Date:      date,
		CreatedAt: date,
	}
}

func income(amount string, date time.Time) *domain.Income {
	return &domain.Income{
		Amount: testutil.Money(amount),
		Source: "Salary",
		Date:   date,
	}
}
