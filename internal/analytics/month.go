package analytics

import (
	"sort"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/util"
	"github.com/shopspring/decimal"
)

// GroupByMonth sums amounts per calendar month of the expense date, taken in
// the date's own location. Expenses without a date are skipped. The result is
// sorted ascending by month key.
func GroupByMonth(expenses []*domain.Expense) []domain.MonthlyTotal {
	sums := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		if e == nil || e.Date.IsZero() {
			continue
		}
		key := util.MonthKey(e.Date)
		sums[key] = sums[key].Add(e.Amount)
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	// zero-padded keys sort chronologically
	sort.Strings(keys)

	totals := make([]domain.MonthlyTotal, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, domain.MonthlyTotal{MonthKey: key, Total: sums[key]})
	}
	return totals
}

// RecentMonths returns the last k entries of an ascending monthly series
func RecentMonths(totals []domain.MonthlyTotal, k int) []domain.MonthlyTotal {
	if k <= 0 {
		return []domain.MonthlyTotal{}
	}
	if k > len(totals) {
		k = len(totals)
	}
	out := make([]domain.MonthlyTotal, k)
	copy(out, totals[len(totals)-k:])
	return out
}

// MonthTotal returns the total for monthKey, or zero when the month is absent
func MonthTotal(totals []domain.MonthlyTotal, monthKey string) decimal.Decimal {
	for _, m := range totals {
		if m.MonthKey == monthKey {
			return m.Total
		}
	}
	return decimal.Zero
}

// MonthOverMonthIncrease returns the percent change in spend from the month
// before today's month to today's month, rounded to 2 places. It is zero when
// the previous month has no positive spend.
func MonthOverMonthIncrease(totals []domain.MonthlyTotal, today time.Time) decimal.Decimal {
	prevYear, prevMonth := util.PreviousMonth(today.Year(), int(today.Month()))

	current := MonthTotal(totals, util.MonthKey(today))
	previous := MonthTotal(totals, util.MonthKeyOf(prevYear, prevMonth))
	if !previous.IsPositive() {
		return decimal.Zero
	}

	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
