package analytics

import (
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// GroupByCategory sums amounts per category label. Labels are compared
// exactly as given and the result keeps first-seen order.
func GroupByCategory(expenses []*domain.Expense) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0)
	index := make(map[string]int)

	for _, e := range expenses {
		if e == nil {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	return totals
}

// TopCategories returns the first n totals in their existing order.
// It does not rank by amount.
func TopCategories(totals []domain.CategoryTotal, n int) []domain.CategoryTotal {
	if n <= 0 {
		return []domain.CategoryTotal{}
	}
	if n > len(totals) {
		n = len(totals)
	}
	out := make([]domain.CategoryTotal, n)
	copy(out, totals[:n])
	return out
}

// SumAmounts returns the grand total of all expense amounts
func SumAmounts(expenses []*domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e != nil {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumIncomes returns the grand total of all income amounts
func SumIncomes(incomes []*domain.Income) decimal.Decimal {
	total := decimal.Zero
	for _, in := range incomes {
		if in != nil {
			total = total.Add(in.Amount)
		}
	}
	return total
}
