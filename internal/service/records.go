package service

import (
	"github.com/fingold/fingold-backend/internal/domain"
)

// loadRecords fetches the expenses and incomes the aggregates are computed
// from. Every expense is loaded; the listing limit does not apply here.
func loadRecords(expenseRepo domain.ExpenseRepository, incomeRepo domain.IncomeRepository) ([]*domain.Expense, []*domain.Income, error) {
	expenses, err := expenseRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	incomes, err := incomeRepo.List()
	if err != nil {
		return nil, nil, err
	}
	return expenses, incomes, nil
}
