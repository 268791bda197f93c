package service

import (
	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
)

// DashboardService assembles dashboard figures from stored records
type DashboardService struct {
	expenseRepo domain.ExpenseRepository
	incomeRepo  domain.IncomeRepository
	clock       *Clock
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(expenseRepo domain.ExpenseRepository, incomeRepo domain.IncomeRepository, clock *Clock) *DashboardService {
	return &DashboardService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		clock:       clock,
	}
}

// GetDashboard returns stats, health, the balance series for rangeMonths,
// top categories, recent months and alerts
func (s *DashboardService) GetDashboard(rangeMonths int) (*domain.DashboardSummary, error) {
	if !domain.IsValidBalanceRange(rangeMonths) {
		return nil, domain.ErrInvalidRange
	}

	expenses, incomes, err := loadRecords(s.expenseRepo, s.incomeRepo)
	if err != nil {
		return nil, err
	}

	summary := analytics.BuildDashboard(expenses, incomes, s.clock.Today(), rangeMonths)
	summary.GeneratedAt = s.clock.Now()
	return summary, nil
}

// PreviewInput is a loosely typed snapshot to aggregate without storing it
type PreviewInput struct {
	Expenses []analytics.RawExpense
	Goals    []analytics.RawGoal
	Income   any
	Range    int
}

// Preview is the dashboard computed from a PreviewInput
type Preview struct {
	Summary *domain.DashboardSummary
	Goals   []*domain.GoalWithView
}

// Preview runs the dashboard aggregation over caller-supplied records.
// Malformed amounts count as zero and malformed dates are ignored.
func (s *DashboardService) Preview(input PreviewInput) (*Preview, error) {
	rangeMonths := input.Range
	if rangeMonths == 0 {
		rangeMonths = domain.DefaultBalanceRange
	}
	if !domain.IsValidBalanceRange(rangeMonths) {
		return nil, domain.ErrInvalidRange
	}

	loc := s.clock.Location()
	today := s.clock.Today()
	expenses := analytics.NormalizeExpenses(input.Expenses, loc)
	incomes := []*domain.Income{{Amount: analytics.CoerceAmount(input.Income), Date: today}}

	summary := analytics.BuildDashboard(expenses, incomes, today, rangeMonths)
	summary.GeneratedAt = s.clock.Now()

	goals := make([]*domain.GoalWithView, len(input.Goals))
	for i, raw := range input.Goals {
		goal := analytics.NormalizeGoal(raw, loc)
		goals[i] = &domain.GoalWithView{Goal: goal, View: analytics.ComputeGoalView(goal, today)}
	}

	return &Preview{Summary: summary, Goals: goals}, nil
}
