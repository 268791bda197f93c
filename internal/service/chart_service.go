package service

import (
	"errors"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/cache"
	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// ChartKind names a dashboard chart
type ChartKind string

const (
	ChartCategory ChartKind = "category"
	ChartMonthly  ChartKind = "monthly"
	ChartBalance  ChartKind = "balance"
)

// ErrUnknownChart is returned for a chart kind other than category, monthly or balance
var ErrUnknownChart = errors.New("unknown chart")

// ChartService renders dashboard charts, caching images by the data drawn
type ChartService struct {
	expenseRepo domain.ExpenseRepository
	incomeRepo  domain.IncomeRepository
	generator   *charts.Generator
	cache       *cache.ChartCache
}

// NewChartService creates a new ChartService. chartCache may be nil.
func NewChartService(expenseRepo domain.ExpenseRepository, incomeRepo domain.IncomeRepository, generator *charts.Generator, chartCache *cache.ChartCache) *ChartService {
	return &ChartService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		generator:   generator,
		cache:       chartCache,
	}
}

// Render returns the PNG for kind. rangeMonths only applies to the balance chart.
func (s *ChartService) Render(kind ChartKind, rangeMonths int) ([]byte, error) {
	if kind == ChartBalance && !domain.IsValidBalanceRange(rangeMonths) {
		return nil, domain.ErrInvalidRange
	}

	expenses, incomes, err := loadRecords(s.expenseRepo, s.incomeRepo)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ChartCategory:
		totals := analytics.TopCategories(analytics.GroupByCategory(expenses), domain.DefaultTopCategories)
		parts := make([]string, 0, len(totals)*2)
		for _, t := range totals {
			parts = append(parts, t.Category, t.Total.String())
		}
		return s.cached(kind, parts, func() ([]byte, error) {
			return s.generator.CategoryPie(totals)
		})

	case ChartMonthly:
		totals := analytics.RecentMonths(analytics.GroupByMonth(expenses), domain.DefaultRecentMonths)
		parts := make([]string, 0, len(totals)*2)
		for _, t := range totals {
			parts = append(parts, t.MonthKey, t.Total.String())
		}
		return s.cached(kind, parts, func() ([]byte, error) {
			return s.generator.MonthlyBar(totals)
		})

	case ChartBalance:
		points := analytics.ComputeBalanceSeries(expenses, analytics.SumIncomes(incomes), rangeMonths)
		parts := make([]string, 0, len(points)*2)
		for _, p := range points {
			parts = append(parts, p.MonthKey, p.Balance.String())
		}
		return s.cached(kind, parts, func() ([]byte, error) {
			return s.generator.BalanceLine(points)
		})
	}

	return nil, ErrUnknownChart
}

func (s *ChartService) cached(kind ChartKind, parts []string, render func() ([]byte, error)) ([]byte, error) {
	key := cache.Key(string(kind), parts...)
	if s.cache != nil {
		if img, ok := s.cache.Get(key); ok {
			log.Debug().Str("chart", string(kind)).Msg("Chart cache hit")
			return img, nil
		}
	}

	img, err := render()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, img)
	}
	return img, nil
}
