package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// StatsResponse represents the financial stats in API responses
type StatsResponse struct {
	Income                 string  `json:"income"`
	TotalExpenses          string  `json:"totalExpenses"`
	SavingsPercent         *string `json:"savingsPercent,omitempty"`
	MonthOverMonthIncrease *string `json:"monthOverMonthIncrease,omitempty"`
}

// HealthResponse represents the balance health in API responses
type HealthResponse struct {
	CurrentBalance string `json:"currentBalance"`
	SavingsPercent string `json:"savingsPercent"`
}

// BalancePointResponse represents one point of the balance series
type BalancePointResponse struct {
	Month   string `json:"month"`
	Balance string `json:"balance"`
}

// CategoryTotalResponse represents a category rollup
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// MonthlyTotalResponse represents a monthly rollup
type MonthlyTotalResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// DashboardResponse represents the dashboard API response
type DashboardResponse struct {
	Stats         StatsResponse           `json:"stats"`
	Health        HealthResponse          `json:"health"`
	Range         int                     `json:"range"`
	BalanceSeries []BalancePointResponse  `json:"balanceSeries"`
	TopCategories []CategoryTotalResponse `json:"topCategories"`
	RecentMonths  []MonthlyTotalResponse  `json:"recentMonths"`
	Alerts        []domain.Alert          `json:"alerts"`
	GeneratedAt   string                  `json:"generatedAt"`
}

// PreviewRequest represents a dashboard preview request. Amounts may be
// numbers or numeric strings.
type PreviewRequest struct {
	Expenses []analytics.RawExpense `json:"expenses"`
	Goals    []analytics.RawGoal    `json:"goals"`
	Income   interface{}            `json:"income"`
	Range    int                    `json:"range,omitempty"`
}

// PreviewResponse represents the dashboard preview API response
type PreviewResponse struct {
	Dashboard DashboardResponse `json:"dashboard"`
	Goals     []GoalResponse    `json:"goals"`
}

// GetDashboard handles GET /api/v1/dashboard
// Accepts an optional range query param (1, 3, 6 or 12 months)
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	months, ok := parseBalanceRange(c)
	if !ok {
		return NewFieldError(c, "range", balanceRangeMessage)
	}

	summary, err := h.dashboardService.GetDashboard(months)
	if err != nil {
		log.Error().Err(err).Int("range", months).Msg("Failed to get dashboard")
		return NewInternalError(c, "Failed to get dashboard")
	}

	return c.JSON(http.StatusOK, toDashboardResponse(summary))
}

// Preview handles POST /api/v1/analytics/preview
// Aggregates the posted records without storing them
func (h *DashboardHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	preview, err := h.dashboardService.Preview(service.PreviewInput{
		Expenses: req.Expenses,
		Goals:    req.Goals,
		Income:   req.Income,
		Range:    req.Range,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return NewFieldError(c, "range", balanceRangeMessage)
		}
		log.Error().Err(err).Msg("Failed to compute preview")
		return NewInternalError(c, "Failed to compute preview")
	}

	goals := make([]GoalResponse, len(preview.Goals))
	for i, g := range preview.Goals {
		goals[i] = toGoalResponse(g)
	}

	return c.JSON(http.StatusOK, PreviewResponse{
		Dashboard: toDashboardResponse(preview.Summary),
		Goals:     goals,
	})
}

func toDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	balance := make([]BalancePointResponse, len(s.BalanceSeries))
	for i, p := range s.BalanceSeries {
		balance[i] = BalancePointResponse{Month: p.MonthKey, Balance: p.Balance.StringFixed(2)}
	}

	categories := make([]CategoryTotalResponse, len(s.TopCategories))
	for i, t := range s.TopCategories {
		categories[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total.StringFixed(2)}
	}

	months := make([]MonthlyTotalResponse, len(s.RecentMonths))
	for i, m := range s.RecentMonths {
		months[i] = MonthlyTotalResponse{Month: m.MonthKey, Total: m.Total.StringFixed(2)}
	}

	return DashboardResponse{
		Stats: StatsResponse{
			Income:                 s.Stats.Income.StringFixed(2),
			TotalExpenses:          s.Stats.TotalExpenses.StringFixed(2),
			SavingsPercent:         optionalFixed(s.Stats.SavingsPercent),
			MonthOverMonthIncrease: optionalFixed(s.Stats.MonthOverMonthIncrease),
		},
		Health: HealthResponse{
			CurrentBalance: s.Health.CurrentBalance.StringFixed(2),
			SavingsPercent: s.Health.SavingsPercent.StringFixed(2),
		},
		Range:         s.Range,
		BalanceSeries: balance,
		TopCategories: categories,
		RecentMonths:  months,
		Alerts:        s.Alerts,
		GeneratedAt:   s.GeneratedAt.Format(time.RFC3339),
	}
}

func optionalFixed(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
