package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every API handler for route registration
type Handlers struct {
	Expense   *ExpenseHandler
	Goal      *GoalHandler
	Income    *IncomeHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Chart     *ChartHandler
	WebSocket *WebSocketHandler
}

// RegisterRoutes sets up all API routes. exportLimit guards the report endpoints.
func RegisterRoutes(e *echo.Echo, h Handlers, exportLimit echo.MiddlewareFunc) {
	// API version 1
	api := e.Group("/api/v1")

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("", h.Expense.GetExpenses)
	expenses.GET("/:id", h.Expense.GetExpense)
	expenses.PUT("/:id", h.Expense.UpdateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	// Goal routes
	goals := api.Group("/goals")
	goals.POST("", h.Goal.CreateGoal)
	goals.GET("", h.Goal.GetGoals)
	goals.GET("/:id", h.Goal.GetGoal)
	goals.PUT("/:id", h.Goal.UpdateGoal)
	goals.DELETE("/:id", h.Goal.DeleteGoal)

	// Income routes
	incomes := api.Group("/incomes")
	incomes.POST("", h.Income.CreateIncome)
	incomes.GET("", h.Income.GetIncomes)
	incomes.DELETE("/:id", h.Income.DeleteIncome)

	// Dashboard and analytics routes
	api.GET("/dashboard", h.Dashboard.GetDashboard)
	api.POST("/analytics/preview", h.Dashboard.Preview)
	api.GET("/charts/:kind", h.Chart.GetChart)

	// Report routes (rate limited)
	reports := api.Group("/reports")
	if exportLimit != nil {
		reports.Use(exportLimit)
	}
	reports.GET("/expenses.:format", h.Report.DownloadExpenses)
	reports.POST("/archive", h.Report.ArchiveExpenses)

	// WebSocket endpoint
	e.GET("/ws", h.WebSocket.HandleWS)
}
