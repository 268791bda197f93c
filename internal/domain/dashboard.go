package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed spend of one category label
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTotal is the summed spend of one calendar month, keyed "YYYY-MM"
type MonthlyTotal struct {
	MonthKey string          `json:"monthKey"`
	Total    decimal.Decimal `json:"total"`
}

// BalancePoint is the running balance after a month's spend
type BalancePoint struct {
	MonthKey string          `json:"monthKey"`
	Balance  decimal.Decimal `json:"balance"`
}

// HealthMetrics holds balance figures derived from income and spend
type HealthMetrics struct {
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	SavingsPercent decimal.Decimal `json:"savingsPercent"`
}

// FinancialStats is the input to alert derivation.
// A nil field means the figure is unknown and no rule reading it fires.
type FinancialStats struct {
	Income                 decimal.Decimal  `json:"income"`
	TotalExpenses          decimal.Decimal  `json:"totalExpenses"`
	SavingsPercent         *decimal.Decimal `json:"savingsPercent,omitempty"`
	MonthOverMonthIncrease *decimal.Decimal `json:"monthOverMonthIncrease,omitempty"`
}

// AlertType is the severity of an alert
type AlertType string

const (
	AlertTypeInfo    AlertType = "info"
	AlertTypeWarning AlertType = "warning"
	AlertTypeDanger  AlertType = "danger"
)

// Alert is a rule-triggered advisory message
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

// Alert thresholds, in percent
const (
	LowSavingsThreshold       = 10
	SpendingIncreaseThreshold = 20
)

// Display defaults
const (
	DefaultTopCategories = 8
	DefaultRecentMonths  = 6
	DefaultBalanceRange  = 6
)

// BalanceRanges are the month windows the balance series can be requested for
var BalanceRanges = []int{1, 3, 6, 12}

// IsValidBalanceRange reports whether months is one of BalanceRanges
func IsValidBalanceRange(months int) bool {
	for _, r := range BalanceRanges {
		if r == months {
			return true
		}
	}
	return false
}

// DateRange is an inclusive calendar-day window. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// DashboardSummary contains everything the dashboard renders
type DashboardSummary struct {
	Stats         FinancialStats  `json:"stats"`
	Health        HealthMetrics   `json:"health"`
	Range         int             `json:"range"`
	BalanceSeries []BalancePoint  `json:"balanceSeries"`
	TopCategories []CategoryTotal `json:"topCategories"`
	RecentMonths  []MonthlyTotal  `json:"recentMonths"`
	Alerts        []Alert         `json:"alerts"`
	GeneratedAt   time.Time       `json:"generatedAt"`
}
