package analytics

import (
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Alert messages
const (
	LowSavingsMessage       = "Savings are under 10% of income. Consider reducing expenses."
	SpendingIncreaseMessage = "Spending increased by more than 20% compared to last month."
	HealthyMessage          = "No alerts. Your finances look healthy."
)

type alertRule struct {
	applies func(stats domain.FinancialStats) bool
	alert   domain.Alert
}

// alertRules are evaluated independently, in this order
var alertRules = []alertRule{
	{
		applies: func(s domain.FinancialStats) bool {
			return s.SavingsPercent != nil && s.SavingsPercent.LessThan(decimal.NewFromInt(domain.LowSavingsThreshold))
		},
		alert: domain.Alert{Type: domain.AlertTypeWarning, Message: LowSavingsMessage},
	},
	{
		applies: func(s domain.FinancialStats) bool {
			return s.MonthOverMonthIncrease != nil && s.MonthOverMonthIncrease.GreaterThan(decimal.NewFromInt(domain.SpendingIncreaseThreshold))
		},
		alert: domain.Alert{Type: domain.AlertTypeDanger, Message: SpendingIncreaseMessage},
	},
}

// DeriveAlerts returns every alert whose rule holds for stats. When none
// holds the result is a single info alert.
func DeriveAlerts(stats domain.FinancialStats) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(alertRules))
	for _, rule := range alertRules {
		if rule.applies(stats) {
			alerts = append(alerts, rule.alert)
		}
	}

	if len(alerts) == 0 {
		alerts = append(alerts, domain.Alert{Type: domain.AlertTypeInfo, Message: HealthyMessage})
	}
	return alerts
}
