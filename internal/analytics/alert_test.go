package analytics

import (
	"testing"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestDeriveAlerts(t *testing.T) {
	tests := []struct {
		name      string
		stats     domain.FinancialStats
		wantTypes []domain.AlertType
	}{
		{
			name:      "low savings only",
			stats:     domain.FinancialStats{SavingsPercent: pct(5), MonthOverMonthIncrease: pct(5)},
			wantTypes: []domain.AlertType{domain.AlertTypeWarning},
		},
		{
			name:      "healthy",
			stats:     domain.FinancialStats{SavingsPercent: pct(50), MonthOverMonthIncrease: pct(5)},
			wantTypes: []domain.AlertType{domain.AlertTypeInfo},
		},
		{
			name:      "spending spike only",
			stats:     domain.FinancialStats{SavingsPercent: pct(50), MonthOverMonthIncrease: pct(25)},
			wantTypes: []domain.AlertType{domain.AlertTypeDanger},
		},
		{
			name:      "both rules fire in declared order",
			stats:     domain.FinancialStats{SavingsPercent: pct(5), MonthOverMonthIncrease: pct(25)},
			wantTypes: []domain.AlertType{domain.AlertTypeWarning, domain.AlertTypeDanger},
		},
		{
			name:      "thresholds are strict",
			stats:     domain.FinancialStats{SavingsPercent: pct(10), MonthOverMonthIncrease: pct(20)},
			wantTypes: []domain.AlertType{domain.AlertTypeInfo},
		},
		{
			name:      "unknown figures fire nothing",
			stats:     domain.FinancialStats{},
			wantTypes: []domain.AlertType{domain.AlertTypeInfo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := DeriveAlerts(tt.stats)
			types := make([]domain.AlertType, 0, len(alerts))
			for _, a := range alerts {
				types = append(types, a.Type)
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

func TestDeriveAlerts_Messages(t *testing.T) {
	alerts := DeriveAlerts(domain.FinancialStats{SavingsPercent: pct(1), MonthOverMonthIncrease: pct(90)})
	require.Len(t, alerts, 2)
	assert.Equal(t, LowSavingsMessage, alerts[0].Message)
	assert.Equal(t, SpendingIncreaseMessage, alerts[1].Message)

	healthy := DeriveAlerts(domain.FinancialStats{SavingsPercent: pct(40)})
	require.Len(t, healthy, 1)
	assert.Equal(t, HealthyMessage, healthy[0].Message)
}
