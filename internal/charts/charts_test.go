package charts

import (
	"bytes"
	"testing"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertPNG(t *testing.T, img []byte) {
	t.Helper()
	require.NotEmpty(t, img)
	assert.True(t, bytes.HasPrefix(img, pngSignature), "expected PNG signature")
}

func TestCategoryPie(t *testing.T) {
	g := NewGenerator()

	img, err := g.CategoryPie([]domain.CategoryTotal{
		{Category: "Food", Total: dec("120.50")},
		{Category: "Transport", Total: dec("40")},
		{Category: "Empty", Total: decimal.Zero},
	})
	require.NoError(t, err)
	assertPNG(t, img)
}

func TestCategoryPie_NoData(t *testing.T) {
	g := NewGenerator()

	_, err := g.CategoryPie(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = g.CategoryPie([]domain.CategoryTotal{{Category: "Food", Total: decimal.Zero}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMonthlyBar(t *testing.T) {
	g := NewGeneratorWithSize(640, 320)

	tests := []struct {
		name   string
		totals []domain.MonthlyTotal
	}{
		{"several months", []domain.MonthlyTotal{
			{MonthKey: "2024-01", Total: dec("100")},
			{MonthKey: "2024-02", Total: dec("250.75")},
			{MonthKey: "2024-03", Total: dec("80")},
		}},
		{"single month", []domain.MonthlyTotal{{MonthKey: "2024-01", Total: dec("100")}}},
		{"all zero", []domain.MonthlyTotal{
			{MonthKey: "2024-01", Total: decimal.Zero},
			{MonthKey: "2024-02", Total: decimal.Zero},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := g.MonthlyBar(tt.totals)
			require.NoError(t, err)
			assertPNG(t, img)
		})
	}
}

func TestMonthlyBar_NoData(t *testing.T) {
	_, err := NewGenerator().MonthlyBar(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBalanceLine(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name   string
		points []domain.BalancePoint
	}{
		{"declining", []domain.BalancePoint{
			{MonthKey: "2024-01", Balance: dec("900")},
			{MonthKey: "2024-02", Balance: dec("650")},
			{MonthKey: "2024-03", Balance: dec("-20")},
		}},
		{"single month", []domain.BalancePoint{{MonthKey: "2024-01", Balance: dec("500")}}},
		{"flat", []domain.BalancePoint{
			{MonthKey: "2024-01", Balance: dec("500")},
			{MonthKey: "2024-02", Balance: dec("500")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := g.BalanceLine(tt.points)
			require.NoError(t, err)
			assertPNG(t, img)
		})
	}
}

func TestBalanceLine_NoData(t *testing.T) {
	_, err := NewGenerator().BalanceLine([]domain.BalancePoint{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPaddedRange(t *testing.T) {
	r := paddedRange([]float64{5, 10})
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 10.0, r.Max)

	r = paddedRange([]float64{-30, 10})
	assert.Equal(t, -30.0, r.Min)
	assert.Equal(t, 10.0, r.Max)

	r = paddedRange([]float64{0, 0})
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 1.0, r.Max)
}
