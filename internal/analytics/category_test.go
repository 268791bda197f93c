package analytics

import (
	"math/rand"
	"testing"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory_Example(t *testing.T) {
	totals := GroupByCategory(sampleExpenses())

	require.Len(t, totals, 2)
	assert.Equal(t, "food", totals[0].Category)
	assert.Equal(t, "80.00", totals[0].Total.StringFixed(2))
	assert.Equal(t, "travel", totals[1].Category)
	assert.Equal(t, "20.00", totals[1].Total.StringFixed(2))
}

func TestGroupByCategory_FirstSeenOrderAndCaseSensitive(t *testing.T) {
	expenses := []*domain.Expense{
		expense("5", "rent", date(2024, 3, 1)),
		expense("1", "Food", date(2024, 1, 1)),
		expense("2", "food", date(2024, 2, 1)),
		expense("3", "Food", date(2024, 2, 2)),
	}

	totals := GroupByCategory(expenses)

	require.Len(t, totals, 3)
	assert.Equal(t, []string{"rent", "Food", "food"}, []string{totals[0].Category, totals[1].Category, totals[2].Category})
	assert.Equal(t, "4.00", totals[1].Total.StringFixed(2))
	assert.Equal(t, "2.00", totals[2].Total.StringFixed(2))
}

func TestGroupByCategory_EmptyAndNil(t *testing.T) {
	assert.NotNil(t, GroupByCategory(nil))
	assert.Empty(t, GroupByCategory(nil))

	totals := GroupByCategory([]*domain.Expense{nil, expense("7", "misc", date(2024, 1, 1)), nil})
	require.Len(t, totals, 1)
	assert.Equal(t, "7.00", totals[0].Total.StringFixed(2))
}

func TestGroupByCategory_ConservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"food", "travel", "bills", "ott", "shopping"}

	for run := 0; run < 20; run++ {
		expenses := make([]*domain.Expense, 0)
		n := rng.Intn(50)
		for i := 0; i < n; i++ {
			amount := decimal.New(rng.Int63n(100000), -2)
			e := expense("0", categories[rng.Intn(len(categories))], date(2023+rng.Intn(2), 1+rngMonth(rng), 1+rng.Intn(28)))
			e.Amount = amount
			expenses = append(expenses, e)
		}

		sum := decimal.Zero
		for _, ct := range GroupByCategory(expenses) {
			sum = sum.Add(ct.Total)
		}
		assert.True(t, sum.Equal(SumAmounts(expenses)), "run %d: category sum %s != %s", run, sum, SumAmounts(expenses))
	}
}

func TestTopCategories(t *testing.T) {
	totals := []domain.CategoryTotal{
		{Category: "a", Total: decimal.NewFromInt(1)},
		{Category: "b", Total: decimal.NewFromInt(100)},
		{Category: "c", Total: decimal.NewFromInt(50)},
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"takes first n not largest", 2, []string{"a", "b"}},
		{"n larger than input", 8, []string{"a", "b", "c"}},
		{"zero", 0, []string{}},
		{"negative", -1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopCategories(totals, tt.n)
			names := make([]string, 0, len(got))
			for _, ct := range got {
				names = append(names, ct.Category)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestTopCategories_DoesNotAliasInput(t *testing.T) {
	totals := []domain.CategoryTotal{{Category: "a", Total: decimal.NewFromInt(1)}}
	top := TopCategories(totals, 1)
	top[0].Category = "changed"
	assert.Equal(t, "a", totals[0].Category)
}

func TestSumIncomes(t *testing.T) {
	incomes := []*domain.Income{
		{Amount: decimal.NewFromInt(1000)},
		nil,
		{Amount: decimal.RequireFromString("250.50")},
	}
	assert.Equal(t, "1250.50", SumIncomes(incomes).StringFixed(2))
	assert.True(t, SumIncomes(nil).IsZero())
}
