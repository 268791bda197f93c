package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).Render(&buf, FormatPDF, sampleData()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_ManyRowsSpansPages(t *testing.T) {
	data := sampleData()
	for i := 0; i < 120; i++ {
		data.Expenses = append(data.Expenses, &domain.Expense{
			ID:       uuid.New(),
			Amount:   decimal.NewFromInt(int64(i + 1)),
			Category: fmt.Sprintf("Category %d", i%5),
			Date:     date(2024, 3, 1+i%28),
		})
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).WritePDF(&buf, data))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_ZeroTotalsSkipsChart(t *testing.T) {
	data := &Data{
		Expenses:   []*domain.Expense{{Category: "Free", Amount: decimal.Zero, Date: date(2024, 3, 1)}},
		Categories: []domain.CategoryTotal{{Category: "Free", Total: decimal.Zero}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).WritePDF(&buf, data))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
