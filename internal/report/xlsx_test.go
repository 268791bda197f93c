package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleData()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExpenseSheet, CategorySheet}, f.GetSheetList())

	rows, err := f.GetRows(ExpenseSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Note"}, rows[0])
	assert.Equal(t, []string{"2024-03-02", "Food", "12.50", "lunch, with team"}, rows[1])
	assert.Equal(t, "Transport", rows[2][1])
	assert.Equal(t, "40.00", rows[2][2])

	summary, err := f.GetRows(CategorySheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"Category", "Total"}, summary[0])
	assert.Equal(t, []string{"Food", "19.75"}, summary[1])
	assert.Equal(t, []string{"Transport", "40.00"}, summary[2])
	assert.Equal(t, []string{"Total", "59.75"}, summary[3])
}
