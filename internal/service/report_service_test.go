package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/report"
	"github.com/fingold/fingold-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture() *testutil.MockExpenseRepository {
	expenseRepo := testutil.NewMockExpenseRepository()
	expenseRepo.AddExpense(expense("12.50", "Food", day(2024, 3, 2)))
	expenseRepo.AddExpense(expense("40", "Transport", day(2024, 3, 5)))
	expenseRepo.AddExpense(expense("7.25", "Food", day(2024, 2, 20)))
	return expenseRepo
}

func TestBuildReport_FiltersByRange(t *testing.T) {
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), nil, testClock(), time.Minute)

	data, err := reportService.BuildReport(domain.DateRange{From: timePtr(day(2024, 3, 1))})
	require.NoError(t, err)

	require.Len(t, data.Expenses, 2)
	assert.True(t, data.Total.Equal(testutil.Money("52.50")))
	require.Len(t, data.Categories, 2)
	assert.True(t, data.GeneratedAt.Equal(testNow))
}

func TestBuildReport_Errors(t *testing.T) {
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), nil, testClock(), time.Minute)

	_, err := reportService.BuildReport(domain.DateRange{From: timePtr(day(2025, 1, 1))})
	assert.ErrorIs(t, err, domain.ErrNoExpenses)

	_, err = reportService.BuildReport(domain.DateRange{From: timePtr(day(2024, 3, 5)), To: timePtr(day(2024, 3, 1))})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestExport_CSV(t *testing.T) {
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), nil, testClock(), time.Minute)

	var buf bytes.Buffer
	err := reportService.Export(&buf, report.FormatCSV, domain.DateRange{To: timePtr(day(2024, 3, 2))})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Category,Amount,Note", lines[0])
	assert.Equal(t, "2024-03-02,Food,12.50,", lines[1])
	assert.Equal(t, "2024-02-20,Food,7.25,", lines[2])
}

func TestArchive_StorageDisabled(t *testing.T) {
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), nil, testClock(), time.Minute)

	assert.False(t, reportService.ArchivingEnabled())
	_, err := reportService.Archive(context.Background(), report.FormatCSV, domain.DateRange{})
	assert.ErrorIs(t, err, domain.ErrStorageDisabled)
}

func TestArchive_UploadsAndPresigns(t *testing.T) {
	store := testutil.NewMockReportStorage()
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), store, testClock(), 15*time.Minute)

	archived, err := reportService.Archive(context.Background(), report.FormatCSV, domain.DateRange{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(archived.ObjectPath, "reports/2024/03/"))
	assert.True(t, strings.HasSuffix(archived.ObjectPath, "_expenses.csv"))
	assert.Equal(t, report.FormatCSV, archived.Format)
	assert.Contains(t, archived.URL, archived.ObjectPath)
	assert.True(t, archived.ExpiresAt.Equal(testNow.Add(15*time.Minute)))

	obj, ok := store.Objects[archived.ObjectPath]
	require.True(t, ok)
	assert.Equal(t, report.FormatCSV.ContentType(), obj.ContentType)
	assert.Equal(t, report.FormatCSV.Filename(), obj.Filename)
	assert.Equal(t, report.PeriodLabel(domain.DateRange{}), obj.Period)
	assert.Contains(t, archived.URL, "filename="+report.FormatCSV.Filename())
	assert.True(t, bytes.HasPrefix(obj.Data, []byte("Date,Category,Amount,Note")))
}

func TestArchive_NoExpensesUploadsNothing(t *testing.T) {
	store := testutil.NewMockReportStorage()
	reportService := NewReportService(testutil.NewMockExpenseRepository(), report.NewRenderer(nil), store, testClock(), time.Minute)

	_, err := reportService.Archive(context.Background(), report.FormatPDF, domain.DateRange{})
	assert.ErrorIs(t, err, domain.ErrNoExpenses)
	assert.Empty(t, store.Objects)
}

func TestArchive_UploadFailure(t *testing.T) {
	store := testutil.NewMockReportStorage()
	store.PutErr = testutil.ErrMockFailure
	reportService := NewReportService(newReportFixture(), report.NewRenderer(nil), store, testClock(), time.Minute)

	_, err := reportService.Archive(context.Background(), report.FormatCSV, domain.DateRange{})
	assert.ErrorIs(t, err, testutil.ErrMockFailure)
}
