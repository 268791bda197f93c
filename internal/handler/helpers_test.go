package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/fingold/fingold-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func testClock() *service.Clock {
	return service.NewFixedClock(testNow)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newContext builds an echo context for a request with an optional JSON body
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem details: %v", err)
	}
	return problem
}

func addExpense(repo *testutil.MockExpenseRepository, amount, category string, date time.Time) *domain.Expense {
	e := &domain.Expense{
		Amount:    testutil.Money(amount),
		Category:  category,
		Date:      date,
		CreatedAt: date,
		UpdatedAt: date,
	}
	repo.AddExpense(e)
	return e
}

func datePtr(t time.Time) *time.Time {
	return &t
}
