package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// parseID reads the :id path parameter
func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalDate parses a YYYY-MM-DD value; an empty value is nil
func parseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := util.ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateRange reads the from and to query parameters. On failure the
// offending field name is returned.
func parseDateRange(c echo.Context, loc *time.Location) (domain.DateRange, string, bool) {
	from, err := parseOptionalDate(c.QueryParam("from"), loc)
	if err != nil {
		return domain.DateRange{}, "from", false
	}
	to, err := parseOptionalDate(c.QueryParam("to"), loc)
	if err != nil {
		return domain.DateRange{}, "to", false
	}
	return domain.DateRange{From: from, To: to}, "", true
}

// parseBalanceRange reads the range query parameter, defaulting to
// domain.DefaultBalanceRange
func parseBalanceRange(c echo.Context) (int, bool) {
	s := c.QueryParam("range")
	if s == "" {
		return domain.DefaultBalanceRange, true
	}
	months, err := strconv.Atoi(s)
	if err != nil || !domain.IsValidBalanceRange(months) {
		return 0, false
	}
	return months, true
}

// parseAmount parses a decimal request field; an empty value is zero
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// balanceRangeMessage is the validation message for a bad range parameter
const balanceRangeMessage = "Must be one of 1, 3, 6, 12"

func formatDate(t time.Time) string {
	return t.Format(util.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// bindError describes why a request body could not be turned into input.
// An empty field means the body itself was malformed.
type bindError struct {
	field   string
	message string
}

var errInvalidBody = &bindError{message: "Invalid request body"}

func (e *bindError) respond(c echo.Context) error {
	if e.field == "" {
		return NewValidationError(c, e.message, nil)
	}
	return NewFieldError(c, e.field, e.message)
}
