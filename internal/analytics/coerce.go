package analytics

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawExpense is an expense record as it arrives from a loosely typed client.
// Amount may be a number or a numeric string; Date an ISO-8601 string.
type RawExpense struct {
	ID       string  `json:"id"`
	Amount   any     `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
	Date     any     `json:"date"`
}

// RawGoal is a goal record as it arrives from a loosely typed client
type RawGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  any     `json:"targetAmount"`
	CurrentAmount any     `json:"currentAmount"`
	Deadline      any     `json:"deadline,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// CoerceAmount converts v to a decimal. Values that are not finite numbers,
// or strings that do not parse as one, come back as zero.
func CoerceAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return parseAmount(x)
	case json.Number:
		return parseAmount(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// zonelessLayouts are timestamps without an offset, read in the target location
var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CoerceDate converts v to a time in loc. Plain YYYY-MM-DD strings are read
// as calendar dates in loc; timestamps are converted into loc. ok is false for
// zero times and anything unparseable.
func CoerceDate(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.In(loc), true
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return x.In(loc), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := util.ParseDate(s, loc); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.In(loc), true
		}
		for _, layout := range zonelessLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// NormalizeExpense converts a raw record into an Expense. An unparseable id
// becomes uuid.Nil and a malformed date the zero time.
func NormalizeExpense(raw RawExpense, loc *time.Location) *domain.Expense {
	id, _ := uuid.Parse(raw.ID)
	date, _ := CoerceDate(raw.Date, loc)
	return &domain.Expense{
		ID:       id,
		Amount:   CoerceAmount(raw.Amount),
		Category: raw.Category,
		Note:     raw.Note,
		Date:     date,
	}
}

// NormalizeExpenses converts a slice of raw records
func NormalizeExpenses(raws []RawExpense, loc *time.Location) []*domain.Expense {
	expenses := make([]*domain.Expense, 0, len(raws))
	for _, raw := range raws {
		expenses = append(expenses, NormalizeExpense(raw, loc))
	}
	return expenses
}

// NormalizeGoal converts a raw record into a Goal. A malformed deadline is
// treated as no deadline.
func NormalizeGoal(raw RawGoal, loc *time.Location) *domain.Goal {
	id, _ := uuid.Parse(raw.ID)
	goal := &domain.Goal{
		ID:            id,
		Name:          raw.Name,
		TargetAmount:  CoerceAmount(raw.TargetAmount),
		CurrentAmount: CoerceAmount(raw.CurrentAmount),
		Description:   raw.Description,
	}
	if deadline, ok := CoerceDate(raw.Deadline, loc); ok {
		goal.Deadline = &deadline
	}
	return goal
}
