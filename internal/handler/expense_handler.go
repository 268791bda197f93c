package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	loc            *time.Location
}

// NewExpenseHandler creates a new ExpenseHandler. Dates are read in loc.
func NewExpenseHandler(expenseService *service.ExpenseService, loc *time.Location) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		loc:            loc,
	}
}

// ExpenseRequest represents the create and update expense request body
type ExpenseRequest struct {
	Amount   string  `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
	Date     string  `json:"date,omitempty"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID        string  `json:"id"`
	Amount    string  `json:"amount"`
	Category  string  `json:"category"`
	Note      *string `json:"note,omitempty"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// bind parses the request body into a service input
func (h *ExpenseHandler) bind(c echo.Context) (service.ExpenseInput, *bindError) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return service.ExpenseInput{}, errInvalidBody
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		return service.ExpenseInput{}, &bindError{"amount", "Must be a valid decimal number"}
	}

	date, err := parseOptionalDate(req.Date, h.loc)
	if err != nil {
		return service.ExpenseInput{}, &bindError{"date", "Must be a date in YYYY-MM-DD format"}
	}

	return service.ExpenseInput{
		Amount:   amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     date,
	}, nil
}

// expenseFieldError maps a service validation error to the offending field
func expenseFieldError(err error) (field, message string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "amount", "Amount must not be negative", true
	case errors.Is(err, domain.ErrCategoryRequired):
		return "category", "Category is required", true
	case errors.Is(err, domain.ErrCategoryTooLong):
		return "category", "Category must be 100 characters or less", true
	case errors.Is(err, domain.ErrNoteTooLong):
		return "note", "Note must be 1000 characters or less", true
	}
	return "", "", false
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	input, bindErr := h.bind(c)
	if bindErr != nil {
		return bindErr.respond(c)
	}

	expense, err := h.expenseService.CreateExpense(input)
	if err != nil {
		if field, message, ok := expenseFieldError(err); ok {
			return NewFieldError(c, field, message)
		}
		log.Error().Err(err).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("expense_id", expense.ID.String()).Str("category", expense.Category).Msg("Expense created")
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
// Accepts optional from, to and limit query params
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	rng, field, ok := parseDateRange(c, h.loc)
	if !ok {
		return NewFieldError(c, field, "Must be a date in YYYY-MM-DD format")
	}

	filters := domain.ExpenseFilters{DateRange: rng}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return NewFieldError(c, "limit", "Must be a positive integer")
		}
		if limit > domain.MaxExpenseLimit {
			limit = domain.MaxExpenseLimit
		}
		filters.Limit = int32(limit)
	}

	expenses, err := h.expenseService.ListExpenses(filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return NewFieldError(c, "from", "From date must not be after to date")
		}
		log.Error().Err(err).Msg("Failed to get expenses")
		return NewInternalError(c, "Failed to get expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(expense)
	}
	return c.JSON(http.StatusOK, response)
}

// GetExpense handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("expense_id", id.String()).Msg("Failed to get expense")
		return NewInternalError(c, "Failed to get expense")
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	input, bindErr := h.bind(c)
	if bindErr != nil {
		return bindErr.respond(c)
	}

	expense, err := h.expenseService.UpdateExpense(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		if field, message, ok := expenseFieldError(err); ok {
			return NewFieldError(c, field, message)
		}
		log.Error().Err(err).Str("expense_id", id.String()).Msg("Failed to update expense")
		return NewInternalError(c, "Failed to update expense")
	}

	log.Info().Str("expense_id", id.String()).Msg("Expense updated")
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("expense_id", id.String()).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	log.Info().Str("expense_id", id.String()).Msg("Expense deleted")
	return c.NoContent(http.StatusNoContent)
}

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID.String(),
		Amount:    e.Amount.StringFixed(2),
		Category:  e.Category,
		Note:      e.Note,
		Date:      formatDate(e.Date),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
