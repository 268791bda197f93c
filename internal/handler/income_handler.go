package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// IncomeHandler handles income-related HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
	loc           *time.Location
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService, loc *time.Location) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
		loc:           loc,
	}
}

// CreateIncomeRequest represents the create income request body
type CreateIncomeRequest struct {
	Amount string  `json:"amount"`
	Source string  `json:"source,omitempty"`
	Note   *string `json:"note,omitempty"`
	Date   string  `json:"date,omitempty"`
}

// IncomeResponse represents an income in API responses
type IncomeResponse struct {
	ID        string  `json:"id"`
	Amount    string  `json:"amount"`
	Source    string  `json:"source"`
	Note      *string `json:"note,omitempty"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

// CreateIncome handles POST /api/v1/incomes
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		return NewFieldError(c, "amount", "Must be a valid decimal number")
	}
	date, err := parseOptionalDate(req.Date, h.loc)
	if err != nil {
		return NewFieldError(c, "date", "Must be a date in YYYY-MM-DD format")
	}

	income, err := h.incomeService.CreateIncome(service.CreateIncomeInput{
		Amount: amount,
		Source: req.Source,
		Note:   req.Note,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewFieldError(c, "amount", "Amount must not be negative")
		case errors.Is(err, domain.ErrSourceTooLong):
			return NewFieldError(c, "source", "Source must be 255 characters or less")
		case errors.Is(err, domain.ErrNoteTooLong):
			return NewFieldError(c, "note", "Note must be 1000 characters or less")
		}
		log.Error().Err(err).Msg("Failed to create income")
		return NewInternalError(c, "Failed to create income")
	}

	log.Info().Str("income_id", income.ID.String()).Msg("Income created")
	return c.JSON(http.StatusCreated, toIncomeResponse(income))
}

// GetIncomes handles GET /api/v1/incomes
func (h *IncomeHandler) GetIncomes(c echo.Context) error {
	incomes, err := h.incomeService.ListIncomes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get incomes")
		return NewInternalError(c, "Failed to get incomes")
	}

	response := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		response[i] = toIncomeResponse(income)
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteIncome handles DELETE /api/v1/incomes/:id
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	if err := h.incomeService.DeleteIncome(id); err != nil {
		if errors.Is(err, domain.ErrIncomeNotFound) {
			return NewNotFoundError(c, "Income not found")
		}
		log.Error().Err(err).Str("income_id", id.String()).Msg("Failed to delete income")
		return NewInternalError(c, "Failed to delete income")
	}

	log.Info().Str("income_id", id.String()).Msg("Income deleted")
	return c.NoContent(http.StatusNoContent)
}

func toIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		ID:        i.ID.String(),
		Amount:    i.Amount.StringFixed(2),
		Source:    i.Source,
		Note:      i.Note,
		Date:      formatDate(i.Date),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}
