package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ChartHandler serves rendered dashboard charts
type ChartHandler struct {
	chartService *service.ChartService
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{
		chartService: chartService,
	}
}

// GetChart handles GET /api/v1/charts/:kind
// kind is category.png, monthly.png or balance.png; balance accepts range
func (h *ChartHandler) GetChart(c echo.Context) error {
	name := c.Param("kind")
	if !strings.HasSuffix(name, ".png") {
		return NewNotFoundError(c, "Unknown chart")
	}
	kind := service.ChartKind(strings.TrimSuffix(name, ".png"))

	months, ok := parseBalanceRange(c)
	if !ok {
		return NewFieldError(c, "range", balanceRangeMessage)
	}

	img, err := h.chartService.Render(kind, months)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChart) {
			return NewNotFoundError(c, "Unknown chart")
		}
		if errors.Is(err, charts.ErrNoData) {
			return NewNotFoundError(c, "No data to chart")
		}
		log.Error().Err(err).Str("chart", string(kind)).Msg("Failed to render chart")
		return NewInternalError(c, "Failed to render chart")
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, "image/png", img)
}
