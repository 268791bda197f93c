package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/report"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// noExpensesDetail is shown when a report range matches nothing
const noExpensesDetail = "No expenses found for selected date range"

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
	loc           *time.Location
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService, loc *time.Location) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		loc:           loc,
	}
}

// ArchiveResponse represents an archived report in API responses
type ArchiveResponse struct {
	URL        string `json:"url"`
	ObjectPath string `json:"objectPath"`
	Format     string `json:"format"`
	ExpiresAt  string `json:"expiresAt"`
}

// reportError maps report errors shared by download and archive.
// It returns false for errors that need a 500.
func reportError(c echo.Context, err error) (bool, error) {
	switch {
	case errors.Is(err, domain.ErrNoExpenses):
		return true, NewNotFoundError(c, noExpensesDetail)
	case errors.Is(err, domain.ErrInvalidDateRange):
		return true, NewFieldError(c, "from", "From date must not be after to date")
	case errors.Is(err, report.ErrUnknownFormat):
		return true, NewFieldError(c, "format", "Format must be one of: csv, pdf, xlsx")
	}
	return false, nil
}

// DownloadExpenses handles GET /api/v1/reports/expenses.:format
// Accepts optional from and to query params (YYYY-MM-DD, inclusive)
func (h *ReportHandler) DownloadExpenses(c echo.Context) error {
	format, err := report.ParseFormat(c.Param("format"))
	if err != nil {
		return NewNotFoundError(c, "Unknown report format")
	}

	rng, field, ok := parseDateRange(c, h.loc)
	if !ok {
		return NewFieldError(c, field, "Must be a date in YYYY-MM-DD format")
	}

	var buf bytes.Buffer
	if err := h.reportService.Export(&buf, format, rng); err != nil {
		if handled, resp := reportError(c, err); handled {
			return resp
		}
		log.Error().Err(err).Str("format", string(format)).Msg("Failed to export report")
		return NewInternalError(c, "Failed to export report")
	}

	log.Info().Str("format", string(format)).Int("size", buf.Len()).Msg("Report exported")

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", format.Filename()))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

// ArchiveExpenses handles POST /api/v1/reports/archive
// Accepts format (default pdf), from and to query params
func (h *ReportHandler) ArchiveExpenses(c echo.Context) error {
	if !h.reportService.ArchivingEnabled() {
		return NewServiceUnavailableError(c, "Report storage is not configured")
	}

	formatName := c.QueryParam("format")
	if formatName == "" {
		formatName = string(report.FormatPDF)
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return NewFieldError(c, "format", "Format must be one of: csv, pdf, xlsx")
	}

	rng, field, ok := parseDateRange(c, h.loc)
	if !ok {
		return NewFieldError(c, field, "Must be a date in YYYY-MM-DD format")
	}

	archived, err := h.reportService.Archive(c.Request().Context(), format, rng)
	if err != nil {
		if handled, resp := reportError(c, err); handled {
			return resp
		}
		if errors.Is(err, domain.ErrStorageDisabled) {
			return NewServiceUnavailableError(c, "Report storage is not configured")
		}
		log.Error().Err(err).Str("format", string(format)).Msg("Failed to archive report")
		return NewInternalError(c, "Failed to archive report")
	}

	return c.JSON(http.StatusCreated, ArchiveResponse{
		URL:        archived.URL,
		ObjectPath: archived.ObjectPath,
		Format:     string(archived.Format),
		ExpiresAt:  archived.ExpiresAt.Format(time.RFC3339),
	})
}
