package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/report"
	"github.com/fingold/fingold-backend/internal/repository/storage"
	"github.com/rs/zerolog/log"
)

// ArchivedReport is a stored report and its temporary download link
type ArchivedReport struct {
	ObjectPath string        `json:"objectPath"`
	URL        string        `json:"url"`
	Format     report.Format `json:"format"`
	ExpiresAt  time.Time     `json:"expiresAt"`
}

// ReportService builds, renders and archives expense reports
type ReportService struct {
	expenseRepo domain.ExpenseRepository
	renderer    *report.Renderer
	storage     storage.ReportStorage
	clock       *Clock
	urlTTL      time.Duration
}

// NewReportService creates a new ReportService. reportStorage may be nil,
// which disables archiving.
func NewReportService(expenseRepo domain.ExpenseRepository, renderer *report.Renderer, reportStorage storage.ReportStorage, clock *Clock, urlTTL time.Duration) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		renderer:    renderer,
		storage:     reportStorage,
		clock:       clock,
		urlTTL:      urlTTL,
	}
}

// ArchivingEnabled reports whether reports can be archived
func (s *ReportService) ArchivingEnabled() bool {
	return s.storage != nil
}

// BuildReport collects the expenses inside rng and their category totals
func (s *ReportService) BuildReport(rng domain.DateRange) (*report.Data, error) {
	if rng.From != nil && rng.To != nil && rng.From.After(*rng.To) {
		return nil, domain.ErrInvalidDateRange
	}

	expenses, err := s.expenseRepo.List(&domain.ExpenseFilters{DateRange: rng, Limit: domain.MaxExpenseLimit})
	if err != nil {
		return nil, err
	}

	expenses = analytics.FilterByDateRange(expenses, rng)
	if len(expenses) == 0 {
		return nil, domain.ErrNoExpenses
	}

	return &report.Data{
		Expenses:    expenses,
		Categories:  analytics.GroupByCategory(expenses),
		Total:       analytics.SumAmounts(expenses),
		Range:       rng,
		GeneratedAt: s.clock.Now(),
	}, nil
}

// Export writes the report for rng to w
func (s *ReportService) Export(w io.Writer, format report.Format, rng domain.DateRange) error {
	data, err := s.BuildReport(rng)
	if err != nil {
		return err
	}
	return s.renderer.Render(w, format, data)
}

// Archive renders the report, stores it and returns a presigned download URL
func (s *ReportService) Archive(ctx context.Context, format report.Format, rng domain.DateRange) (*ArchivedReport, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}

	var buf bytes.Buffer
	if err := s.Export(&buf, format, rng); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	obj := &storage.ReportObject{
		Path:        storage.GenerateReportObjectPath(now, "expenses", "."+string(format)),
		Filename:    format.Filename(),
		ContentType: format.ContentType(),
		Period:      report.PeriodLabel(rng),
		Data:        buf.Bytes(),
	}
	if err := s.storage.Put(ctx, obj); err != nil {
		return nil, fmt.Errorf("failed to archive report: %w", err)
	}
	objectPath := obj.Path

	url, err := s.storage.PresignDownload(ctx, objectPath, obj.Filename, s.urlTTL)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("object_path", objectPath).
		Str("format", string(format)).
		Int("size", len(obj.Data)).
		Msg("Report archived")

	return &ArchivedReport{
		ObjectPath: objectPath,
		URL:        url,
		Format:     format,
		ExpiresAt:  now.Add(s.urlTTL),
	}, nil
}
