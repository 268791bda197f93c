// Package report renders expense reports as CSV, PDF and XLSX files.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ErrUnknownFormat is returned for a format other than csv, pdf or xlsx
var ErrUnknownFormat = errors.New("unknown report format")

const Title = "FinGold - Expense Report"

// Format is a report file type
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Filename returns the download name for the format
func (f Format) Filename() string {
	if f == FormatCSV {
		return "expenses-report.csv"
	}
	return "FinGold-Expense-Report." + string(f)
}

// Data is everything a report shows. Categories and Total are derived from
// Expenses by the caller.
type Data struct {
	Expenses    []*domain.Expense
	Categories  []domain.CategoryTotal
	Total       decimal.Decimal
	Range       domain.DateRange
	GeneratedAt time.Time
}

// Renderer writes reports in any supported format
type Renderer struct {
	charts *charts.Generator
}

// NewRenderer creates a renderer; charts draws the category chart in PDFs
func NewRenderer(g *charts.Generator) *Renderer {
	if g == nil {
		g = charts.NewGenerator()
	}
	return &Renderer{charts: g}
}

// Render writes data to w in the given format
func (r *Renderer) Render(w io.Writer, format Format, data *Data) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, data.Expenses)
	case FormatPDF:
		return r.WritePDF(w, data)
	case FormatXLSX:
		return WriteXLSX(w, data)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// PeriodLabel describes the report range, with open bounds shown as Start and Today
func PeriodLabel(r domain.DateRange) string {
	from, to := "Start", "Today"
	if r.From != nil {
		from = r.From.Format(util.DateLayout)
	}
	if r.To != nil {
		to = r.To.Format(util.DateLayout)
	}
	return fmt.Sprintf("Period: %s -> %s", from, to)
}

func noteText(note *string, empty string) string {
	if note == nil || *note == "" {
		return empty
	}
	return *note
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
