package report

import (
	"encoding/csv"
	"io"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/util"
)

var csvHeader = []string{"Date", "Category", "Amount", "Note"}

// WriteCSV writes one row per expense under a Date,Category,Amount,Note header
func WriteCSV(w io.Writer, expenses []*domain.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range expenses {
		if e == nil {
			continue
		}
		row := []string{
			e.Date.Format(util.DateLayout),
			e.Category,
			e.Amount.StringFixed(2),
			noteText(e.Note, ""),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
