package report

import (
	"fmt"
	"io"

	"github.com/fingold/fingold-backend/internal/util"
	"github.com/xuri/excelize/v2"
)

const (
	ExpenseSheet  = "Expenses"
	CategorySheet = "Categories"
)

// WriteXLSX writes a workbook with an expense sheet and a category summary sheet
func WriteXLSX(w io.Writer, data *Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExpenseSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(CategorySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5D76E"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	if err := writeExpenseSheet(f, data, headerStyle, amountStyle); err != nil {
		return err
	}
	if err := writeCategorySheet(f, data, headerStyle, amountStyle); err != nil {
		return err
	}

	return f.Write(w)
}

func writeExpenseSheet(f *excelize.File, data *Data, headerStyle, amountStyle int) error {
	sheet := ExpenseSheet
	if err := setRow(f, sheet, 1, csvHeader...); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, e := range data.Expenses {
		if e == nil {
			continue
		}
		if err := setRow(f, sheet, row, e.Date.Format(util.DateLayout), e.Category); err != nil {
			return err
		}
		if err := f.SetCellFloat(sheet, cell("C", row), e.Amount.InexactFloat64(), 2, 64); err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell("D", row), noteText(e.Note, "")); err != nil {
			return err
		}
		row++
	}
	if row > 2 {
		if err := f.SetCellStyle(sheet, "C2", cell("C", row-1), amountStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "D", 40); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeCategorySheet(f *excelize.File, data *Data, headerStyle, amountStyle int) error {
	sheet := CategorySheet
	if err := setRow(f, sheet, 1, "Category", "Total"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, c := range data.Categories {
		if err := f.SetCellStr(sheet, cell("A", row), c.Category); err != nil {
			return err
		}
		if err := f.SetCellFloat(sheet, cell("B", row), c.Total.InexactFloat64(), 2, 64); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellStr(sheet, cell("A", row), "Total"); err != nil {
		return err
	}
	if err := f.SetCellFloat(sheet, cell("B", row), data.Total.InexactFloat64(), 2, 64); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B2", cell("B", row), amountStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func setRow(f *excelize.File, sheet string, row int, values ...string) error {
	for i, v := range values {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, name, v); err != nil {
			return err
		}
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
