package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fingold/fingold-backend/internal/charts"
	"github.com/fingold/fingold-backend/internal/util"
	"github.com/signintech/gopdf"
	"github.com/wcharczuk/go-chart/v2/roboto"
)

const (
	pdfFont       = "roboto"
	pageMargin    = 40.0
	rowHeight     = 18.0
	chartMaxW     = 480
	chartMaxH     = 240
	categoryRunes = 24
	noteRunes     = 42
)

type pdfColumn struct {
	title string
	width float64
}

var pdfColumns = []pdfColumn{
	{"Date", 80},
	{"Category", 140},
	{"Amount", 80},
	{"Note", 215},
}

// WritePDF writes a titled report with a category chart and an expense table
func (r *Renderer) WritePDF(w io.Writer, data *Data) error {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFontData(pdfFont, roboto.Roboto); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	pdf.AddPage()

	if err := pdf.SetFont(pdfFont, "", 18); err != nil {
		return err
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pageMargin, pageMargin)
	if err := pdf.Cell(nil, Title); err != nil {
		return err
	}

	if err := pdf.SetFont(pdfFont, "", 11); err != nil {
		return err
	}
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pageMargin, pageMargin+26)
	if err := pdf.Cell(nil, PeriodLabel(data.Range)); err != nil {
		return err
	}
	pdf.SetXY(pageMargin, pageMargin+42)
	if err := pdf.Cell(nil, fmt.Sprintf("Total: %s", data.Total.StringFixed(2))); err != nil {
		return err
	}
	pdf.SetTextColor(0, 0, 0)

	y := pageMargin + 64
	img, err := r.categoryImage(data)
	if err != nil {
		return err
	}
	if img != nil {
		b := img.Bounds()
		if err := pdf.ImageFrom(img, pageMargin, y, &gopdf.Rect{W: float64(b.Dx()), H: float64(b.Dy())}); err != nil {
			return fmt.Errorf("failed to place chart: %w", err)
		}
		y += float64(b.Dy()) + 16
	}

	if err := writePDFTable(pdf, data, y); err != nil {
		return err
	}
	return pdf.Write(w)
}

// categoryImage draws the category chart scaled to fit the page. It is nil
// when no category has a positive total.
func (r *Renderer) categoryImage(data *Data) (image.Image, error) {
	raw, err := r.charts.CategoryPie(data.Categories)
	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return nil, nil
		}
		return nil, err
	}
	src, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}
	return imaging.Fit(src, chartMaxW, chartMaxH, imaging.Lanczos), nil
}

func writePDFTable(pdf *gopdf.GoPdf, data *Data, y float64) error {
	pageBottom := gopdf.PageSizeA4.H - pageMargin

	if err := pdf.SetFont(pdfFont, "", 10); err != nil {
		return err
	}
	if err := writePDFHeader(pdf, y); err != nil {
		return err
	}
	y += rowHeight

	for _, e := range data.Expenses {
		if e == nil {
			continue
		}
		if y+rowHeight > pageBottom {
			pdf.AddPage()
			y = pageMargin
			if err := writePDFHeader(pdf, y); err != nil {
				return err
			}
			y += rowHeight
		}
		cells := []string{
			e.Date.Format(util.DateLayout),
			truncate(e.Category, categoryRunes),
			e.Amount.StringFixed(2),
			truncate(noteText(e.Note, "-"), noteRunes),
		}
		if err := writePDFRow(pdf, y, cells, false); err != nil {
			return err
		}
		y += rowHeight
	}
	return nil
}

func writePDFHeader(pdf *gopdf.GoPdf, y float64) error {
	titles := make([]string, len(pdfColumns))
	for i, c := range pdfColumns {
		titles[i] = c.title
	}
	return writePDFRow(pdf, y, titles, true)
}

func writePDFRow(pdf *gopdf.GoPdf, y float64, cells []string, header bool) error {
	x := pageMargin
	for i, c := range pdfColumns {
		if header {
			pdf.SetFillColor(245, 215, 110)
			pdf.RectFromUpperLeftWithStyle(x, y, c.width, rowHeight, "FD")
		} else {
			pdf.RectFromUpperLeftWithStyle(x, y, c.width, rowHeight, "D")
		}
		pdf.SetXY(x+4, y+4)
		if err := pdf.Cell(&gopdf.Rect{W: c.width - 8, H: rowHeight - 8}, cells[i]); err != nil {
			return err
		}
		x += c.width
	}
	return nil
}
