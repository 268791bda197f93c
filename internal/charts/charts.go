// Package charts renders dashboard aggregates as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing positive to draw
var ErrNoData = errors.New("no data to chart")

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Generator renders charts at a fixed size
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a chart generator with the default size
func NewGenerator() *Generator {
	return &Generator{width: DefaultWidth, height: DefaultHeight}
}

// NewGeneratorWithSize creates a chart generator for the given pixel size
func NewGeneratorWithSize(width, height int) *Generator {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Generator{width: width, height: height}
}

func (g *Generator) background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
		FillColor: chart.ColorWhite,
	}
}

// CategoryPie renders the share of each category in total spending
func (g *Generator) CategoryPie(totals []domain.CategoryTotal) ([]byte, error) {
	var sum decimal.Decimal
	for _, t := range totals {
		if t.Total.IsPositive() {
			sum = sum.Add(t.Total)
		}
	}
	if !sum.IsPositive() {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if !t.Total.IsPositive() {
			continue
		}
		percentage := t.Total.Div(sum).Mul(decimal.NewFromInt(100)).InexactFloat64()
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", t.Category, t.Total.StringFixed(2), percentage),
			Value: t.Total.InexactFloat64(),
			Style: chart.Style{
				FontSize:  10,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:      "Spending by category",
		Width:      g.width,
		Height:     g.height,
		Values:     values,
		Background: g.background(),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// MonthlyBar renders one bar per month
func (g *Generator) MonthlyBar(totals []domain.MonthlyTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, len(totals))
	values := make([]float64, len(totals))
	for i, t := range totals {
		values[i] = t.Total.InexactFloat64()
		bars[i] = chart.Value{
			Label: t.MonthKey,
			Value: values[i],
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
			},
		}
	}

	bc := chart.BarChart{
		Title:      "Monthly spending",
		Width:      g.width,
		Height:     g.height,
		BarWidth:   40,
		Background: g.background(),
		YAxis: chart.YAxis{
			Range:          paddedRange(values),
			ValueFormatter: amountFormatter,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bc.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render monthly chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// BalanceLine renders the running balance, one point per month
func (g *Generator) BalanceLine(points []domain.BalancePoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	ticks := make([]chart.Tick, 0, len(points)+2)
	for i, p := range points {
		xValues[i] = float64(i)
		yValues[i] = p.Balance.InexactFloat64()
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.MonthKey})
	}
	// A single month still needs a non-zero x range.
	if len(points) == 1 {
		ticks = append([]chart.Tick{{Value: -1}}, append(ticks, chart.Tick{Value: 1})...)
	}

	graph := chart.Chart{
		Title:      "Balance",
		Width:      g.width,
		Height:     g.height,
		Background: g.background(),
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range:          paddedRange(yValues),
			ValueFormatter: amountFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
					DotColor:    chart.ColorGreen,
					DotWidth:    3,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render balance chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// paddedRange spans zero and every value, and is never empty
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func amountFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
