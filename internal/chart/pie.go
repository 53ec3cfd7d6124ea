// Package chart renders the income/expenses/savings proportion chart.
package chart

import (
	"bytes"
	"errors"

	"github.com/shopspring/decimal"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// Logical chart size, also used when the image is embedded in the PDF.
const (
	Width  = 400
	Height = 300
)

var ErrNoData = errors.New("all totals are zero, nothing to chart")

// BuildPie renders a three-slice pie chart as PNG bytes. Each slice is
// labeled with its name and share of the total. Slices with a zero value
// are dropped; when every value is zero there is no meaningful chart and
// ErrNoData is returned (callers skip the chart in that case).
func BuildPie(income, expense, savings decimal.Decimal) ([]byte, error) {
	total := income.Add(expense).Add(savings)
	if !total.IsPositive() {
		return nil, ErrNoData
	}

	slices := []struct {
		name  string
		value decimal.Decimal
	}{
		{"Income", income},
		{"Expenses", expense},
		{"Savings", savings},
	}

	values := make([]gochart.Value, 0, len(slices))
	hundred := decimal.NewFromInt(100)
	for _, s := range slices {
		if !s.value.IsPositive() {
			continue
		}
		pct := s.value.Mul(hundred).Div(total)
		values = append(values, gochart.Value{
			Value: s.value.InexactFloat64(),
			Label: s.name + " " + pct.StringFixed(1) + "%",
		})
	}

	pie := gochart.PieChart{
		Title:  "Income vs Expenses vs Savings",
		Width:  Width,
		Height: Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
