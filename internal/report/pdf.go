// Package report assembles the downloadable finance summary PDF.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"bilancio/internal/chart"
	"bilancio/internal/core"
)

// Download metadata for the generated document.
const (
	Filename    = "finance_summary.pdf"
	ContentType = "application/pdf"
)

const noDataLine = "No transactions available."

// Build renders the report into an in-memory PDF: title, the four
// summary lines, the chart image when one is supplied, then either a
// table with one row per transaction (in the order given) or a
// placeholder line when the list is empty. Pagination is handled by the
// document's automatic page breaks.
func Build(summary core.Summary, transactions []core.Transaction, chartPNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	// Uncompressed streams; the documents are tiny and stay greppable.
	pdf.SetCompression(false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, "Personal Finance Summary", "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		"Total Income: " + summary.Income.String(),
		"Total Expense: " + summary.Expense.String(),
		"Total Savings: " + summary.Savings.String(),
		"Balance: " + summary.Balance.String(),
	} {
		pdf.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(12)

	if len(chartPNG) > 0 {
		pageW, _ := pdf.GetPageSize()
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("summary-chart", opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions("summary-chart", (pageW-chart.Width)/2, -1, chart.Width, chart.Height, true, opts, 0, "")
		pdf.Ln(12)
	}

	if len(transactions) == 0 {
		pdf.CellFormat(0, 16, noDataLine, "", 1, "L", false, 0, "")
	} else {
		writeTable(pdf, transactions)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *fpdf.Fpdf, transactions []core.Transaction) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	widths := []float64{0.18 * usable, 0.16 * usable, 0.46 * usable, 0.20 * usable}
	headers := []string{"Date", "Type", "Category", "Amount"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 18, h, "1", ln, "L", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, tx := range transactions {
		pdf.CellFormat(widths[0], 16, tx.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 16, tx.Type.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 16, tx.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 16, tx.Amount.String(), "1", 1, "R", false, 0, "")
	}
}
