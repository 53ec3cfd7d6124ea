package http

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"bilancio/internal/chart"
	"bilancio/internal/core"
	"bilancio/internal/report"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	today := core.Today()
	data := struct {
		Types        []core.Type
		DefaultStart string
		DefaultEnd   string
	}{
		Types:        []core.Type{core.Income, core.Expense, core.Savings},
		DefaultStart: core.Date{Time: today.AddDate(0, 0, -30)}.String(),
		DefaultEnd:   today.String(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleAddTransaction runs the add flow: validate the form, insert via
// the store, render an inline success or failure fragment. Validation
// failures never reach the store.
func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	category := sanitizeInput(r.Form.Get("category"))
	amount, amountErr := parseAmount(r.Form.Get("amount"))

	if category == "" || amountErr != nil || !amount.IsPositive() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Please enter a category and a positive amount.</div>`))
		return
	}

	tx := core.Transaction{
		Date:     core.Today(),
		Type:     core.Type(sanitizeInput(r.Form.Get("type"))),
		Category: category,
		Amount:   amount,
	}
	if err := tx.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	stored, err := s.adder.Add(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction insert error", "error", err, "category", tx.Category, "amount", tx.Amount.String())
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Failed to add record.</div>`))
		return
	}

	_, _ = w.Write([]byte(`<div class="success">Record added successfully: ` +
		template.HTMLEscapeString(stored.Type.String()) + ` — ` +
		template.HTMLEscapeString(stored.Category) + ` — ` +
		template.HTMLEscapeString(stored.Amount.String()) + `</div>`))
}

// handleSummary runs the report flow and renders the summary partial:
// totals, the chart when any total is positive, and the transaction
// table with a PDF link when the range is non-empty.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	start, end, err := parseRange(r)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<section id="summary"><div class="error">Invalid date range.</div></section>`))
		return
	}

	rows, err := s.lister.ListRange(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction fetch error", "error", err, "start", start.String(), "end", end.String())
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<section id="summary"><div class="error">Failed to load transactions.</div></section>`))
		return
	}

	summary := core.Summarize(rows)

	data := summaryView{
		Income:   summary.Income.String(),
		Expense:  summary.Expense.String(),
		Savings:  summary.Savings.String(),
		Balance:  summary.Balance.String(),
		NoTotals: summary.IsZero(),
	}

	if !summary.IsZero() {
		img, err := chart.BuildPie(summary.Income, summary.Expense, summary.Savings)
		if err != nil {
			slog.WarnContext(r.Context(), "Chart render error", "error", err)
		} else {
			data.ChartDataURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
		}
	}

	if len(rows) > 0 {
		for _, tx := range rows {
			data.Rows = append(data.Rows, txView{
				Date:     tx.Date.String(),
				Type:     tx.Type.String(),
				Category: tx.Category,
				Amount:   tx.Amount.String(),
			})
		}
		data.PDFURL = reportURL(start, end)
	}

	if s.templates == nil {
		_, _ = fmt.Fprintf(w, `<section id="summary"><div class="placeholder">Balance: %s</div></section>`, data.Balance)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Summary template execution failed", "error", err, "template", "summary.html")
		_, _ = w.Write([]byte(`<section id="summary"><div class="error">Failed to render summary.</div></section>`))
	}
}

// handleReportPDF builds and serves the PDF for a date range. The link
// is only offered for non-empty ranges; a direct request for an empty
// one gets 404 rather than a degenerate document.
func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusUnprocessableEntity)
		return
	}

	rows, err := s.lister.ListRange(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction fetch error", "error", err, "start", start.String(), "end", end.String())
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "no transactions in range", http.StatusNotFound)
		return
	}

	summary := core.Summarize(rows)
	var img []byte
	if !summary.IsZero() {
		if img, err = chart.BuildPie(summary.Income, summary.Expense, summary.Savings); err != nil {
			slog.WarnContext(r.Context(), "Chart render error", "error", err)
			img = nil
		}
	}

	doc, err := report.Build(summary, rows, img)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report build error", "error", err)
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	_, _ = w.Write(doc)
}

type summaryView struct {
	Income   string
	Expense  string
	Savings  string
	Balance  string
	NoTotals bool

	ChartDataURI template.URL
	Rows         []txView
	PDFURL       string
}

type txView struct {
	Date     string
	Type     string
	Category string
	Amount   string
}

func reportURL(start, end core.Date) string {
	q := url.Values{}
	if !start.IsZero() && !end.IsZero() {
		q.Set("start", start.String())
		q.Set("end", end.String())
	}
	u := "/report.pdf"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
