package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"bilancio/internal/core"
)

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseAmount parses a decimal amount, accepting a comma separator.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, core.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, core.ErrInvalidAmount
	}
	return d, nil
}

// parseRange reads start and end dates from the query. Both present
// gives an inclusive range; either absent means no filter (zero Dates).
// A present but malformed date is an error.
func parseRange(r *http.Request) (start, end core.Date, err error) {
	startStr := strings.TrimSpace(r.URL.Query().Get("start"))
	endStr := strings.TrimSpace(r.URL.Query().Get("end"))
	if startStr == "" || endStr == "" {
		return core.Date{}, core.Date{}, nil
	}
	if start, err = core.ParseDate(startStr); err != nil {
		return core.Date{}, core.Date{}, err
	}
	if end, err = core.ParseDate(endStr); err != nil {
		return core.Date{}, core.Date{}, err
	}
	return start, end, nil
}
