// Package supabase talks to the hosted transactions table through the
// PostgREST API exposed by Supabase.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/supabase-community/postgrest-go"

	"bilancio/internal/core"
	"bilancio/internal/store"
)

const table = "transactions"

type Client struct {
	rest *postgrest.Client
}

// Ensure interface conformance
var (
	_ store.TransactionAdder  = (*Client)(nil)
	_ store.TransactionLister = (*Client)(nil)
)

// row is the wire shape of one transactions row. The date column is a
// plain YYYY-MM-DD string and amount is numeric; the store performs no
// validation on either.
type row struct {
	Date     core.Date       `json:"date"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// New creates a client for the project's REST endpoint. The key is sent
// both as apikey and as a bearer token, the way PostgREST under Supabase
// expects single-key access.
func New(projectURL, key string) (*Client, error) {
	projectURL = strings.TrimRight(strings.TrimSpace(projectURL), "/")
	if projectURL == "" {
		return nil, errors.New("missing store URL")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("missing store key")
	}

	rest := postgrest.NewClient(projectURL+"/rest/v1", "", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("postgrest client: %w", rest.ClientError)
	}
	return &Client{rest: rest}, nil
}

// Add inserts one row and asks the store to return the inserted
// representation. A failed request surfaces as an insert failure to the
// caller; there is no retry.
func (c *Client) Add(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	payload := row{
		Date:     tx.Date,
		Type:     tx.Type.String(),
		Category: tx.Category,
		Amount:   tx.Amount,
	}

	var inserted []row
	_, err := c.rest.From(table).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	if len(inserted) == 0 {
		return core.Transaction{}, errors.New("insert transaction: empty representation returned")
	}

	slog.InfoContext(ctx, "Transaction stored",
		"date", inserted[0].Date.String(),
		"type", inserted[0].Type,
		"category", inserted[0].Category,
		"amount", inserted[0].Amount.String())
	return inserted[0].toDomain(), nil
}

// ListRange fetches rows ordered by date descending. Both bounds present
// means an inclusive date >= start AND date <= end filter; a zero bound
// drops the filter entirely and returns every row.
func (c *Client) ListRange(ctx context.Context, start, end core.Date) ([]core.Transaction, error) {
	q := c.rest.From(table).Select("*", "", false)
	if !start.IsZero() && !end.IsZero() {
		q = q.Gte("date", start.String()).Lte("date", end.String())
	}
	q = q.Order("date", &postgrest.OrderOpts{Ascending: false})

	var rows []row
	if _, err := q.ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]core.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	slog.DebugContext(ctx, "Transactions fetched",
		"count", len(out), "start", start.String(), "end", end.String())
	return out, nil
}

func (r row) toDomain() core.Transaction {
	return core.Transaction{
		Date:     r.Date,
		Type:     core.Type(r.Type),
		Category: r.Category,
		Amount:   r.Amount,
	}
}
