// Package sqlite is a local repository for running without the hosted
// store. Schema is managed by embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"bilancio/internal/core"
	"bilancio/internal/store"
)

type Repository struct {
	db *sql.DB
}

var (
	_ store.TransactionAdder  = (*Repository)(nil)
	_ store.TransactionLister = (*Repository)(nil)
)

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add implements store.TransactionAdder. Amounts are stored as decimal
// strings so no precision is lost between write and read.
func (r *Repository) Add(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, type, category, amount) VALUES (?, ?, ?, ?)`,
		tx.Date.String(), tx.Type.String(), tx.Category, tx.Amount.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("inserted id: %w", err)
	}
	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"date", tx.Date.String(),
		"type", tx.Type.String(),
		"amount", tx.Amount.String())
	return tx, nil
}

// ListRange implements store.TransactionLister. YYYY-MM-DD strings
// compare lexicographically, so the range filter and the descending
// order work directly on the date column.
func (r *Repository) ListRange(ctx context.Context, start, end core.Date) ([]core.Transaction, error) {
	query := `SELECT date, type, category, amount FROM transactions`
	args := []any{}
	if !start.IsZero() && !end.IsZero() {
		query += ` WHERE date >= ? AND date <= ?`
		args = append(args, start.String(), end.String())
	}
	query += ` ORDER BY date DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var dateStr, typeStr, category, amountStr string
		if err := rows.Scan(&dateStr, &typeStr, &category, &amountStr); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amountStr, err)
		}
		out = append(out, core.Transaction{
			Date:     date,
			Type:     core.Type(typeStr),
			Category: category,
			Amount:   amount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
