package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"bilancio/internal/core"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestAddAndListRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rows := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Type: core.Income, Category: "Salary", Amount: decimal.RequireFromString("5000")},
		{Date: core.NewDate(2024, 1, 5), Type: core.Expense, Category: "Rent", Amount: decimal.RequireFromString("1200")},
		{Date: core.NewDate(2024, 2, 10), Type: core.Savings, Category: "Bond", Amount: decimal.RequireFromString("300.50")},
	}
	for _, tx := range rows {
		if _, err := repo.Add(ctx, tx); err != nil {
			t.Fatalf("add %s: %v", tx.Category, err)
		}
	}

	jan, err := repo.ListRange(ctx, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jan) != 2 {
		t.Fatalf("expected 2 January rows, got %d", len(jan))
	}
	if jan[0].Date.String() != "2024-01-05" || jan[1].Date.String() != "2024-01-01" {
		t.Fatalf("expected descending date order, got %s then %s", jan[0].Date, jan[1].Date)
	}
	if jan[0].Type != core.Expense || jan[0].Category != "Rent" || !jan[0].Amount.Equal(decimal.RequireFromString("1200")) {
		t.Fatalf("stored fields changed: %+v", jan[0])
	}

	all, err := repo.ListRange(ctx, core.Date{}, core.Date{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 rows with no bounds, got %d", len(all))
	}
	if !all[0].Amount.Equal(decimal.RequireFromString("300.50")) {
		t.Fatalf("decimal amount not preserved: %s", all[0].Amount)
	}
}

func TestListRangeInvertedBounds(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Add(ctx, core.Transaction{
		Date: core.NewDate(2024, 3, 15), Type: core.Expense, Category: "Food",
		Amount: decimal.RequireFromString("10"),
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := repo.ListRange(ctx, core.NewDate(2024, 4, 1), core.NewDate(2024, 3, 1))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("start > end must return no rows, got %d", len(got))
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	_ = repo.Close()

	again, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("reopen with existing schema: %v", err)
	}
	_ = again.Close()
}
