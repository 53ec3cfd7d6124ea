package store

import (
	"context"

	"bilancio/internal/core"
)

// Ports for outbound adapters.
type (
	// TransactionAdder persists a single transaction and returns the
	// stored representation. One durable write per call, no retry.
	TransactionAdder interface {
		Add(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	}

	// TransactionLister returns transactions ordered by date descending.
	// When both bounds are set the range is inclusive on both ends; when
	// either bound is zero the filter is omitted and all rows are
	// returned. Results may be empty; failures propagate to the caller.
	TransactionLister interface {
		ListRange(ctx context.Context, start, end core.Date) ([]core.Transaction, error)
	}
)
