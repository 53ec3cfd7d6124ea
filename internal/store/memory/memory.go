// Package memory holds transactions in process memory. It backs tests
// and local development without a hosted store.
package memory

import (
	"context"
	"sort"
	"sync"

	"bilancio/internal/core"
	"bilancio/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

var (
	_ store.TransactionAdder  = (*Store)(nil)
	_ store.TransactionLister = (*Store)(nil)
)

func New() *Store {
	return &Store{}
}

// Seed pre-loads transactions, keeping the insertion order.
func Seed(items ...core.Transaction) *Store {
	return &Store{items: append([]core.Transaction(nil), items...)}
}

func (s *Store) Add(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, tx)
	return tx, nil
}

func (s *Store) ListRange(_ context.Context, start, end core.Date) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter := !start.IsZero() && !end.IsZero()
	out := make([]core.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		if filter && (tx.Date.Before(start.Time) || tx.Date.After(end)) {
			continue
		}
		out = append(out, tx)
	}
	// Date descending, stable so same-day rows keep insertion order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
