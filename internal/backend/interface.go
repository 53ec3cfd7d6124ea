package backend

import (
	"context"

	"bilancio/internal/store"
)

// Backend bundles the store ports the UI needs.
type Backend interface {
	store.TransactionAdder
	store.TransactionLister
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the backend instance and an optional cleanup function.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// Supabase specific
	SupabaseURL string
	SupabaseKey string

	// SQLite specific
	SQLiteDBPath string
}

// Type selects the persistence backend.
type Type string

const (
	SupabaseBackend Type = "supabase"
	SQLiteBackend   Type = "sqlite"
	MemoryBackend   Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case SupabaseBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
