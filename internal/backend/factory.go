package backend

import (
	"context"
	"fmt"
	"log/slog"

	"bilancio/internal/store/memory"
	"bilancio/internal/store/sqlite"
	"bilancio/internal/store/supabase"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SupabaseBackend:
		return f.createSupabaseBackend(config)
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	default:
		return f.createMemoryBackend()
	}
}

func (f *DefaultFactory) createSupabaseBackend(config Config) (*Result, error) {
	cli, err := supabase.New(config.SupabaseURL, config.SupabaseKey)
	if err != nil {
		return nil, fmt.Errorf("initialize supabase client: %w", err)
	}

	f.logger.Info("Initialized Supabase backend", "url", config.SupabaseURL)
	return &Result{Backend: cli}, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &Result{Backend: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createMemoryBackend() (*Result, error) {
	f.logger.Info("Initialized memory backend")
	return &Result{Backend: memory.New()}, nil
}
