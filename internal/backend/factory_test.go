package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCreateBackendInvalidType(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.CreateBackend(context.Background(), Config{Type: "redis"}); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}

func TestCreateMemoryBackend(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.CreateBackend(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Backend == nil {
		t.Fatalf("nil backend")
	}
	if res.Cleanup != nil {
		t.Fatalf("memory backend needs no cleanup")
	}
}

func TestCreateSupabaseBackendRequiresSecrets(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.CreateBackend(context.Background(), Config{Type: SupabaseBackend}); err == nil {
		t.Fatalf("expected error without URL and key")
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.CreateBackend(context.Background(), Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "app.db"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Cleanup == nil {
		t.Fatalf("sqlite backend must expose cleanup")
	}
	if err := res.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
