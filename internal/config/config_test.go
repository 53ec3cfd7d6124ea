package config

import (
	"strings"
	"testing"
)

func validSupabase() *Config {
	return &Config{
		Port:        "8081",
		DataBackend: "supabase",
		SupabaseURL: "https://example.supabase.co",
		SupabaseKey: "service-key",
	}
}

func TestLoadDefaults(t *testing.T) {
	// Pin to empty so values from the test environment cannot flip the defaults.
	for _, key := range []string{"PORT", "DATA_BACKEND", "SUPABASE_URL", "SUPABASE_KEY", "SQLITE_DB_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port=%s", cfg.Port)
	}
	if cfg.DataBackend != "supabase" {
		t.Fatalf("default backend=%s", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath != "./data/bilancio.db" {
		t.Fatalf("default sqlite path=%s", cfg.SQLiteDBPath)
	}
}

func TestValidateSupabase(t *testing.T) {
	if err := validSupabase().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"missing url", func(c *Config) { c.SupabaseURL = "" }, "SUPABASE_URL is required"},
		{"bad scheme", func(c *Config) { c.SupabaseURL = "ftp://x" }, "invalid SUPABASE_URL scheme"},
		{"missing key", func(c *Config) { c.SupabaseKey = "" }, "SUPABASE_KEY is required"},
	}
	for _, tc := range cases {
		cfg := validSupabase()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestValidateMemoryNeedsNoSecrets(t *testing.T) {
	cfg := &Config{Port: "8081", DataBackend: "memory"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should not require secrets: %v", err)
	}
}

func TestValidateSQLitePath(t *testing.T) {
	cfg := &Config{Port: "8081", DataBackend: "sqlite", SQLiteDBPath: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty sqlite path")
	}

	cfg.SQLiteDBPath = t.TempDir() + "/nested/app.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected directory to be created: %v", err)
	}
}
