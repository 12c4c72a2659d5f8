package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "skillmap" {
		t.Errorf("expected Name=skillmap, got %s", cfg.Name)
	}
	if cfg.Store.Driver != DriverSQLite3 {
		t.Errorf("expected Driver=sqlite3, got %s", cfg.Store.Driver)
	}
	if cfg.Knowledge.DocumentPath != "" {
		t.Errorf("expected no knowledge document by default, got %s", cfg.Knowledge.DocumentPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Store.Driver = DriverSQLite
	cfg.Knowledge.DocumentPath = "kb/packs.md"
	cfg.Watch.Debounce = "2s"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Store.Driver != DriverSQLite {
		t.Errorf("expected Driver=sqlite, got %s", loaded.Store.Driver)
	}
	if loaded.Knowledge.DocumentPath != "kb/packs.md" {
		t.Errorf("expected DocumentPath=kb/packs.md, got %s", loaded.Knowledge.DocumentPath)
	}
	if loaded.Watch.GetDebounce() != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", loaded.Watch.GetDebounce())
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.DatabasePath != "data/skillmap.db" {
		t.Errorf("expected default database path, got %s", cfg.Store.DatabasePath)
	}
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Driver = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown driver")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log format")
	}
}

func TestDurationGetters(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Store.GetQueryTimeout(); got != 5*time.Second {
		t.Errorf("GetQueryTimeout = %v, want 5s", got)
	}
	if got := cfg.Watch.GetDebounce(); got != 500*time.Millisecond {
		t.Errorf("GetDebounce = %v, want 500ms", got)
	}

	cfg.Store.QueryTimeout = "garbage"
	cfg.Watch.Debounce = "2s"
	if got := cfg.Store.GetQueryTimeout(); got != 5*time.Second {
		t.Errorf("GetQueryTimeout fallback = %v, want 5s", got)
	}
	if got := cfg.Watch.GetDebounce(); got != 2*time.Second {
		t.Errorf("GetDebounce = %v, want 2s", got)
	}
}

func TestLoggingConfig_Options(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "console", Categories: map[string]bool{"store": false}}
	opts := lc.Options()
	if opts.Level != "debug" || opts.Format != "console" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if enabled, ok := opts.Categories["store"]; !ok || enabled {
		t.Errorf("store category should carry through disabled: %+v", opts.Categories)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SKILLMAP_DB", "SKILLMAP_DB_DRIVER", "SKILLMAP_RESOURCE", "SKILLMAP_KNOWLEDGE", "SKILLMAP_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}
