// Package store persists taxonomy entries in SQLite.
//
// The store is the first tier of the keyword source chain: when it holds at
// least one active entry, the keyword indexes are built from it alone.
//
// Usage Example:
//
//	s, _ := store.NewLocalStore("sqlite3", "data/skillmap.db")
//	defer s.Close()
//	s.AddTaxonomyEntry(ctx, store.TaxonomyEntry{
//	  Domain: "IT", Role: "Backend Developer", Industry: "Fintech",
//	  Keywords: "spring boot, java, api", Active: true,
//	})
//	entries, _ := s.ListActiveTaxonomyEntries(ctx)
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"skillmap/internal/logging"

	_ "github.com/mattn/go-sqlite3" // registers "sqlite3"
	_ "modernc.org/sqlite"          // registers "sqlite"
)

// LocalStore is a SQLite-backed taxonomy entry store.
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	driver string
	dbPath string
}

// NewLocalStore opens (and creates if needed) the database at path using the
// named database/sql driver. Use ":memory:" for an ephemeral store.
func NewLocalStore(driver, path string) (*LocalStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewLocalStore")
	defer timer.Stop()

	logging.Store("Initializing LocalStore at path: %s (driver=%s)", path, driver)

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.Get(logging.CategoryStore).Error("Failed to create directory %s: %v", dir, err)
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}

	store := &LocalStore{db: db, driver: driver, dbPath: path}
	if err := store.initialize(); err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to initialize schema: %v", err)
		db.Close()
		return nil, err
	}
	logging.StoreDebug("Database schema initialized successfully")

	return store, nil
}

func (s *LocalStore) initialize() error {
	taxonomyTable := `
	CREATE TABLE IF NOT EXISTS taxonomy_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		domain TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_taxonomy_active ON taxonomy_entries(active);
	`

	if _, err := s.db.Exec(taxonomyTable); err != nil {
		return fmt.Errorf("failed to create taxonomy_entries table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	logging.Store("Closing LocalStore database connection")
	return s.db.Close()
}

// GetDB returns the underlying SQL database connection.
func (s *LocalStore) GetDB() *sql.DB {
	return s.db
}

// Driver returns the database/sql driver name the store was opened with.
func (s *LocalStore) Driver() string {
	return s.driver
}

// GetStats returns row counts per table.
func (s *LocalStore) GetStats() (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int64)
	for _, table := range []string{"taxonomy_entries"} {
		var n int64
		if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats[table] = n
	}

	var active int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM taxonomy_entries WHERE active = 1").Scan(&active); err != nil {
		return nil, fmt.Errorf("failed to count active entries: %w", err)
	}
	stats["taxonomy_entries_active"] = active
	return stats, nil
}
