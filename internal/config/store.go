package config

import "time"

// Supported database/sql driver names.
const (
	DriverSQLite3 = "sqlite3" // github.com/mattn/go-sqlite3 (cgo)
	DriverSQLite  = "sqlite"  // modernc.org/sqlite (pure Go)
)

// ValidDrivers lists all supported store drivers.
var ValidDrivers = []string{DriverSQLite3, DriverSQLite}

// StoreConfig configures the SQLite taxonomy store.
type StoreConfig struct {
	Driver       string `yaml:"driver"`
	DatabasePath string `yaml:"database_path"` // empty disables the store tier
	QueryTimeout string `yaml:"query_timeout"`
}

// Enabled reports whether a database path is configured.
func (s StoreConfig) Enabled() bool {
	return s.DatabasePath != ""
}

// GetQueryTimeout returns the store query timeout as a duration.
func (s StoreConfig) GetQueryTimeout() time.Duration {
	d, err := time.ParseDuration(s.QueryTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}
