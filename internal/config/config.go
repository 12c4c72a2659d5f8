package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all skillmap configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Persisted taxonomy entries (first source tier)
	Store StoreConfig `yaml:"store"`

	// Bundled keyword resource (second source tier)
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`

	// Knowledge-base document with fenced pack blocks
	Knowledge KnowledgeConfig `yaml:"knowledge"`

	// Hot reload
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "skillmap",
		Version: "0.3.0",

		Store: StoreConfig{
			Driver:       DriverSQLite3,
			DatabasePath: "data/skillmap.db",
			QueryTimeout: "5s",
		},

		Taxonomy: TaxonomyConfig{
			// Empty means the copy compiled into the binary.
			ResourcePath: "",
		},

		Knowledge: KnowledgeConfig{
			// Empty means no knowledge base is loaded.
			DocumentPath: "",
		},

		Watch: WatchConfig{
			Debounce: "500ms",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("SKILLMAP_DB"); path != "" {
		c.Store.DatabasePath = path
	}
	if driver := os.Getenv("SKILLMAP_DB_DRIVER"); driver != "" {
		c.Store.Driver = strings.ToLower(driver)
	}
	if path := os.Getenv("SKILLMAP_RESOURCE"); path != "" {
		c.Taxonomy.ResourcePath = path
	}
	if path := os.Getenv("SKILLMAP_KNOWLEDGE"); path != "" {
		c.Knowledge.DocumentPath = path
	}
	if level := os.Getenv("SKILLMAP_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validDriver := false
	for _, d := range ValidDrivers {
		if c.Store.Driver == d {
			validDriver = true
			break
		}
	}
	if !validDriver {
		return fmt.Errorf("invalid store driver: %s (valid: %v)", c.Store.Driver, ValidDrivers)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console", "text":
	default:
		return fmt.Errorf("invalid logging format: %s (valid: json, console)", c.Logging.Format)
	}

	return nil
}
