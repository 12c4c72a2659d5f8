// Package logging provides categorized structured logging for skillmap.
// Each category is a named child of one root zap logger, so every line carries
// the subsystem that produced it. Until Initialize is called all loggers are
// no-ops, which keeps library use and tests quiet.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup and configuration
	CategoryStore     Category = "store"     // SQLite taxonomy store
	CategoryTaxonomy  Category = "taxonomy"  // Keyword index loading
	CategoryKnowledge Category = "knowledge" // Knowledge-base document parsing
	CategoryClassify  Category = "classify"  // Scoring decisions
	CategoryEngine    Category = "engine"    // Snapshot build and publish
	CategoryWatch     Category = "watch"     // File watcher and hot reload
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryBoot,
	CategoryStore,
	CategoryTaxonomy,
	CategoryKnowledge,
	CategoryClassify,
	CategoryEngine,
	CategoryWatch,
}

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	Level      string          // debug, info, warn, error
	Format     string          // json, console
	File       string          // optional output path; stderr when empty
	Categories map[string]bool // explicit false disables a category
}

// Logger wraps a sugared zap logger bound to one category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	opts    Options
	loggers = make(map[Category]*Logger)
)

// Initialize builds the root logger from opts and replaces any previous one.
// Safe to call more than once; existing category loggers are rebuilt.
func Initialize(o Options) error {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(o.Format, "console") || strings.EqualFold(o.Format, "text") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(o.Level))
	cfg.OutputPaths = []string{"stderr"}
	if o.File != "" {
		cfg.OutputPaths = []string{o.File}
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	SetRoot(logger, o)
	Get(CategoryBoot).Debug("logging initialized (level=%s format=%s)", o.Level, o.Format)
	return nil
}

// SetRoot installs an already built zap logger. Tests use it with zaptest/observer.
func SetRoot(logger *zap.Logger, o Options) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	root = logger
	opts = o
	loggers = make(map[Category]*Logger)
}

// Root returns the root zap logger.
func Root() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Sync flushes buffered entries.
func Sync() {
	_ = Root().Sync()
}

// ParseLevel converts a level name to a zapcore.Level. Unknown names map to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsCategoryEnabled reports whether a category writes anything.
// Categories are enabled unless explicitly turned off.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if opts.Categories == nil {
		return true
	}
	enabled, ok := opts.Categories[string(category)]
	return !ok || enabled
}

// Get returns the logger for a category.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	base := root
	if !categoryEnabled(category) {
		base = zap.NewNop()
	}
	l := &Logger{
		category: category,
		sugar:    base.Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

// With returns a child logger carrying structured key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// Zap exposes the underlying sugared logger.
func (l *Logger) Zap() *zap.SugaredLogger {
	return l.sugar
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Convenience helpers, one pair per category.

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debug(format, args...) }

func Store(format string, args ...interface{})      { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{}) { Get(CategoryStore).Debug(format, args...) }

func Taxonomy(format string, args ...interface{})      { Get(CategoryTaxonomy).Info(format, args...) }
func TaxonomyDebug(format string, args ...interface{}) { Get(CategoryTaxonomy).Debug(format, args...) }

func Knowledge(format string, args ...interface{})      { Get(CategoryKnowledge).Info(format, args...) }
func KnowledgeDebug(format string, args ...interface{}) { Get(CategoryKnowledge).Debug(format, args...) }

func ClassifyDebug(format string, args ...interface{}) { Get(CategoryClassify).Debug(format, args...) }

func Engine(format string, args ...interface{})      { Get(CategoryEngine).Info(format, args...) }
func EngineDebug(format string, args ...interface{}) { Get(CategoryEngine).Debug(format, args...) }

func Watch(format string, args ...interface{})      { Get(CategoryWatch).Info(format, args...) }
func WatchDebug(format string, args ...interface{}) { Get(CategoryWatch).Debug(format, args...) }

// Timer measures an operation and logs its duration on Stop.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer starts timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
