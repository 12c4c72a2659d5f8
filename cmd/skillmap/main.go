package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skillmap/internal/config"
	"skillmap/internal/engine"
	"skillmap/internal/logging"
	"skillmap/internal/metrics"
	"skillmap/internal/store"
	"skillmap/internal/taxonomy"
)

var (
	// Global flags
	configPath    string
	verbose       bool
	dbPath        string
	dbDriver      string
	resourcePath  string
	knowledgePath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "skillmap - career taxonomy resolution and knowledge-base checks",
	Long: `skillmap maps free-text career targets to domain, role and industry labels
and checks skills and tools against a knowledge base of domain and role packs.

Keyword sources, first that yields data wins:
  1. the SQLite taxonomy store
  2. the keyword resource (file, or the bundled copy)
  3. the compiled-in defaults`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		opts := cfg.Logging.Options()
		if verbose {
			opts.Level = "debug"
		}
		if err := logging.Initialize(opts); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Root()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "skillmap.yaml", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Taxonomy store path (empty string disables the store)")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Store driver: sqlite3 or sqlite")
	rootCmd.PersistentFlags().StringVar(&resourcePath, "resource", "", "Keyword resource file (default: bundled)")
	rootCmd.PersistentFlags().StringVar(&knowledgePath, "knowledge", "", "Knowledge-base document")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides lets explicitly set flags win over file and env values.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.Store.DatabasePath = dbPath
	}
	if flags.Changed("driver") {
		c.Store.Driver = strings.ToLower(dbDriver)
	}
	if flags.Changed("resource") {
		c.Taxonomy.ResourcePath = resourcePath
	}
	if flags.Changed("knowledge") {
		c.Knowledge.DocumentPath = knowledgePath
	}
}

// openStore opens the configured store, or returns nil when it is disabled.
func openStore() (*store.LocalStore, error) {
	if !cfg.Store.Enabled() {
		return nil, nil
	}
	return store.NewLocalStore(cfg.Store.Driver, cfg.Store.DatabasePath)
}

// runtime is everything a command needs to answer queries.
type runtime struct {
	engine  *engine.Engine
	store   *store.LocalStore
	metrics *metrics.Metrics
}

func (r *runtime) Close() {
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
	}
}

// boot opens the store and builds the first snapshot.
func boot(ctx context.Context) (*runtime, error) {
	st, err := openStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// A nil *LocalStore must not reach the loader as a non-nil interface.
	var entries taxonomy.EntrySource
	if st != nil {
		entries = st
	}

	m := metrics.New()
	e := engine.New(engine.Options{
		ResourcePath:  cfg.Taxonomy.ResourcePath,
		KnowledgePath: cfg.Knowledge.DocumentPath,
		StoreTimeout:  cfg.Store.GetQueryTimeout(),
	}, entries, m)

	if err := e.Initialize(ctx); err != nil {
		if st != nil {
			_ = st.Close()
		}
		return nil, err
	}
	snap := e.Current()
	logger.Debug("Engine ready",
		zap.String("snapshot", snap.ID),
		zap.Stringer("tier", snap.Tier))
	return &runtime{engine: e, store: st, metrics: m}, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
