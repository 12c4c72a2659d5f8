package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skillmap/internal/taxonomy"
)

var (
	seedFrom    string
	seedReplace bool
)

// seedCmd copies a keyword source into the store
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the taxonomy store from the resource or built-in keywords",
	Long: `Writes one store entry per category of the chosen source. Once the store
has active entries it becomes the keyword source for every later run.

Sources:
  resource - the keyword resource file, or the bundled copy
  builtin  - the compiled-in defaults`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFrom, "from", "resource", "Source to copy: resource or builtin")
	seedCmd.Flags().BoolVar(&seedReplace, "replace", false, "Replace existing entries in one transaction")
}

func seedIndexes(from string) (taxonomy.Indexes, error) {
	switch from {
	case "builtin":
		return taxonomy.Defaults(), nil
	case "resource":
		src := taxonomy.ResourceFor(cfg.Taxonomy.ResourcePath)
		data, err := src.ReadResource()
		if err != nil {
			return taxonomy.Indexes{}, fmt.Errorf("failed to read %s: %w", src.Name(), err)
		}
		idx, _, err := taxonomy.ParseResource(data)
		if err != nil {
			return taxonomy.Indexes{}, fmt.Errorf("failed to parse %s: %w", src.Name(), err)
		}
		return idx, nil
	default:
		return taxonomy.Indexes{}, fmt.Errorf("unknown seed source %q (valid: resource, builtin)", from)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.GetQueryTimeout()*4)
	defer cancel()

	idx, err := seedIndexes(seedFrom)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	if st == nil {
		return fmt.Errorf("store is disabled: set store.database_path, SKILLMAP_DB or --db")
	}
	defer st.Close()

	entries := taxonomy.ToEntries(idx)
	var n int
	if seedReplace {
		n, err = st.ReplaceTaxonomyEntries(ctx, entries)
	} else {
		var existing int64
		if existing, err = st.Count(ctx); err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("store already has %d entries (use --replace)", existing)
		}
		n, err = st.AddTaxonomyEntries(ctx, entries)
	}
	if err != nil {
		return err
	}
	logger.Info("Seeded taxonomy store",
		zap.String("from", seedFrom),
		zap.String("path", cfg.Store.DatabasePath),
		zap.Int("entries", n))

	out := cmd.OutOrStdout()
	printTitle(out, "Seeded "+cfg.Store.DatabasePath)
	printField(out, "Source", seedFrom)
	printField(out, "Entries", fmt.Sprint(n))
	printField(out, "Domains", fmt.Sprint(idx.Domain.Len()))
	printField(out, "Roles", fmt.Sprint(idx.Role.Len()))
	return nil
}
