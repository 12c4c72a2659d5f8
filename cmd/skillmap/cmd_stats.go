package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"skillmap/internal/logging"
	"skillmap/internal/mapping"
)

// statsCmd shows what the engine loaded
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot, store and metric counters",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.GetQueryTimeout()*2)
	defer cancel()

	rt, err := boot(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	snap := rt.engine.Current()
	idx := snap.Classifier.Indexes()

	printTitle(out, "Snapshot")
	printField(out, "ID", snap.ID)
	printField(out, "Loaded", snap.LoadedAt.Format("2006-01-02 15:04:05"))
	printField(out, "Keyword tier", snap.Tier.String())
	for _, axis := range snap.Backfilled {
		printField(out, "Backfilled", string(axis))
	}
	printList(out, "Domains", idx.Domain.Names())
	printList(out, "Roles", idx.Role.Names())
	printList(out, "Industries", idx.Industry.Names())
	printList(out, "Domain packs", snap.Knowledge.DomainIDs())
	printList(out, "Role packs", snap.Knowledge.RoleIDs())
	printList(out, "Mapped domains", mapping.KnownDomains())

	var muted []string
	for _, c := range logging.AllCategories {
		if !logging.IsCategoryEnabled(c) {
			muted = append(muted, string(c))
		}
	}
	printList(out, "Muted logs", muted)

	if rt.store != nil {
		stats, err := rt.store.GetStats()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printTitle(out, "Store ("+rt.store.Driver()+")")
		var version string
		if err := rt.store.GetDB().QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
			return fmt.Errorf("failed to read sqlite version: %w", err)
		}
		printField(out, "SQLite version", version)
		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printField(out, k, fmt.Sprint(stats[k]))
		}
	}

	families, err := rt.metrics.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(out)
	printTitle(out, "Metrics")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(out, "%s%s %v\n", mf.GetName(), formatLabels(m.GetLabel()), metricValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return m.GetHistogram().GetSampleSum()
	default:
		return m.GetUntyped().GetValue()
	}
}
