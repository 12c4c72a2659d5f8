package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skillmap/internal/watch"
)

// watchCmd serves as a long-running reload loop
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the snapshot whenever the resource or knowledge file changes",
	Long: `Builds a snapshot, then watches the keyword resource file and the knowledge
document and rebuilds on change. Stops on SIGINT or SIGTERM.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := boot(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	paths := []string{cfg.Taxonomy.ResourcePath, cfg.Knowledge.DocumentPath}
	w, err := watch.New(rt.engine, cfg.Watch.GetDebounce(), paths...)
	if err != nil {
		return fmt.Errorf("nothing to watch (set --resource or --knowledge): %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	logger.Info("Watching for changes",
		zap.Strings("dirs", w.WatchedDirs()),
		zap.Duration("debounce", cfg.Watch.GetDebounce()))
	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("watching; Ctrl+C to stop"))

	<-ctx.Done()
	stats := w.GetStats()
	logger.Info("Watch stopped",
		zap.Int("events", stats.Events),
		zap.Int("reloads", stats.Reloads),
		zap.Int("errors", stats.Errors))
	return nil
}
