// Package watch reloads the engine when its source files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"skillmap/internal/engine"
	"skillmap/internal/logging"
)

// DefaultDebounce is how long a file must be quiet before a reload.
const DefaultDebounce = 500 * time.Millisecond

// Reloader rebuilds and publishes a snapshot. *engine.Engine satisfies it.
type Reloader interface {
	Reload(ctx context.Context) (*engine.Snapshot, error)
}

// Watcher watches a fixed set of files and calls Reload once their events
// have settled. Directories are watched rather than the files themselves so
// that editors which save by rename are picked up.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	reloader    Reloader
	files       map[string]bool
	dirs        []string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventPath string
	LastEventType string
	LastReload    time.Time
}

// New creates a Watcher for paths. Blank paths are skipped. A debounce of
// zero uses DefaultDebounce.
func New(reloader Reloader, debounce time.Duration, paths ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]bool)
	seenDir := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = true
		if dir := filepath.Dir(abs); !seenDir[dir] {
			seenDir[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:     fw,
		reloader:    reloader,
		files:       files,
		dirs:        dirs,
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logging.Watch("Watching directory: %s", dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("Error closing watcher: %v", err)
	}
	logging.Watch("Watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounceDur / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("Context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryWatch).Error("Watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processDebounced(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if !w.files[path] {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return
	}
	logging.WatchDebug("%s event for %s", eventType, path)

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventPath = path
	w.stats.LastEventType = eventType
	w.debounceMap[path] = time.Now()
	w.mu.Unlock()
}

// processDebounced reloads once if any watched file has been quiet for the
// debounce window, however many of them changed.
func (w *Watcher) processDebounced(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, at := range w.debounceMap {
		if now.Sub(at) >= w.debounceDur {
			settled = append(settled, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}

	logging.Watch("Reloading after changes to %v", settled)
	snap, err := w.reloader.Reload(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		logging.Get(logging.CategoryWatch).Error("Reload failed: %v", err)
		w.stats.Errors++
		return
	}
	w.stats.Reloads++
	w.stats.LastReload = now
	if snap != nil {
		logging.WatchDebug("Now serving snapshot %s", snap.ID)
	}
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedDirs returns the directories registered with fsnotify.
func (w *Watcher) WatchedDirs() []string {
	return w.watcher.WatchList()
}
