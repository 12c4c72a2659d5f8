package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"skillmap/internal/engine"
)

type countingReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countingReloader) Reload(ctx context.Context) (*engine.Snapshot, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &engine.Snapshot{ID: "test"}, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_RequiresFiles(t *testing.T) {
	_, err := New(&countingReloader{}, 0, "", "")
	assert.Error(t, err)
}

func TestNew_DedupesDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := New(&countingReloader{}, 0, filepath.Join(dir, "a.md"), filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	defer w.Stop()

	assert.Len(t, w.dirs, 1)
	assert.Equal(t, DefaultDebounce, w.debounceDur)
}

func TestWatcher_ReloadsOnceAfterBurst(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	kb := filepath.Join(dir, "kb.md")
	writeFile(t, kb, "initial")

	r := &countingReloader{}
	w, err := New(r, 200*time.Millisecond, kb)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsWatching())

	for i := 0; i < 5; i++ {
		writeFile(t, kb, "edit")
	}

	require.Eventually(t, func() bool { return r.calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.EqualValues(t, 1, r.calls.Load())

	stats := w.GetStats()
	assert.Equal(t, 1, stats.Reloads)
	assert.Equal(t, kb, stats.LastEventPath)
	assert.GreaterOrEqual(t, stats.Events, 1)

	w.Stop()
	assert.False(t, w.IsWatching())
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	kb := filepath.Join(dir, "kb.md")
	writeFile(t, kb, "initial")

	r := &countingReloader{}
	w, err := New(r, 20*time.Millisecond, kb)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	writeFile(t, filepath.Join(dir, "notes.txt"), "unrelated")
	time.Sleep(200 * time.Millisecond)

	assert.Zero(t, r.calls.Load())
	assert.Zero(t, w.GetStats().Events)
	w.Stop()
}

func TestWatcher_ReloadErrorCounted(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	res := filepath.Join(dir, "taxonomy.json")
	writeFile(t, res, "{}")

	r := &countingReloader{err: errors.New("boom")}
	w, err := New(r, 20*time.Millisecond, res)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	writeFile(t, res, `{"domains": {}}`)
	require.Eventually(t, func() bool { return w.GetStats().Errors >= 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, w.GetStats().Reloads)
	w.Stop()
}

func TestWatcher_StopOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	w, err := New(&countingReloader{}, 0, filepath.Join(dir, "kb.md"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second start is a no-op")
	assert.Equal(t, []string{dir}, w.WatchedDirs())

	cancel()
	w.Stop()
}

func TestWatcher_StartWithRealEngine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	kb := filepath.Join(dir, "kb.md")
	writeFile(t, kb, "")

	e := engine.New(engine.Options{KnowledgePath: kb}, nil, nil)
	require.NoError(t, e.Initialize(context.Background()))
	require.False(t, e.IsRoleKnown("design", "ui_ux_designer"))

	w, err := New(e, 30*time.Millisecond, kb)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeFile(t, kb, "```json\n{\"roleId\": \"ui_ux_designer\", \"domainId\": \"design\"}\n```\n")
	require.Eventually(t, func() bool {
		return e.IsRoleKnown("design", "ui_ux_designer")
	}, 2*time.Second, 10*time.Millisecond)
}
