// Package engine owns the published snapshot of keyword indexes and
// knowledge packs and exposes the query surface over it.
//
// An Engine starts out serving an empty snapshot. Initialize builds the first
// real one; Reload builds a replacement and swaps it in atomically, so a
// reader sees either the old snapshot or the new one and never a mix.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skillmap/internal/classify"
	"skillmap/internal/knowledge"
	"skillmap/internal/logging"
	"skillmap/internal/metrics"
	"skillmap/internal/taxonomy"
)

// Options selects the sources a snapshot is built from.
type Options struct {
	// ResourcePath is a keyword resource file. Empty uses the bundled copy.
	ResourcePath string
	// KnowledgePath is the knowledge-base document. Empty means no packs.
	KnowledgePath string
	// StoreTimeout bounds the store query. Zero means no extra bound.
	StoreTimeout time.Duration
}

// Engine serves queries from the current snapshot.
type Engine struct {
	opts    Options
	entries taxonomy.EntrySource
	metrics *metrics.Metrics

	current atomic.Pointer[Snapshot]

	// requested counts Reload calls. built is the request count observed
	// when the last successful build started; guarded by buildMu.
	requested atomic.Uint64
	buildMu   sync.Mutex
	built     uint64
}

// New returns an Engine serving an empty snapshot. entries may be nil to skip
// the store tier; m may be nil to disable metrics.
func New(opts Options, entries taxonomy.EntrySource, m *metrics.Metrics) *Engine {
	e := &Engine{
		opts:    opts,
		entries: entries,
		metrics: m,
	}
	e.current.Store(emptySnapshot())
	return e
}

// Initialize builds and publishes the first snapshot.
func (e *Engine) Initialize(ctx context.Context) error {
	_, err := e.Reload(ctx)
	return err
}

// Reload builds a new snapshot and publishes it. Builds never overlap.
// A caller that arrives while a build is running waits for it; if that build
// started before the call, the caller then builds again so that sources
// changed in between are always picked up. On error the previous snapshot
// stays current.
func (e *Engine) Reload(ctx context.Context) (*Snapshot, error) {
	seq := e.requested.Add(1)

	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	if e.built >= seq {
		logging.EngineDebug("Reload %d covered by a build that started after it", seq)
		return e.Current(), nil
	}

	target := e.requested.Load()
	snap, err := e.build(ctx)
	if err != nil {
		e.metrics.ObserveLoadFailure()
		logging.Get(logging.CategoryEngine).Error("Snapshot reload failed: %v", err)
		return nil, err
	}
	e.built = target
	e.current.Store(snap)
	return snap, nil
}

// Current returns the published snapshot. It is never nil.
func (e *Engine) Current() *Snapshot {
	return e.current.Load()
}

func (e *Engine) build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	var (
		tax taxonomy.LoadResult
		kb  *knowledge.Base
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loadCtx := gctx
		if e.opts.StoreTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(gctx, e.opts.StoreTimeout)
			defer cancel()
		}
		loader := taxonomy.Loader{
			Store:    e.entries,
			Resource: taxonomy.ResourceFor(e.opts.ResourcePath),
		}
		tax = loader.Load(loadCtx)
		return nil
	})
	g.Go(func() error {
		kb = knowledge.LoadFile(e.opts.KnowledgePath)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("snapshot build cancelled: %w", err)
	}

	snap := &Snapshot{
		ID:         uuid.NewString(),
		LoadedAt:   time.Now(),
		Tier:       tax.Tier,
		Backfilled: tax.Backfilled,
		Classifier: classify.New(tax.Indexes),
		Knowledge:  kb,
	}

	elapsed := time.Since(start)
	e.metrics.ObserveSnapshot(metrics.SnapshotInfo{
		Tier:        tax.Tier.String(),
		Domains:     tax.Indexes.Domain.Len(),
		Roles:       tax.Indexes.Role.Len(),
		Industries:  tax.Indexes.Industry.Len(),
		DomainPacks: len(kb.DomainIDs()),
		RolePacks:   len(kb.RoleIDs()),
		Duration:    elapsed,
	})
	logging.Engine("Published snapshot %s (tier=%s domains=%d roles=%d industries=%d packs=%d/%d) in %v",
		snap.ID, snap.Tier, tax.Indexes.Domain.Len(), tax.Indexes.Role.Len(), tax.Indexes.Industry.Len(),
		len(kb.DomainIDs()), len(kb.RoleIDs()), elapsed)
	return snap, nil
}
