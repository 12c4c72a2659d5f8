package taxonomy

import (
	"context"
	"fmt"

	"skillmap/internal/logging"
	"skillmap/internal/store"
)

// EntrySource lists persisted taxonomy entries. *store.LocalStore satisfies it.
type EntrySource interface {
	ListActiveTaxonomyEntries(ctx context.Context) ([]store.TaxonomyEntry, error)
}

// LoadResult is the outcome of one Loader run.
type LoadResult struct {
	Indexes Indexes
	Tier    Tier
	// Backfilled lists axes the resource tier left empty and that were
	// filled from the built-ins.
	Backfilled []Axis
}

// Loader builds Indexes from the first source tier that yields data:
// store, then resource, then built-ins. Tiers are never merged.
// Either source may be nil, in which case that tier is skipped.
type Loader struct {
	Store    EntrySource
	Resource ResourceSource
}

// Load runs the fallback chain. It never fails: source errors are logged and
// the chain moves on, ending at the compiled-in defaults.
func (l Loader) Load(ctx context.Context) LoadResult {
	timer := logging.StartTimer(logging.CategoryTaxonomy, "Loader.Load")
	defer timer.Stop()

	if idx, ok := l.fromStore(ctx); ok {
		logging.Taxonomy("Keyword indexes loaded from store (domains=%d roles=%d industries=%d)",
			idx.Domain.Len(), idx.Role.Len(), idx.Industry.Len())
		return LoadResult{Indexes: idx, Tier: TierStore}
	}

	if res, ok := l.fromResource(); ok {
		logging.Taxonomy("Keyword indexes loaded from resource %s (domains=%d roles=%d backfilled=%v)",
			l.Resource.Name(), res.Indexes.Domain.Len(), res.Indexes.Role.Len(), res.Backfilled)
		return res
	}

	idx := Defaults()
	logging.Taxonomy("Keyword indexes loaded from built-in defaults (domains=%d roles=%d)",
		idx.Domain.Len(), idx.Role.Len())
	return LoadResult{Indexes: idx, Tier: TierBuiltin}
}

func (l Loader) fromStore(ctx context.Context) (Indexes, bool) {
	if l.Store == nil {
		return Indexes{}, false
	}
	entries, err := l.Store.ListActiveTaxonomyEntries(ctx)
	if err != nil {
		logging.Get(logging.CategoryTaxonomy).Warn("Store tier unavailable: %v", err)
		return Indexes{}, false
	}
	if len(entries) == 0 {
		logging.TaxonomyDebug("Store tier empty, falling through")
		return Indexes{}, false
	}

	idx := FromEntries(entries)
	if idx.Empty() {
		logging.Get(logging.CategoryTaxonomy).Warn("Store tier has %d active entries but no usable keywords, falling through", len(entries))
		return Indexes{}, false
	}
	return idx, true
}

// FromEntries groups entry keywords under their domain, role and industry.
// Entry order decides category order. Blank labels and blank keywords are
// dropped silently.
func FromEntries(entries []store.TaxonomyEntry) Indexes {
	domains, roles, industries := NewBuilder(), NewBuilder(), NewBuilder()
	for _, e := range entries {
		keywords := e.KeywordList()
		domains.Add(e.Domain, keywords...)
		roles.Add(e.Role, keywords...)
		industries.Add(e.Industry, keywords...)
	}
	return Indexes{
		Domain:   domains.Build(),
		Role:     roles.Build(),
		Industry: industries.Build(),
	}
}

func (l Loader) fromResource() (LoadResult, bool) {
	if l.Resource == nil {
		return LoadResult{}, false
	}
	data, err := l.Resource.ReadResource()
	if err != nil {
		logging.Get(logging.CategoryTaxonomy).Warn("Resource tier unavailable (%s): %v", l.Resource.Name(), err)
		return LoadResult{}, false
	}
	idx, backfilled, err := ParseResource(data)
	if err != nil {
		logging.Get(logging.CategoryTaxonomy).Warn("Resource tier unusable (%s): %v", l.Resource.Name(), err)
		return LoadResult{}, false
	}
	return LoadResult{Indexes: idx, Tier: TierResource, Backfilled: backfilled}, true
}

// ParseResource decodes a keyword resource. When exactly one of the two axes
// is empty, that axis is replaced whole by the built-in one; a resource with
// both axes empty is an error.
func ParseResource(data []byte) (Indexes, []Axis, error) {
	doc, err := decodeResource(data)
	if err != nil {
		return Indexes{}, nil, fmt.Errorf("failed to decode resource: %w", err)
	}

	idx := Indexes{
		Domain: buildFromDefs(doc.Domains),
		Role:   buildFromDefs(doc.Roles),
	}
	if idx.Domain.Empty() && idx.Role.Empty() {
		return Indexes{}, nil, fmt.Errorf("resource defines no usable domains or roles")
	}

	var backfilled []Axis
	defaults := Defaults()
	if idx.Domain.Empty() {
		idx.Domain = defaults.Domain
		backfilled = append(backfilled, AxisDomain)
	}
	if idx.Role.Empty() {
		idx.Role = defaults.Role
		backfilled = append(backfilled, AxisRole)
	}
	return idx, backfilled, nil
}
