package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()
	m.ObserveSnapshot(SnapshotInfo{Tier: "builtin", Domains: 8, Roles: 15, DomainPacks: 2, RolePacks: 3, Duration: 3 * time.Millisecond})
	m.ObserveDetection("domain", OutcomeMatched)

	families, err := m.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"skillmap_snapshot_loads_total",
		"skillmap_snapshot_load_duration_seconds",
		"skillmap_taxonomy_categories",
		"skillmap_knowledge_packs",
		"skillmap_classify_detections_total",
	} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestObserveSnapshot(t *testing.T) {
	m := New()
	m.ObserveSnapshot(SnapshotInfo{Tier: "store", Domains: 3, Roles: 4, Industries: 2, DomainPacks: 1, RolePacks: 5})
	m.ObserveSnapshot(SnapshotInfo{Tier: "store", Domains: 1})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SnapshotLoads.WithLabelValues("store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KeywordCategories.WithLabelValues("domain")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.KnowledgePacks.WithLabelValues("role")))
}

func TestObserveDetectionAndFailures(t *testing.T) {
	m := New()
	m.ObserveDetection("role", OutcomeUnknown)
	m.ObserveDetection("role", OutcomeUnknown)
	m.ObserveDetection("industry", OutcomeProvided)
	m.ObserveLoadFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Detections.WithLabelValues("role", OutcomeUnknown)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Detections.WithLabelValues("industry", OutcomeProvided)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotLoadFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSnapshot(SnapshotInfo{Tier: "builtin"})
		m.ObserveDetection("domain", OutcomeMatched)
		m.ObserveLoadFailure()
	})
	assert.Nil(t, m.Registry())
	families, err := m.Gather()
	assert.NoError(t, err)
	assert.Nil(t, families)
}
