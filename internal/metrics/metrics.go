// Package metrics holds the Prometheus collectors for snapshot loads and
// lookups. Collectors live on a private registry; nothing is exposed over the
// network here. All methods are safe on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "skillmap"

// Metrics contains all engine metrics.
type Metrics struct {
	registry *prometheus.Registry

	SnapshotLoads        *prometheus.CounterVec
	SnapshotLoadFailures prometheus.Counter
	SnapshotLoadDuration prometheus.Histogram
	KeywordCategories    *prometheus.GaugeVec
	KnowledgePacks       *prometheus.GaugeVec
	Detections           *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SnapshotLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "snapshot",
				Name:      "loads_total",
				Help:      "Snapshots published, by keyword source tier",
			},
			[]string{"tier"},
		),

		SnapshotLoadFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "snapshot",
				Name:      "load_failures_total",
				Help:      "Snapshot builds abandoned before publish",
			},
		),

		SnapshotLoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "snapshot",
				Name:      "load_duration_seconds",
				Help:      "Time to build a snapshot",
				Buckets:   prometheus.DefBuckets,
			},
		),

		KeywordCategories: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "taxonomy",
				Name:      "categories",
				Help:      "Categories in the current keyword index, by axis",
			},
			[]string{"axis"},
		),

		KnowledgePacks: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "knowledge",
				Name:      "packs",
				Help:      "Packs in the current knowledge base, by kind",
			},
			[]string{"kind"},
		),

		Detections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "classify",
				Name:      "detections_total",
				Help:      "Label detections, by axis and outcome (matched, unknown, provided)",
			},
			[]string{"axis", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.SnapshotLoads,
		m.SnapshotLoadFailures,
		m.SnapshotLoadDuration,
		m.KeywordCategories,
		m.KnowledgePacks,
		m.Detections,
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SnapshotInfo is what the engine reports after publishing a snapshot.
type SnapshotInfo struct {
	Tier        string
	Domains     int
	Roles       int
	Industries  int
	DomainPacks int
	RolePacks   int
	Duration    time.Duration
}

// ObserveSnapshot records a published snapshot.
func (m *Metrics) ObserveSnapshot(info SnapshotInfo) {
	if m == nil {
		return
	}
	m.SnapshotLoads.WithLabelValues(info.Tier).Inc()
	m.SnapshotLoadDuration.Observe(info.Duration.Seconds())
	m.KeywordCategories.WithLabelValues("domain").Set(float64(info.Domains))
	m.KeywordCategories.WithLabelValues("role").Set(float64(info.Roles))
	m.KeywordCategories.WithLabelValues("industry").Set(float64(info.Industries))
	m.KnowledgePacks.WithLabelValues("domain").Set(float64(info.DomainPacks))
	m.KnowledgePacks.WithLabelValues("role").Set(float64(info.RolePacks))
}

// ObserveLoadFailure records an abandoned snapshot build.
func (m *Metrics) ObserveLoadFailure() {
	if m == nil {
		return
	}
	m.SnapshotLoadFailures.Inc()
}

// Detection outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeUnknown  = "unknown"
	OutcomeProvided = "provided"
)

// ObserveDetection records one detection result.
func (m *Metrics) ObserveDetection(axis, outcome string) {
	if m == nil {
		return
	}
	m.Detections.WithLabelValues(axis, outcome).Inc()
}

// Gather collects the current metric families.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	if m == nil {
		return nil, nil
	}
	return m.registry.Gather()
}
