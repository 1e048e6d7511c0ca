// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of one engine, registered on a
// private registry so several engines (and tests) never collide.
//
// Metrics:
//   - magicsq_candidates_evaluated_total{strategy} - candidates scored
//   - magicsq_findings_total{tag} - findings accepted by the aggregator
//   - magicsq_high_validity_total - accepted findings at or above the threshold
//   - magicsq_run_duration_seconds - wall time of Run
type Metrics struct {
	CandidatesTotal   *prometheus.CounterVec
	FindingsTotal     *prometheus.CounterVec
	HighValidityTotal prometheus.Counter
	RunDuration       prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		CandidatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magicsq_candidates_evaluated_total",
				Help: "Total number of candidates extracted, transformed and scored",
			},
			[]string{"strategy"},
		),
		FindingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magicsq_findings_total",
				Help: "Total number of findings accepted after deduplication",
			},
			[]string{"tag"},
		),
		HighValidityTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "magicsq_high_validity_total",
				Help: "Total number of accepted candidate findings at or above the validity threshold",
			},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "magicsq_run_duration_seconds",
				Help:    "Duration of a full analysis run in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		registry: reg,
	}
}

// Registry returns the private registry, for exposition or testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes every metric to path in the text exposition format.
// The write is atomic (temp file + rename).
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// The methods below are nil-safe so the engine can run without metrics.

func (m *Metrics) candidate(strategy string) {
	if m == nil {
		return
	}
	m.CandidatesTotal.WithLabelValues(strategy).Inc()
}

func (m *Metrics) accepted(tag string, high bool) {
	if m == nil {
		return
	}
	m.FindingsTotal.WithLabelValues(tag).Inc()
	if high {
		m.HighValidityTotal.Inc()
	}
}

func (m *Metrics) observeRun(d time.Duration) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(d.Seconds())
}
