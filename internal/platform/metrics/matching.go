package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MatchingMetrics tracks matching passes and what they moved.
type MatchingMetrics struct {
	runs     *prometheus.CounterVec
	events   prometheus.Counter
	quantity prometheus.Counter
	failures *prometheus.CounterVec
}

// NewMatchingMetrics registers the matching metrics on the provided registerer.
func NewMatchingMetrics(reg prometheus.Registerer) *MatchingMetrics {
	if reg == nil {
		return &MatchingMetrics{}
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "merrymatch_matching_runs_total",
		Help: "Matching passes, by outcome.",
	}, []string{"outcome"})
	events := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "merrymatch_match_events_total",
		Help: "Allocations made across all matching passes.",
	})
	quantity := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "merrymatch_matched_quantity_total",
		Help: "Units moved from donations to wishes.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "merrymatch_match_persist_failures_total",
		Help: "Records whose write failed during a matching pass, by kind.",
	}, []string{"kind"})
	reg.MustRegister(runs, events, quantity, failures)
	return &MatchingMetrics{runs: runs, events: events, quantity: quantity, failures: failures}
}

// ObserveRun records one finished pass.
func (m *MatchingMetrics) ObserveRun(events, quantity int, failuresByKind map[string]int) {
	if m == nil || m.runs == nil {
		return
	}
	outcome := "ok"
	if len(failuresByKind) > 0 {
		outcome = "partial"
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.events.Add(float64(events))
	m.quantity.Add(float64(quantity))
	for kind, n := range failuresByKind {
		m.failures.WithLabelValues(normalizeLabel(kind)).Add(float64(n))
	}
}

// IncError records a pass that could not run.
func (m *MatchingMetrics) IncError() {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues("error").Inc()
}
