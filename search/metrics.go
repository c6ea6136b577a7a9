package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for plankpath_searches_total.
const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeAborted     = "aborted"
)

// Metrics groups the prometheus collectors observed by an Engine.
// One Metrics value may be shared by many engines.
type Metrics struct {
	searches  *prometheus.CounterVec
	nodes     prometheus.Histogram
	duration  *prometheus.HistogramVec
	shortcuts prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "plankpath_searches_total",
			Help: "Finished searches by outcome",
		}, []string{"outcome"}),
		nodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "plankpath_search_nodes",
			Help:    "Pillar visits per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plankpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}, []string{"mode"}),
		shortcuts: f.NewCounter(prometheus.CounterOpts{
			Name: "plankpath_lower_bound_hits_total",
			Help: "Searches stopped early by reaching the Manhattan lower bound",
		}),
	}
}

// observe records one finished search. Safe on a nil receiver.
func (m *Metrics) observe(mode string, st Stats, found bool, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeUnreachable
	switch {
	case err != nil:
		outcome = outcomeAborted
	case found:
		outcome = outcomeFound
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.nodes.Observe(float64(st.Nodes))
	m.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if st.ShortCircuit {
		m.shortcuts.Inc()
	}
}
