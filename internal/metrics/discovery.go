package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Discovery
	metricsOnce   sync.Once
)

// Discovery holds Prometheus metrics for project discovery.
type Discovery struct {
	MutationsTotal *prometheus.CounterVec
	SearchesTotal  prometheus.Counter
	ResultSize     prometheus.Histogram
	SessionsTotal  *prometheus.CounterVec
}

// NewDiscovery creates and registers discovery metrics once per process.
//
// Metrics:
//   - discovery_mutations_total{op} - filter mutations by operation
//   - discovery_searches_total - stateless searches
//   - discovery_result_size - number of projects in a computed result set
//   - discovery_sessions_total{event} - session lifecycle events (started, ended).
//     Sessions that expire by TTL are not counted as ended.
func NewDiscovery() *Discovery {
	metricsOnce.Do(func() {
		globalMetrics = &Discovery{
			MutationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "discovery_mutations_total",
					Help: "Total number of filter state mutations",
				},
				[]string{"op"},
			),
			SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "discovery_searches_total",
				Help: "Total number of stateless project searches",
			}),
			ResultSize: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "discovery_result_size",
				Help:    "Number of projects in computed result sets",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			}),
			SessionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "discovery_sessions_total",
					Help: "Discovery session lifecycle events",
				},
				[]string{"event"},
			),
		}
	})
	return globalMetrics
}

// ObserveMutation records a filter mutation and the size of its result set.
func (m *Discovery) ObserveMutation(op string, results int) {
	if m == nil {
		return
	}
	m.MutationsTotal.WithLabelValues(op).Inc()
	m.ResultSize.Observe(float64(results))
}

// ObserveSearch records a stateless search.
func (m *Discovery) ObserveSearch(results int) {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
	m.ResultSize.Observe(float64(results))
}

// SessionStarted records a new session.
func (m *Discovery) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues("started").Inc()
}

// SessionEnded records an explicitly ended session.
func (m *Discovery) SessionEnded() {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues("ended").Inc()
}
