package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the catalogue server.
type Metrics struct {
	ReportsRendered  *prometheus.CounterVec   // labels: format={text,json}
	CatalogueLookups *prometheus.CounterVec   // labels: result={hit,miss}
	DeriveRequests   *prometheus.CounterVec   // labels: outcome={success,bad_request}
	RequestDuration  *prometheus.HistogramVec // labels: route
	ServerUp         prometheus.Gauge
}

// NewMetrics creates and registers all collectors with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsRendered,
		m.CatalogueLookups,
		m.DeriveRequests,
		m.RequestDuration,
		m.ServerUp,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ringdown",
			Name:      "reports_rendered_total",
			Help:      "Event reports rendered, by output format.",
		}, []string{"format"}),
		CatalogueLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ringdown",
			Name:      "catalogue_lookups_total",
			Help:      "Catalogue lookups served by the API, by result.",
		}, []string{"result"}),
		DeriveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ringdown",
			Name:      "derive_requests_total",
			Help:      "Custom derivation requests, by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ringdown",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route"}),
		ServerUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ringdown",
			Name:      "server_up",
			Help:      "1 while the catalogue server is serving, 0 once shut down.",
		}),
	}
}
