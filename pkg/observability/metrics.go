// Package observability provides Prometheus metrics for the twcai client.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestBuckets defines histogram buckets suited for LLM inference
// latencies, ranging from 100ms to 120s.
var RequestBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

// Metrics holds per-operation request metrics. The registry is
// injectable so the embedding program owns registration; pass
// prometheus.DefaultRegisterer to use the default registry.
type Metrics struct {
	// RequestsTotal counts API requests by operation and status class
	// ("2xx", "4xx", "5xx", or "error" for transport failures).
	RequestsTotal *prometheus.CounterVec

	// RequestDuration records API request duration in seconds by operation.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the client metrics. A nil registerer
// skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twcai_requests_total",
				Help: "Total API requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "twcai_request_duration_seconds",
				Help:    "API request duration",
				Buckets: RequestBuckets,
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.RequestsTotal, m.RequestDuration)
	}
	return m
}

// Observe records one completed request.
func (m *Metrics) Observe(operation, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
