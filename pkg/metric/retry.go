package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Retry = (*retryMetrics)(nil)

type retryMetrics struct {
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newRetryMetrics(registry *promRegistry) *retryMetrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_operation_duration_seconds",
			Help:    "Duration of API operations in seconds, retries included",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"operation"},
	)

	retries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_operation_retries_total",
			Help: "Total number of retried API requests",
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_operation_failures_total",
			Help: "Total number of failed API operations",
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(duration, retries, failures)

	return &retryMetrics{
		duration: duration,
		retries:  retries,
		failures: failures,
	}
}

func (m *retryMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *retryMetrics) IncrementRetries(operation string) {
	m.retries.WithLabelValues(operation).Add(1)
}

func (m *retryMetrics) IncrementFailures(operation string) {
	m.failures.WithLabelValues(operation).Add(1)
}
