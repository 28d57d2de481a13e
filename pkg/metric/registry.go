package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Registry = (*registryMetrics)(nil)

type registryMetrics struct {
	duration *prometheus.HistogramVec
	notFound *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newRegistryMetrics(registry *promRegistry) *registryMetrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_operation_duration_seconds",
			Help:    "Duration of item registry operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	notFound := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_not_found_total",
			Help: "Total number of registry operations that missed an item",
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_failures_total",
			Help: "Total number of failed registry operations",
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(duration, notFound, failures)

	return &registryMetrics{
		duration: duration,
		notFound: notFound,
		failures: failures,
	}
}

func (m *registryMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *registryMetrics) IncrementNotFound(operation string) {
	m.notFound.WithLabelValues(operation).Add(1)
}

func (m *registryMetrics) IncrementFailures(operation string) {
	m.failures.WithLabelValues(operation).Add(1)
}
