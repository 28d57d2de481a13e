package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Store = (*storeMetrics)(nil)

type storeMetrics struct {
	hits   *prometheus.CounterVec
	misses *prometheus.CounterVec
	size   *prometheus.GaugeVec
}

func newStoreMetrics(registry *promRegistry) *storeMetrics {
	hits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_hits_total",
			Help: "Total number of store lookups that found a record",
		},
		[]string{"type"},
	)

	misses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_misses_total",
			Help: "Total number of store lookups that missed",
		},
		[]string{"type"},
	)

	size := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_size",
			Help: "Current number of records in the store",
		},
		[]string{"type"},
	)

	registry.registry.MustRegister(hits, misses, size)

	return &storeMetrics{
		hits:   hits,
		misses: misses,
		size:   size,
	}
}

func (m *storeMetrics) Hit(storeType string) {
	m.hits.WithLabelValues(storeType).Add(1)
}

func (m *storeMetrics) Miss(storeType string) {
	m.misses.WithLabelValues(storeType).Add(1)
}

func (m *storeMetrics) Size(storeType string, size int) {
	m.size.WithLabelValues(storeType).Set(float64(size))
}
