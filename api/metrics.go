package api

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	searchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchlight",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"domain"},
	)

	searchRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchlight",
			Name:      "search_request_duration_seconds",
			Help:      "Search request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"domain"},
	)

	searchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchlight",
			Name:      "search_fallbacks_total",
			Help:      "Searches answered by the semantic fallback",
		},
		[]string{"domain"},
	)

	embeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchlight",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registerOnce sync.Once

// Metrics records API-level search metrics.
type Metrics struct{}

// NewMetrics registers the Prometheus collectors (once) and returns a
// recorder.
func NewMetrics() *Metrics {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchRequestsTotal)
		prometheus.MustRegister(searchRequestDuration)
		prometheus.MustRegister(searchFallbacksTotal)
		prometheus.MustRegister(embeddingCacheTotal)
	})
	return &Metrics{}
}

// ObserveSearch records one search request for a domain.
func (m *Metrics) ObserveSearch(domain string, duration time.Duration) {
	searchRequestsTotal.WithLabelValues(domain).Inc()
	searchRequestDuration.WithLabelValues(domain).Observe(duration.Seconds())
}

// CountFallback records a semantic-fallback response.
func (m *Metrics) CountFallback(domain string) {
	searchFallbacksTotal.WithLabelValues(domain).Inc()
}

// CacheCounters returns the embedding cache hit and miss counters for
// wiring into the caching engine.
func CacheCounters() (hits, misses prometheus.Counter) {
	return embeddingCacheTotal.WithLabelValues("hit"),
		embeddingCacheTotal.WithLabelValues("miss")
}
