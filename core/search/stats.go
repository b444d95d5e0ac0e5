package search

import (
	"sort"
	"sync"
	"time"
)

// Stats is a snapshot of search behavior since startup.
type Stats struct {
	TotalQueries    int64         `json:"total_queries"`
	StrictQueries   int64         `json:"strict_queries"`
	FallbackQueries int64         `json:"fallback_queries"`
	DegradedQueries int64         `json:"degraded_queries"`
	AverageLatency  time.Duration `json:"average_latency"`
	P95Latency      time.Duration `json:"p95_latency"`
}

// Statistics tracks search performance metrics
type Statistics struct {
	mu              sync.RWMutex
	totalQueries    int64
	strictQueries   int64
	fallbackQueries int64
	degradedQueries int64
	totalLatency    time.Duration
	latencies       []time.Duration
}

// NewStatistics creates new search statistics
func NewStatistics() *Statistics {
	return &Statistics{
		latencies: make([]time.Duration, 0, 1000),
	}
}

// RecordSearch records one search. fallback marks queries answered by
// the semantic fallback path, degraded marks queries that ran without
// a query embedding.
func (s *Statistics) RecordSearch(latency time.Duration, fallback, degraded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalQueries++
	if fallback {
		s.fallbackQueries++
	} else {
		s.strictQueries++
	}
	if degraded {
		s.degradedQueries++
	}

	s.totalLatency += latency
	s.latencies = append(s.latencies, latency)

	// Keep only last 1000 for percentile calculation
	if len(s.latencies) > 1000 {
		s.latencies = s.latencies[len(s.latencies)-1000:]
	}
}

// GetStats returns current statistics
func (s *Statistics) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var avgLatency time.Duration
	if s.totalQueries > 0 {
		avgLatency = s.totalLatency / time.Duration(s.totalQueries)
	}

	var p95Latency time.Duration
	if len(s.latencies) > 0 {
		sorted := make([]time.Duration, len(s.latencies))
		copy(sorted, s.latencies)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i] < sorted[j]
		})
		p95Index := int(float64(len(sorted)) * 0.95)
		if p95Index < len(sorted) {
			p95Latency = sorted[p95Index]
		}
	}

	return Stats{
		TotalQueries:    s.totalQueries,
		StrictQueries:   s.strictQueries,
		FallbackQueries: s.fallbackQueries,
		DegradedQueries: s.degradedQueries,
		AverageLatency:  avgLatency,
		P95Latency:      p95Latency,
	}
}
