// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// Histogram range in microseconds: 1µs to 60s at 3 significant figures.
const (
	histogramMinMicros = 1
	histogramMaxMicros = 60_000_000
	histogramSigFigs   = 3
)

// endpointHistogram holds the latency distribution of one endpoint.
type endpointHistogram struct {
	hist *hdrhistogram.Histogram
	slow int64
}

// PerformanceMonitor tracks per-endpoint latency distributions.
//
// Each endpoint ("METHOD /route/pattern") owns an HDR histogram, so memory
// is constant per endpoint no matter how many requests are recorded, and
// percentiles are accurate to three significant figures.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	endpoints     map[string]*endpointHistogram
	slowThreshold time.Duration
	since         time.Time
}

// NewPerformanceMonitor creates a monitor that flags requests slower than
// slowThreshold. A zero threshold disables slow request detection.
func NewPerformanceMonitor(slowThreshold time.Duration) *PerformanceMonitor {
	return &PerformanceMonitor{
		endpoints:     make(map[string]*endpointHistogram),
		slowThreshold: slowThreshold,
		since:         time.Now(),
	}
}

// RecordRequest adds one observation for endpoint and reports whether it
// exceeded the slow threshold.
func (pm *PerformanceMonitor) RecordRequest(endpoint string, d time.Duration) bool {
	micros := d.Microseconds()
	if micros < histogramMinMicros {
		micros = histogramMinMicros
	}
	if micros > histogramMaxMicros {
		micros = histogramMaxMicros
	}
	slow := pm.slowThreshold > 0 && d > pm.slowThreshold

	pm.mu.Lock()
	defer pm.mu.Unlock()

	eh, ok := pm.endpoints[endpoint]
	if !ok {
		eh = &endpointHistogram{hist: hdrhistogram.New(histogramMinMicros, histogramMaxMicros, histogramSigFigs)}
		pm.endpoints[endpoint] = eh
	}
	// Clamped above, so RecordValue cannot fail.
	_ = eh.hist.RecordValue(micros) //nolint:errcheck
	if slow {
		eh.slow++
	}
	return slow
}

// GetStats returns latency summaries for every endpoint, busiest first.
func (pm *PerformanceMonitor) GetStats() []models.EndpointLatency {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	stats := make([]models.EndpointLatency, 0, len(pm.endpoints))
	for endpoint, eh := range pm.endpoints {
		h := eh.hist
		stats = append(stats, models.EndpointLatency{
			Endpoint:  endpoint,
			Count:     h.TotalCount(),
			MeanMS:    h.Mean() / 1000,
			P50MS:     microsToMS(h.ValueAtQuantile(50)),
			P95MS:     microsToMS(h.ValueAtQuantile(95)),
			P99MS:     microsToMS(h.ValueAtQuantile(99)),
			MaxMS:     microsToMS(h.Max()),
			SlowCount: eh.slow,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// LogSlowRequests logs every endpoint whose p99 exceeds the slow threshold
// and returns how many were logged.
func (pm *PerformanceMonitor) LogSlowRequests() int {
	if pm.slowThreshold <= 0 {
		return 0
	}
	thresholdMS := float64(pm.slowThreshold.Microseconds()) / 1000

	n := 0
	for _, s := range pm.GetStats() {
		if s.P99MS <= thresholdMS {
			continue
		}
		n++
		logging.Warn().
			Str("endpoint", s.Endpoint).
			Int64("requests", s.Count).
			Float64("p99_ms", s.P99MS).
			Float64("threshold_ms", thresholdMS).
			Int64("slow_requests", s.SlowCount).
			Msg("Endpoint p99 latency above threshold")
	}
	return n
}

// LogSummary writes one info line per endpoint with its latency percentiles.
func (pm *PerformanceMonitor) LogSummary() {
	pm.mu.RLock()
	since := pm.since
	pm.mu.RUnlock()

	for _, s := range pm.GetStats() {
		logging.Info().
			Str("endpoint", s.Endpoint).
			Int64("requests", s.Count).
			Float64("mean_ms", s.MeanMS).
			Float64("p50_ms", s.P50MS).
			Float64("p95_ms", s.P95MS).
			Float64("p99_ms", s.P99MS).
			Float64("max_ms", s.MaxMS).
			Time("since", since).
			Msg("Endpoint latency")
	}
}

// Middleware records the latency of every request under its route pattern.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		route := RoutePattern(r)
		if pm.RecordRequest(r.Method+" "+route, duration) {
			metrics.RecordSlowRequest(route)
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", statusOf(ww)).
				Dur("duration", duration).
				Dur("threshold", pm.slowThreshold).
				Msg("Slow request detected")
		}
	})
}

func microsToMS(v int64) float64 {
	return float64(v) / 1000
}
