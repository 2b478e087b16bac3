// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

func newTestRouter(mw ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/broken", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/silent", func(http.ResponseWriter, *http.Request) {})
	return r
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seenID, seenCorrelation string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		seenCorrelation = logging.CorrelationIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		inbound  string
		wantEcho bool
	}{
		{"generated when absent", "", false},
		{"upstream id kept", "abc-123.def_456", true},
		{"unsafe id replaced", "bad id\nwith newline", false},
		{"overlong id replaced", strings.Repeat("a", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(RequestIDHeader, tt.inbound)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("response has no X-Request-ID")
			}
			if got != seenID {
				t.Errorf("header %q != context %q", got, seenID)
			}
			if tt.wantEcho && got != tt.inbound {
				t.Errorf("X-Request-ID = %q, want upstream %q", got, tt.inbound)
			}
			if !tt.wantEcho && got == tt.inbound {
				t.Errorf("inbound %q should have been replaced", tt.inbound)
			}
			if len(seenCorrelation) != 8 {
				t.Errorf("correlation id = %q, want 8 chars", seenCorrelation)
			}
		})
	}
}

func TestRoutePattern_Unmatched(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := RoutePattern(req); got != UnmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, UnmatchedRoute)
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	router := newTestRouter(PrometheusMetrics)

	const pattern = "/items/{id}"
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "200"))

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", pattern, "200"))
	if after-before != 3 {
		t.Errorf("requests under %s = %v, want 3", pattern, after-before)
	}

	errBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/broken", "500"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))
	if d := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/broken", "500")) - errBefore; d != 1 {
		t.Errorf("500 counter delta = %v, want 1", d)
	}

	silentBefore := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/silent", "200"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/silent", nil))
	if d := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/silent", "200")) - silentBefore; d != 1 {
		t.Errorf("handler without WriteHeader should count as 200, delta = %v", d)
	}
}

func TestPerformanceMonitor_RecordAndStats(t *testing.T) {
	t.Parallel()
	pm := NewPerformanceMonitor(100 * time.Millisecond)

	for i := 1; i <= 100; i++ {
		pm.RecordRequest("GET /a", time.Duration(i)*time.Millisecond)
	}
	pm.RecordRequest("GET /b", 5*time.Millisecond)

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("GetStats() returned %d endpoints, want 2", len(stats))
	}
	a := stats[0]
	if a.Endpoint != "GET /a" || a.Count != 100 {
		t.Fatalf("busiest endpoint = %+v", a)
	}
	if a.P50MS < 49 || a.P50MS > 51 {
		t.Errorf("P50MS = %v, want ~50", a.P50MS)
	}
	if a.P99MS < 98 || a.P99MS > 100.1 {
		t.Errorf("P99MS = %v, want ~99", a.P99MS)
	}
	if a.MaxMS < 99.9 || a.MaxMS > 100.1 {
		t.Errorf("MaxMS = %v, want ~100", a.MaxMS)
	}
	if a.MeanMS < 50 || a.MeanMS > 51 {
		t.Errorf("MeanMS = %v, want ~50.5", a.MeanMS)
	}
	if a.SlowCount != 0 {
		t.Errorf("SlowCount = %d, want 0 (threshold is exclusive)", a.SlowCount)
	}

	if !pm.RecordRequest("GET /b", 150*time.Millisecond) {
		t.Error("150ms should be reported slow")
	}
	if pm.RecordRequest("GET /b", 0) {
		t.Error("0ms should not be slow")
	}
}

func TestPerformanceMonitor_ClampsOutOfRange(t *testing.T) {
	t.Parallel()
	pm := NewPerformanceMonitor(0)

	pm.RecordRequest("GET /x", 0)
	pm.RecordRequest("GET /x", 2*time.Hour)

	s := pm.GetStats()[0]
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.MaxMS < 59_000 {
		t.Errorf("MaxMS = %v, want clamped near 60000", s.MaxMS)
	}
	if pm.LogSlowRequests() != 0 {
		t.Error("zero threshold disables slow detection")
	}
}

func TestPerformanceMonitor_LogSlowRequests(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(orig) })

	pm := NewPerformanceMonitor(10 * time.Millisecond)
	pm.RecordRequest("GET /fast", time.Millisecond)
	pm.RecordRequest("GET /slow", 50*time.Millisecond)

	if n := pm.LogSlowRequests(); n != 1 {
		t.Errorf("LogSlowRequests() = %d, want 1", n)
	}
	if !strings.Contains(buf.String(), "GET /slow") || strings.Contains(buf.String(), "GET /fast") {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	buf.Reset()
	pm.LogSummary()
	if strings.Count(buf.String(), "Endpoint latency") != 2 {
		t.Errorf("LogSummary should log both endpoints: %s", buf.String())
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	t.Parallel()
	pm := NewPerformanceMonitor(time.Hour)
	router := newTestRouter(pm.Middleware)

	for i := 0; i < 5; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+string(rune('a'+i)), nil))
	}

	stats := pm.GetStats()
	if len(stats) != 1 {
		t.Fatalf("expected one endpoint, got %+v", stats)
	}
	if stats[0].Endpoint != "GET /items/{id}" || stats[0].Count != 5 {
		t.Errorf("stats = %+v", stats[0])
	}
}

func TestPerformanceMonitor_Concurrent(t *testing.T) {
	t.Parallel()
	pm := NewPerformanceMonitor(time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pm.RecordRequest("GET /c", time.Millisecond)
				_ = pm.GetStats()
			}
		}()
	}
	wg.Wait()

	if got := pm.GetStats()[0].Count; got != 1000 {
		t.Errorf("Count = %d, want 1000", got)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(orig) })

	router := newTestRouter(RequestID, RequestLogger)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	out := buf.String()
	for _, want := range []string{`"level":"error"`, `"status":500`, `"route":"/broken"`, `"request_id"`, "Request completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}
