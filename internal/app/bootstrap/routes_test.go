package bootstrap

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/store/recordcache"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/dalemusser/kursmanager/internal/app/system/ratelimit"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"github.com/dalemusser/kursmanager/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func testDeps(src *testutil.FakeSource) DBDeps {
	m := metrics.New()
	return DBDeps{
		Backend: src,
		Source:  recordcache.New(src, nil, time.Minute, testLogger(), m),
		Metrics: m,
	}
}

func TestRouter_Mounts(t *testing.T) {
	src := &testutil.FakeSource{
		CourseList: []models.Course{
			testutil.Course("c1", "Deutsch A1", testutil.Date(2026, 11, 3), nil, testutil.Price(120)),
		},
	}
	cfg := validConfig()
	cfg.MetricsEnabled = true
	r := newRouter(cfg, testDeps(src), testLogger())

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusSeeOther},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/dashboard/summary.json", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/dashboard/summary.json", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = false
	r := newRouter(cfg, testDeps(&testutil.FakeSource{}), testLogger())

	// /metrics falls through to the not-found handler.
	if routeExists(r, "/metrics") {
		t.Error("expected /metrics to be unmounted")
	}
}

func TestRouter_RecordsRequestMetrics(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = true
	deps := testDeps(&testutil.FakeSource{})
	r := newRouter(cfg, deps, testLogger())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "kursmanager_http_request_duration_seconds") {
		t.Error("expected request duration histogram in /metrics output")
	}
}

func TestRouter_HealthReportsBackendFailure(t *testing.T) {
	src := &testutil.FakeSource{PingErr: errTest}
	r := newRouter(validConfig(), testDeps(src), testLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

var errTest = errors.New("backend down")

func routeExists(r chi.Routes, path string) bool {
	return r.Match(chi.NewRouteContext(), http.MethodGet, path)
}

func TestRouter_ExportRateLimit(t *testing.T) {
	exportLimiter = ratelimit.New(1, time.Minute)
	t.Cleanup(func() {
		exportLimiter.Stop()
		exportLimiter = nil
	})
	r := newRouter(validConfig(), testDeps(&testutil.FakeSource{}), testLogger())

	codes := make([]int, 0, 3)
	for _, path := range []string{"/dashboard/export.pdf", "/dashboard/export.xlsx", "/dashboard/summary.json"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		codes = append(codes, rec.Code)
	}

	want := []int{http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: status = %d, want %d", i, codes[i], want[i])
		}
	}
}
