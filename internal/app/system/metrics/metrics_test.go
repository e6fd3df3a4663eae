package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetchFailed_CountsPerCollection(t *testing.T) {
	m := New()
	m.FetchFailed("enrollments")
	m.FetchFailed("enrollments")
	m.FetchFailed("rooms")

	if got := testutil.ToFloat64(m.fetchFailures.WithLabelValues("enrollments")); got != 2 {
		t.Errorf("enrollments: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fetchFailures.WithLabelValues("rooms")); got != 1 {
		t.Errorf("rooms: got %v, want 1", got)
	}
}

func TestNilMetrics_IsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveLoad(time.Second)
	m.FetchFailed("courses")
	m.CacheLookup("courses", true)

	called := false
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if !called {
		t.Error("expected next handler to run")
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveLoad(150 * time.Millisecond)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/kurse", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.Handle("/metrics", m.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/kurse", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"kursmanager_dashboard_load_seconds_count 1",
		`kursmanager_http_request_duration_seconds_count{method="GET",route="/kurse",status="418"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
