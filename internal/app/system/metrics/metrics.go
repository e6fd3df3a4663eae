// Package metrics holds the Prometheus collectors for KursManager.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	loadDuration    prometheus.Histogram
	fetchFailures   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kursmanager",
			Name:      "dashboard_load_seconds",
			Help:      "Time to load all dashboard collections",
			Buckets:   prometheus.DefBuckets,
		}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kursmanager",
			Name:      "dashboard_fetch_failures_total",
			Help:      "Failed collection reads during dashboard loads",
		}, []string{"collection"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kursmanager",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kursmanager",
			Name:      "record_cache_lookups_total",
			Help:      "Record cache lookups by collection and result",
		}, []string{"collection", "result"}),
	}
	m.registry.MustRegister(
		m.loadDuration,
		m.fetchFailures,
		m.requestDuration,
		m.cacheLookups,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry (used by tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveLoad records one dashboard load.
func (m *Metrics) ObserveLoad(d time.Duration) {
	if m == nil {
		return
	}
	m.loadDuration.Observe(d.Seconds())
}

// FetchFailed counts a failed read of the named collection.
func (m *Metrics) FetchFailed(collection string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(collection).Inc()
}

// CacheLookup counts a record cache hit or miss.
func (m *Metrics) CacheLookup(collection string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(collection, result).Inc()
}

// Middleware records request durations labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.requestDuration.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
