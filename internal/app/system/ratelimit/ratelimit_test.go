package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLimiter(t *testing.T, limit int, d time.Duration) (*Limiter, *clock) {
	t.Helper()
	l := New(limit, d)
	t.Cleanup(l.Stop)
	c := &clock{t: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
	l.mu.Lock()
	l.now = c.now
	l.mu.Unlock()
	return l, c
}

func TestAllow_WindowLimit(t *testing.T) {
	l, c := newTestLimiter(t, 2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if l.Allow("a") {
		t.Error("third request should be limited")
	}
	if !l.Allow("b") {
		t.Error("other keys have their own window")
	}
	if got := l.Remaining("a"); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}

	l.mu.Lock()
	c.t = c.t.Add(61 * time.Second)
	l.mu.Unlock()
	if !l.Allow("a") {
		t.Error("request after window expiry should pass")
	}
	if got := l.Remaining("a"); got != 1 {
		t.Errorf("Remaining = %d, want 1", got)
	}
}

func TestStop_Idempotent(t *testing.T) {
	l := New(1, time.Second)
	l.Stop()
	l.Stop()
}

func TestMiddleware(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/export.pdf", nil)
	req.RemoteAddr = "10.0.0.7:51234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestMiddleware_NilLimiter(t *testing.T) {
	var l *Limiter
	called := false
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("nil limiter should pass requests through")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.5"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.2 "}, "10.0.0.1:80", "198.51.100.2"},
		{"remote addr", nil, "192.0.2.9:4431", "192.0.2.9"},
		{"remote without port", nil, "192.0.2.9", "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
