// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap their data-source reads in context.WithTimeout using these
// values. They can be changed once at startup with Configure.
//
//   - Ping: health checks and connectivity verification
//   - Short: single-record reads, cache lookups
//   - Medium: list reads for section pages
//   - Dashboard: the five-way dashboard load, all reads together
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing      = 2 * time.Second
	DefaultShort     = 5 * time.Second
	DefaultMedium    = 10 * time.Second
	DefaultDashboard = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping      = DefaultPing
	short     = DefaultShort
	medium    = DefaultMedium
	dashboard = DefaultDashboard
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single reads and cache round trips.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for section list reads.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Dashboard returns the timeout bounding one dashboard load.
func Dashboard() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return dashboard
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping      time.Duration
	Short     time.Duration
	Medium    time.Duration
	Dashboard time.Duration
}

// Configure sets custom timeout values. Call during startup before handlers
// are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Dashboard > 0 {
		dashboard = cfg.Dashboard
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	dashboard = DefaultDashboard
}

// Current returns the current timeout configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Medium: medium, Dashboard: dashboard}
}
