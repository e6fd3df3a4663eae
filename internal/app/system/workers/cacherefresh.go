// internal/app/system/workers/cacherefresh.go
package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresher reloads a cache from its backing source.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CacheRefresh is a background worker that periodically reloads the record
// cache so dashboard reads rarely reach the backend.
type CacheRefresh struct {
	cache    Refresher
	log      *zap.Logger
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewCacheRefresh creates a cache refresh worker.
//
// Parameters:
//   - cache: the cache to reload
//   - logger: zap logger for logging
//   - interval: how often to reload (e.g., 20 seconds)
//   - timeout: upper bound for one reload
func NewCacheRefresh(cache Refresher, logger *zap.Logger, interval, timeout time.Duration) *CacheRefresh {
	return &CacheRefresh{
		cache:    cache,
		log:      logger,
		interval: interval,
		timeout:  timeout,
		stopCh:   make(chan struct{}),
	}
}

// Start performs one reload immediately, then reloads every interval.
func (w *CacheRefresh) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("cache refresh worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// more than once.
func (w *CacheRefresh) Stop() {
	w.once.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("cache refresh worker stopped")
	})
}

func (w *CacheRefresh) run() {
	defer w.wg.Done()

	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *CacheRefresh) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.cache.Refresh(ctx); err != nil {
		w.log.Error("failed to refresh record cache", zap.Error(err))
		return
	}
	w.log.Debug("record cache refreshed", zap.Duration("took", time.Since(start)))
}
