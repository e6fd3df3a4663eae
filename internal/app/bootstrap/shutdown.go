// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background workers, then tears down the cache and backend
// connections. Every close is attempted; the first error is returned.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if refreshWorker != nil {
		refreshWorker.Stop()
		refreshWorker = nil
	}
	if exportLimiter != nil {
		exportLimiter.Stop()
		exportLimiter = nil
	}

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if deps.Source != nil {
		logger.Info("closing record cache")
		if err := deps.Source.Close(); err != nil {
			logger.Error("Redis close failed", zap.Error(err))
			keep(err)
		}
	}
	if deps.Postgres != nil {
		logger.Info("closing PostgreSQL pool")
		if err := deps.Postgres.Close(); err != nil {
			logger.Error("PostgreSQL close failed", zap.Error(err))
			keep(err)
		}
	}
	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			keep(err)
		}
	}
	return first
}
