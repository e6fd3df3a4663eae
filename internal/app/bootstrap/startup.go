// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/resources"
	"github.com/dalemusser/kursmanager/internal/app/system/ratelimit"
	"github.com/dalemusser/kursmanager/internal/app/system/timeouts"
	"github.com/dalemusser/kursmanager/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Background helpers started here and stopped in Shutdown.
var (
	refreshWorker *workers.CacheRefresh
	exportLimiter *ratelimit.Limiter
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// the configured timeouts, loads shared templates, optionally seeds demo
// data and starts the cache refresh worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Dashboard: appCfg.DashboardTimeout})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("dashboard", cur.Dashboard))

	resources.LoadSharedTemplates()

	if appCfg.SeedDemoData && deps.MongoDatabase != nil {
		if err := seedDemoData(ctx, deps, appCfg.Location, logger); err != nil {
			logger.Error("seeding demo data failed", zap.Error(err))
			return err
		}
	}

	if deps.Redis != nil && appCfg.CacheRefreshInterval > 0 {
		refreshWorker = workers.NewCacheRefresh(deps.Source, logger, appCfg.CacheRefreshInterval, appCfg.DashboardTimeout)
		refreshWorker.Start()
	}

	if appCfg.ExportRateLimit > 0 {
		exportLimiter = ratelimit.New(appCfg.ExportRateLimit, time.Minute)
	}

	return nil
}
