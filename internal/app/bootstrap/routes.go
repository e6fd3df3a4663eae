// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/kursmanager/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/kursmanager/internal/app/features/errors"
	healthfeature "github.com/dalemusser/kursmanager/internal/app/features/health"
	homefeature "github.com/dalemusser/kursmanager/internal/app/features/home"
	sectionsfeature "github.com/dalemusser/kursmanager/internal/app/features/sections"
	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the record source, cache and metrics bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// KursManager initializes the template engine and mounts the dashboard,
// the five section list pages, health and (optionally) metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts every feature. It expects the template engine to be in
// place already.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(deps.Metrics.Middleware)

	// Set before mounting so sub-routers inherit it.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Backend, appCfg.DataSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if appCfg.MetricsEnabled && deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	dashboardHandler := dashboardfeature.NewHandler(deps.Source, dashboardfeature.Options{
		ActiveLimit:    appCfg.DashboardActiveLimit,
		ChartOrder:     coursestats.ParseOrder(appCfg.DashboardChartOrder),
		ShowLoadErrors: appCfg.DashboardShowLoadErrors,
		Location:       appCfg.Location,
	}, deps.Metrics, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, exportLimiter.Middleware))

	// Section list pages linked from the dashboard
	sectionsHandler := sectionsfeature.NewHandler(deps.Source, appCfg.Location, logger)
	for _, s := range sectionsfeature.All {
		r.Mount(s.Path, sectionsfeature.Routes(sectionsHandler, s.Collection))
	}

	return r
}
