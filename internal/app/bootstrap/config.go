// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for KursManager.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, data_source, etc.
//   - Environment variables: KURSMANAGER_MONGO_URI, KURSMANAGER_DATA_SOURCE, etc.
//   - Command-line flags: --mongo_uri, --data_source, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: datasource.BackendMongo, Desc: "Record backend: 'mongo' or 'postgres'"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "kursmanager", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "postgres_dsn", Default: "", Desc: "PostgreSQL DSN (required when data_source is 'postgres')"},

	// Record cache
	{Name: "redis_addr", Default: "", Desc: "Redis address for the record cache (blank disables caching)"},
	{Name: "redis_password", Default: "", Desc: "Redis password"},
	{Name: "redis_db", Default: 0, Desc: "Redis database number"},
	{Name: "cache_ttl", Default: "30s", Desc: "How long cached collections stay valid (e.g., 30s, 5m)"},
	{Name: "cache_refresh_interval", Default: "0s", Desc: "Background cache reload interval (0 disables)"},

	// Dashboard
	{Name: "dashboard_active_limit", Default: 5, Desc: "Number of active courses listed on the dashboard"},
	{Name: "dashboard_chart_order", Default: "chronological", Desc: "Upcoming-courses chart order: 'chronological' or 'encounter'"},
	{Name: "dashboard_show_load_errors", Default: false, Desc: "Show a banner naming collections that failed to load"},
	{Name: "dashboard_timeout", Default: "10s", Desc: "Upper bound for loading the dashboard collections"},
	{Name: "export_rate_limit", Default: 10, Desc: "Excel/PDF exports allowed per client per minute (0 disables)"},

	{Name: "timezone", Default: "Europe/Berlin", Desc: "Time zone for course dates"},
	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "seed_demo_data", Default: false, Desc: "Insert demo records into empty MongoDB collections on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, KURSMANAGER_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KURSMANAGER", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource: appValues.String("data_source"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		PostgresDSN: appValues.String("postgres_dsn"),

		RedisAddr:            appValues.String("redis_addr"),
		RedisPassword:        appValues.String("redis_password"),
		RedisDB:              appValues.Int("redis_db"),
		CacheTTL:             appValues.Duration("cache_ttl", 30*time.Second),
		CacheRefreshInterval: appValues.Duration("cache_refresh_interval", 0),

		DashboardActiveLimit:    appValues.Int("dashboard_active_limit"),
		DashboardChartOrder:     appValues.String("dashboard_chart_order"),
		DashboardShowLoadErrors: appValues.Bool("dashboard_show_load_errors"),
		DashboardTimeout:        appValues.Duration("dashboard_timeout", 10*time.Second),
		ExportRateLimit:         appValues.Int("export_rate_limit"),

		Timezone:       appValues.String("timezone"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
		SeedDemoData:   appValues.Bool("seed_demo_data"),
	}

	// An unknown zone is reported by ValidateConfig.
	if loc, err := time.LoadLocation(appCfg.Timezone); err == nil {
		appCfg.Location = loc
	}

	return coreCfg, appCfg, nil
}

var validate = validator.New()

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Struct tags on AppConfig cover ranges and required fields; the checks
// below cover what tags cannot express.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	if err := validate.Struct(appCfg); err != nil {
		return fmt.Errorf("invalid app config: %w", err)
	}

	if err := datasource.ValidateBackend(appCfg.DataSource); err != nil {
		return err
	}

	if appCfg.DataSource == datasource.BackendMongo {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	if appCfg.Location == nil {
		return fmt.Errorf("unknown timezone %q", appCfg.Timezone)
	}

	if appCfg.SeedDemoData && appCfg.DataSource != datasource.BackendMongo {
		return fmt.Errorf("seed_demo_data requires data_source %q", datasource.BackendMongo)
	}

	return nil
}
