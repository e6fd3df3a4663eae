// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP ports,
// TLS, logging level and request limits. AppConfig is where the data
// source, cache and dashboard settings live.
type AppConfig struct {
	// Which backend the record reads go to: "mongo" or "postgres".
	DataSource string `validate:"oneof=mongo postgres"`

	// MongoDB connection configuration
	MongoURI         string `validate:"required_if=DataSource mongo"`
	MongoDatabase    string `validate:"required_if=DataSource mongo"`
	MongoMaxPoolSize uint64 `validate:"gtefield=MongoMinPoolSize"`
	MongoMinPoolSize uint64

	// PostgreSQL connection configuration
	PostgresDSN string `validate:"required_if=DataSource postgres"`

	// Redis record cache (disabled when RedisAddr is empty)
	RedisAddr            string
	RedisPassword        string
	RedisDB              int           `validate:"gte=0,lte=15"`
	CacheTTL             time.Duration `validate:"gt=0"`
	CacheRefreshInterval time.Duration `validate:"gte=0"` // 0 disables the refresh worker

	// Dashboard
	DashboardActiveLimit    int    `validate:"gte=1,lte=100"`
	DashboardChartOrder     string `validate:"oneof=chronological encounter"`
	DashboardShowLoadErrors bool
	DashboardTimeout        time.Duration `validate:"gt=0"`
	ExportRateLimit         int           `validate:"gte=0"` // exports per client per minute, 0 disables

	// Zone in which stored calendar dates and "now" are read.
	Timezone string         `validate:"required"`
	Location *time.Location `validate:"-"`

	MetricsEnabled bool
	SeedDemoData   bool
}

// CacheEnabled reports whether reads go through the Redis record cache.
func (c AppConfig) CacheEnabled() bool {
	return c.RedisAddr != ""
}
