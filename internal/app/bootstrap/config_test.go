package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/kursmanager/internal/testutil"
)

func validConfig() AppConfig {
	return AppConfig{
		DataSource:           "mongo",
		MongoURI:             "mongodb://localhost:27017",
		MongoDatabase:        "kursmanager",
		MongoMaxPoolSize:     100,
		MongoMinPoolSize:     10,
		CacheTTL:             30 * time.Second,
		DashboardActiveLimit: 5,
		DashboardChartOrder:  "chronological",
		DashboardTimeout:     10 * time.Second,
		Timezone:             "Europe/Berlin",
		Location:             testutil.Berlin,
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{name: "postgres with dsn", mutate: func(c *AppConfig) {
			c.DataSource = "postgres"
			c.MongoURI = ""
			c.PostgresDSN = "postgres://localhost/kursmanager?sslmode=disable"
		}},
		{name: "unknown backend", mutate: func(c *AppConfig) { c.DataSource = "sqlite" }, wantErr: "DataSource"},
		{name: "postgres without dsn", mutate: func(c *AppConfig) { c.DataSource = "postgres" }, wantErr: "PostgresDSN"},
		{name: "mongo without uri", mutate: func(c *AppConfig) { c.MongoURI = "" }, wantErr: "MongoURI"},
		{name: "pool sizes inverted", mutate: func(c *AppConfig) { c.MongoMaxPoolSize = 5 }, wantErr: "MongoMaxPoolSize"},
		{name: "active limit zero", mutate: func(c *AppConfig) { c.DashboardActiveLimit = 0 }, wantErr: "DashboardActiveLimit"},
		{name: "unknown chart order", mutate: func(c *AppConfig) { c.DashboardChartOrder = "random" }, wantErr: "DashboardChartOrder"},
		{name: "zero cache ttl", mutate: func(c *AppConfig) { c.CacheTTL = 0 }, wantErr: "CacheTTL"},
		{name: "unknown timezone", mutate: func(c *AppConfig) {
			c.Timezone = "Mars/Olympus"
			c.Location = nil
		}, wantErr: "unknown timezone"},
		{name: "seeding postgres", mutate: func(c *AppConfig) {
			c.DataSource = "postgres"
			c.PostgresDSN = "postgres://localhost/kursmanager"
			c.SeedDemoData = true
		}, wantErr: "seed_demo_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCacheEnabled(t *testing.T) {
	cfg := validConfig()
	if cfg.CacheEnabled() {
		t.Error("expected cache disabled without redis_addr")
	}
	cfg.RedisAddr = "localhost:6379"
	if !cfg.CacheEnabled() {
		t.Error("expected cache enabled with redis_addr")
	}
}
