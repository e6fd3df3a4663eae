// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/store/recordcache"
	"github.com/dalemusser/kursmanager/internal/app/store/sqlstore"
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/dalemusser/kursmanager/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the configured record backend and, when redis_addr is
// set, the Redis record cache. A cache that cannot be reached at startup
// is logged and skipped; the backend is required.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps
	deps.Metrics = metrics.New()

	switch appCfg.DataSource {
	case datasource.BackendPostgres:
		db, err := sqlstore.Open(ctx, appCfg.PostgresDSN)
		if err != nil {
			logger.Error("PostgreSQL connect failed", zap.Error(err))
			return DBDeps{}, err
		}
		deps.Postgres = db
		deps.Backend = sqlstore.New(db)
		logger.Info("connected to PostgreSQL")

	default:
		opts := options.Client().
			ApplyURI(appCfg.MongoURI).
			SetMaxPoolSize(appCfg.MongoMaxPoolSize).
			SetMinPoolSize(appCfg.MongoMinPoolSize)
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			logger.Error("MongoDB connect failed", zap.Error(err))
			return DBDeps{}, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err != nil {
			_ = client.Disconnect(context.Background())
			logger.Error("MongoDB ping failed", zap.Error(err))
			return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		deps.Backend = datasource.NewMongo(deps.MongoDatabase)
		logger.Info("connected to MongoDB",
			zap.String("database", appCfg.MongoDatabase),
			zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize),
			zap.Uint64("min_pool_size", appCfg.MongoMinPoolSize))
	}

	if appCfg.CacheEnabled() {
		deps.Redis = connectRedis(ctx, appCfg, logger)
	}
	deps.Source = recordcache.New(deps.Backend, deps.Redis, appCfg.CacheTTL, logger, deps.Metrics)

	return deps, nil
}

// connectRedis returns nil when Redis does not answer a ping.
func connectRedis(ctx context.Context, appCfg AppConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         appCfg.RedisAddr,
		Password:     appCfg.RedisPassword,
		DB:           appCfg.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unavailable, record cache disabled",
			zap.String("addr", appCfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	logger.Info("record cache enabled",
		zap.String("addr", appCfg.RedisAddr),
		zap.Duration("ttl", appCfg.CacheTTL))
	return client
}

// EnsureSchema creates MongoDB indexes or the PostgreSQL tables,
// depending on the configured backend.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	switch b := deps.Backend.(type) {
	case *datasource.Mongo:
		if err := b.EnsureIndexes(ctx); err != nil {
			logger.Error("ensure indexes failed", zap.Error(err))
			return err
		}
		logger.Info("MongoDB indexes ensured")
	case *sqlstore.Store:
		if err := b.EnsureSchema(ctx); err != nil {
			logger.Error("ensure schema failed", zap.Error(err))
			return err
		}
		logger.Info("PostgreSQL schema ensured")
	}
	return nil
}
