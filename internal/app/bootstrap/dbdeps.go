// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/kursmanager/internal/app/store/recordcache"
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Only the clients for the configured backend are set.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Postgres      *sqlx.DB
	Redis         *redis.Client

	// Backend is the record source for the configured data_source.
	Backend datasource.Source
	// Source is what handlers read from: Backend behind the record cache.
	Source *recordcache.Source

	Metrics *metrics.Metrics
}
