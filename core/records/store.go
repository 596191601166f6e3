package records

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Store abstracts the durable record table.
type Store interface {
	// FindByExternalID looks up a record through the external id index.
	// It returns (nil, nil) when no record matches; errors are backend failures only.
	FindByExternalID(ctx context.Context, externalID string) (*Record, error)
	// Upsert writes the full record by primary key, overwriting any existing value.
	Upsert(ctx context.Context, rec *Record) error
	// ScanAll returns every record in unspecified order.
	ScanAll(ctx context.Context) ([]Record, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// Open builds the Store selected by cfg.Driver. Only the connection for the
// selected driver needs to be non-nil.
func Open(cfg Config, stage string, db *gorm.DB, rdb *redis.Client) (Store, error) {
	table := TableName(cfg, stage)

	switch cfg.Driver {
	case DriverDatabase, "":
		if db == nil {
			return nil, fmt.Errorf("record store %q requires a database connection", DriverDatabase)
		}
		return NewGormStore(db, table), nil
	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("record store %q requires a redis connection", DriverRedis)
		}
		return NewRedisStore(rdb, table), nil
	default:
		return nil, fmt.Errorf("unsupported record store driver: %s", cfg.Driver)
	}
}
