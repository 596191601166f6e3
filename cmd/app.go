package cmd

import (
	"fmt"

	"todo-sync/core/airtable"
	"todo-sync/core/config"
	"todo-sync/core/database"
	"todo-sync/core/logger"
	"todo-sync/core/reconcile"
	"todo-sync/core/records"
	"todo-sync/core/redis"
	"todo-sync/core/secrets"
	"todo-sync/core/storage"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the dependencies shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  records.Store
	engine *reconcile.Engine
	db     *gorm.DB
	rdb    *goredis.Client
}

// newApp loads configuration, connects the selected record backend and
// builds the reconciliation engine.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Store.IsValidDriver() {
		return nil, fmt.Errorf("unsupported record store driver: %s", cfg.Store.Driver)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if !cfg.Server.IsValidStage() {
		logg.Warn("Unknown stage", zap.String("stage", cfg.Server.Stage))
	}

	a := &app{cfg: cfg, logger: logg}

	switch cfg.Store.Driver {
	case records.DriverRedis:
		if a.rdb, err = redis.Connect(cfg.Redis, logg); err != nil {
			return nil, fmt.Errorf("redis connection required: %w", err)
		}
	default:
		if a.db, err = database.Connect(cfg.Database); err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
	}

	if a.store, err = records.Open(cfg.Store, cfg.Server.Stage, a.db, a.rdb); err != nil {
		return nil, err
	}

	var mirror reconcile.Mirror
	if cfg.Airtable.IsConfigured() {
		mirror = airtable.NewClient(cfg.Airtable)
	} else {
		logg.Info("Airtable not configured, direct creations will not be mirrored")
	}

	a.engine = reconcile.NewEngine(a.store, mirror, logg, reconcile.WithFieldMapping(cfg.FieldMapping()))
	return a, nil
}

// keyCache builds the API key cache from the configured secret provider.
func (a *app) keyCache() (*secrets.Cache, error) {
	var client storage.Client
	if a.cfg.Secrets.Provider != secrets.ProviderStatic {
		c, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	source, err := secrets.NewSource(a.cfg.Secrets, client, a.cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return secrets.NewCache(source, a.logger), nil
}

func (a *app) close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Sync()
}
