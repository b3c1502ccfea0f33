package store

import (
	"fmt"

	"codetext-backend/internal/config"
	"codetext-backend/internal/database"
)

// Open builds the store selected by cfg.Store.Driver.
func Open(cfg *config.Config) (Store, error) {
	ttl := cfg.Share.TTL

	switch cfg.Store.Driver {
	case "memory":
		return NewMemoryStore(ttl, cfg.Store.CleanupInterval), nil
	case "postgres", "sqlite":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close()
			}
			return nil, err
		}
		return NewGormStore(db, ttl), nil
	case "redis":
		return NewRedisStore(cfg.Store.Redis, ttl)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
