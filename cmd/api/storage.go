package main

import (
	"context"

	mem "rescue-dog-favorites/internal/adapters/storage/memory"
	mgo "rescue-dog-favorites/internal/adapters/storage/mongodb"
	pg "rescue-dog-favorites/internal/adapters/storage/postgres"
	rds "rescue-dog-favorites/internal/adapters/storage/redis"
	"rescue-dog-favorites/internal/config"
	"rescue-dog-favorites/internal/domain/favorites"
	"rescue-dog-favorites/internal/platform/logger"
)

// openSlots elige el backend según storage.driver. Si el backend no responde
// al arrancar se sigue con memoria: los favoritos no son críticos.
func openSlots(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (favorites.SlotRepository, func()) {
	noop := func() {}

	fallback := func(err error) (favorites.SlotRepository, func()) {
		log.Warn("storage unavailable, using memory", map[string]any{"driver": cfg.Driver, "error": err.Error()})
		return mem.NewSlotsRepo(), noop
	}

	switch cfg.Driver {
	case "postgres":
		pool, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return fallback(err)
		}
		if err := pg.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return fallback(err)
		}
		return pg.NewSlotsRepo(pool), pool.Close

	case "redis":
		client, err := rds.Open(ctx, cfg.RedisURL)
		if err != nil {
			return fallback(err)
		}
		return rds.NewSlotsRepo(client, cfg.RedisTTL), func() { _ = client.Close() }

	case "mongo":
		client, err := mgo.Open(ctx, cfg.MongoURI)
		if err != nil {
			return fallback(err)
		}
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		return mgo.NewSlotsRepo(coll), func() { _ = client.Disconnect(context.Background()) }

	case "", "memory":
		return mem.NewSlotsRepo(), noop

	default:
		log.Warn("unknown storage driver, using memory", map[string]any{"driver": cfg.Driver})
		return mem.NewSlotsRepo(), noop
	}
}
