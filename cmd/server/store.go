package main

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/config"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/store"
)

// InitStore selects the record-store backend: CSV files by default, or
// Postgres with the CSV tier as runtime fallback when DATABASE_URL is set.
// A remote tier that cannot even connect degrades to plain local mode.
func InitStore(cfg *config.Config) store.Store {
	local := store.NewCSVStore(cfg.DataDir)

	if cfg.DatabaseURL == "" {
		log.Info().Str("dir", cfg.DataDir).Msg("using local CSV record store")
		return local
	}

	pg, err := store.NewPGStore(cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("remote record store unavailable, using local CSV store")
		return local
	}
	if err := pg.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Warn().Err(err).Msg("migrations failed, using local CSV store")
		return local
	}

	var remote store.Store = pg
	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		remote = store.NewCachedStore(remote, rdb)
		log.Info().Str("address", cfg.RedisAddress).Msg("record list cache enabled")
	}

	log.Info().Msg("using remote record store with local CSV fallback")
	return store.NewFallbackStore(remote, local)
}
