package main

import (
	"context"
	"time"

	"github.com/okwaroh/twende-logistics/internal/infrastructure/postgres"
	"github.com/okwaroh/twende-logistics/pkg/config"
	"github.com/okwaroh/twende-logistics/pkg/logger"
)

// Applies the embedded schema to the configured database and exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply schema")
	}

	log.Info().Str("database", cfg.DB.DBName).Msg("schema applied")
}
