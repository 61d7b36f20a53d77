// Command seed loads the sample catalogue into the store named by
// DATABASE_URL. It does nothing when the store already holds data.
package main

import (
	"context"
	"os"
	"time"

	"inventory/internal/config"
	"inventory/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("database_url", cfg.DatabaseURL).Msg("failed to open store")
	}
	defer infra.Close(db)

	seeded, err := infra.Seed(context.Background(), db)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	if seeded {
		log.Info().Msg("sample data inserted")
		return
	}
	log.Info().Msg("store already holds data, nothing inserted")
}
