package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"inventory/internal/config"
	"inventory/internal/infra"
	"inventory/internal/router"
	"inventory/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: dev pretty, prod JSON
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		if err := infra.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	if cfg.SeedSampleData {
		seeded, err := infra.Seed(context.Background(), db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
		log.Info().Bool("seeded", seeded).Msg("sample data check done")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional: without it the analytics cache and the low-stock
	// alert queue are simply not wired.
	var (
		rdb     *redis.Client
		workers *sync.WaitGroup
	)
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache and alert queue")
			rdb = nil
		} else {
			defer rdb.Close()
			alerts := worker.NewStockAlertWorker(infra.NewMailer(cfg), cfg.AlertEmail)
			workers = worker.StartWorkerPool(ctx, rdb, map[string]worker.Handler{
				worker.JobStockAlert: alerts.Process,
			}, cfg.WorkerPoolSize)
		}
	}

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	cancel()
	if workers != nil {
		workers.Wait()
	}
	log.Info().Msg("server exited")
}
