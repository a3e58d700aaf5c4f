package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/spaceresearch/mission-console/internal/api"
	"github.com/spaceresearch/mission-console/internal/infrastructure/db/postgrest"
	redisinfra "github.com/spaceresearch/mission-console/internal/infrastructure/db/redis"
	"github.com/spaceresearch/mission-console/internal/pkg/config"
	"github.com/spaceresearch/mission-console/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() { _ = rdb.Close() }()

	db := postgrest.NewClient(postgrest.Config{
		BaseURL:    cfg.Database.URL,
		APIKey:     cfg.Database.APIKey,
		ServiceKey: cfg.Database.ServiceKey,
		Timeout:    cfg.Database.Timeout,
	}, log)

	if err := db.Ping(ctx); err != nil {
		// The remote data API being briefly unreachable at boot should not
		// crash the service; readiness reports it until it recovers.
		log.Warn().Err(err).Msg("mission database unreachable at startup")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("mission console started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}
}
