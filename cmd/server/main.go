// Command server runs the accounts HTTP API.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/c-a-r-l-x/accounts-service/internal/api"
	"github.com/c-a-r-l-x/accounts-service/internal/core/service"
	"github.com/c-a-r-l-x/accounts-service/internal/infrastructure/config"
	redisinfra "github.com/c-a-r-l-x/accounts-service/internal/infrastructure/db/redis"
	sqliteinfra "github.com/c-a-r-l-x/accounts-service/internal/infrastructure/db/sqlite"
	"github.com/c-a-r-l-x/accounts-service/internal/infrastructure/queue"
	"github.com/c-a-r-l-x/accounts-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	db, err := sqliteinfra.Connect(ctx, sqliteinfra.Config{Path: cfg.SQLite.Path})
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite connect failed")
	}
	defer db.Close()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- Audit pipeline ---
	auditRepo := sqliteinfra.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(db, rdb, dispatcher, api.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    24 * time.Hour,
		BcryptCost:  cfg.BcryptCost,
		LoginLimit:  cfg.Redis.LoginLimit,
		LoginWindow: time.Minute,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
