package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/grocerytrack/grocery-api/internal/api"
	"github.com/grocerytrack/grocery-api/internal/infrastructure/config"
	mongodb "github.com/grocerytrack/grocery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/grocerytrack/grocery-api/internal/infrastructure/db/redis"
	"github.com/grocerytrack/grocery-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewItemRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("item indexes failed")
	}
	if err := mongodb.NewCommentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("comment indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		LoginAttempts: cfg.LoginAttempts,
		LoginWindow:   cfg.LoginWindow,
		Logger:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("grocery api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
