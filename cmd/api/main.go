package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/routes"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/gifts"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/orders"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/reviews"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/shops"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/config"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/directory"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/env"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/migrate"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	directoryClient, err := directory.NewClient(cfg.Directory.BaseURL, directory.WithTimeout(cfg.Directory.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create directory client", err)
		os.Exit(1)
	}

	shopsRepo := shops.NewRepository(dbClient.DB())
	shopsService, err := shops.NewService(shopsRepo, directoryClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create shops service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(dbClient.DB())
	idGenerator, err := orders.NewIDGenerator(ordersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create id generator", err)
		os.Exit(1)
	}
	ordersService, err := orders.NewService(ordersRepo, dbClient, idGenerator, directoryClient, shopsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	giftsRepo := gifts.NewRepository(dbClient.DB())
	giftsService, err := gifts.NewService(giftsRepo, shopsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create gifts service", err)
		os.Exit(1)
	}

	reviewsRepo := reviews.NewRepository(dbClient.DB())
	reviewsService, err := reviews.NewService(reviewsRepo, giftsService, ordersService)
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			redisClient,
			ordersService,
			shopsService,
			giftsService,
			reviewsService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
