package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rescue-dog-favorites/internal/adapters/dogapi"
	"rescue-dog-favorites/internal/config"
	"rescue-dog-favorites/internal/platform/logger"
	"rescue-dog-favorites/internal/router"
)

// @title           Rescue Dog Favorites API
// @version         1.0
// @description     Favoritos, insights y comparación de perros en adopción
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, closeSlots := openSlots(ctx, cfg.Storage, log)
	defer closeSlots()

	dogSource, err := dogapi.NewClient(dogapi.Config{
		BaseURL:           cfg.DogAPI.BaseURL,
		Timeout:           cfg.DogAPI.Timeout,
		RequestsPerSecond: cfg.DogAPI.RequestsPerSecond,
		Burst:             cfg.DogAPI.Burst,
	}, log)
	if err != nil {
		log.Error("dog api client error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Logger:          log,
		Slots:           slots,
		DogSource:       dogSource,
		MaxFavorites:    cfg.Favorites.Max,
		ShareBaseURL:    cfg.Favorites.PublicURL,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		ClientCacheSize: cfg.Favorites.CacheSize,
		ClientCacheTTL:  cfg.Favorites.CacheTTL,
		StorageTimeout:  cfg.Storage.Timeout,
		StorageRetry:    cfg.Storage.RetryInterval,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}
