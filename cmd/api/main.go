package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/sitecraft-backend/internal/api"
	"github.com/baharkarakas/sitecraft-backend/internal/cache"
	"github.com/baharkarakas/sitecraft-backend/internal/config"
	"github.com/baharkarakas/sitecraft-backend/internal/db"
	"github.com/baharkarakas/sitecraft-backend/internal/logger"
	"github.com/baharkarakas/sitecraft-backend/internal/metrics"
	"github.com/baharkarakas/sitecraft-backend/internal/repository/postgres"
	"github.com/baharkarakas/sitecraft-backend/internal/services"
	"github.com/baharkarakas/sitecraft-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Migrate {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	var projectCache services.ProjectCache
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("redis connect", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		projectCache = cache.NewProjectCache(rdb, cfg.CacheTTL)
	} else {
		log.Info("REDIS_URL not set, project cache disabled")
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.Workers, 256)
	defer wp.Stop()

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		UserSvc:    services.NewUserService(repos.Users, cfg),
		ProjectSvc: services.NewProjectService(repos.Projects, repos.Users, projectCache, wp),
		RequestSvc: services.NewRequestService(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
