// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Command api is the entry point for the Vitalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/phamtuan/vitalog/internal/api"
	"github.com/phamtuan/vitalog/internal/catalog/exercise"
	"github.com/phamtuan/vitalog/internal/catalog/food"
	"github.com/phamtuan/vitalog/internal/community/blog"
	"github.com/phamtuan/vitalog/internal/community/forum"
	"github.com/phamtuan/vitalog/internal/diary"
	"github.com/phamtuan/vitalog/internal/platform/config"
	"github.com/phamtuan/vitalog/internal/platform/constants"
	"github.com/phamtuan/vitalog/internal/platform/migration"
	pgstore "github.com/phamtuan/vitalog/internal/platform/postgres"
	redisstore "github.com/phamtuan/vitalog/internal/platform/redis"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/users/admin"
	"github.com/phamtuan/vitalog/internal/users/auth"
	"github.com/phamtuan/vitalog/internal/users/follow"
	"github.com/phamtuan/vitalog/internal/users/profile"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "vitalog"))
	slog.SetDefault(log)

	log.Info("[Vitalog] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "vitalog"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTLMinutes)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	banStatusRepository := auth.NewBanStatusRepository(rdb, userRepository)
	authService := auth.NewService(userRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	profileRepository := profile.NewRepository(pool)
	profileService := profile.NewService(profileRepository)
	profileHandler := profile.NewHandler(profileService)

	followRepository := follow.NewRepository(pool)
	followService := follow.NewService(followRepository, userRepository)
	followHandler := follow.NewHandler(followService)

	adminRepository := admin.NewRepository(pool)
	adminService := admin.NewService(adminRepository, banStatusRepository)
	adminHandler := admin.NewHandler(adminService)

	foodRepository := food.NewRepository(pool)
	foodService := food.NewService(foodRepository, food.NewListCache(rdb))
	foodHandler := food.NewHandler(foodService)

	exerciseRepository := exercise.NewRepository(pool)
	exerciseService := exercise.NewService(exerciseRepository, exercise.NewListCache(rdb))
	exerciseHandler := exercise.NewHandler(exerciseService)

	eatingService := diary.NewEatingService(diary.NewEatingRepository(pool), foodRepository)
	eatingHandler := diary.NewEatingHandler(eatingService)

	workoutService := diary.NewWorkoutService(diary.NewWorkoutRepository(pool), exerciseRepository)
	workoutHandler := diary.NewWorkoutHandler(workoutService)

	forumService := forum.NewService(forum.NewRepository(pool))
	forumHandler := forum.NewHandler(forumService)

	blogService := blog.NewService(blog.NewCategoryRepository(pool), blog.NewArticleRepository(pool))
	blogHandler := blog.NewHandler(blogService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Profile:   profileHandler,
		Follow:    followHandler,
		Admin:     adminHandler,
		Food:      foodHandler,
		Exercise:  exerciseHandler,
		Eating:    eatingHandler,
		Workout:   workoutHandler,
		Forum:     forumHandler,
		Blog:      blogHandler,
	}

	// Long-lived context for background middleware work (rate limiter
	// sweep); cancelled once the server stops.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, banStatusRepository, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
