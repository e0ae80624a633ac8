// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

// Command api is the entry point for the Lelemenu HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect Firebase clients (Firestore + Auth).
//  4. Connect to Redis when configured (distributed rate limiting).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/jackyyuan/lelemenu/internal/admin"
	"github.com/jackyyuan/lelemenu/internal/api"
	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/internal/catalog/sauce"
	"github.com/jackyyuan/lelemenu/internal/catalog/tip"
	"github.com/jackyyuan/lelemenu/internal/menu"
	"github.com/jackyyuan/lelemenu/internal/platform/config"
	"github.com/jackyyuan/lelemenu/internal/platform/constants"
	"github.com/jackyyuan/lelemenu/internal/platform/docstore"
	fbclients "github.com/jackyyuan/lelemenu/internal/platform/firebase"
	"github.com/jackyyuan/lelemenu/internal/platform/middleware"
	redisstore "github.com/jackyyuan/lelemenu/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "lelemenu"))
	slog.SetDefault(log)

	log.Info("[Lelemenu] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "lelemenu"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("auth_enforced", cfg.AuthEnforced),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application context outlives startup; it stops background middleware
	// goroutines on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Firebase (Firestore + Auth) ────────────────────────────────────
	clients, err := fbclients.NewClients(startupCtx, cfg.GoogleProjectID, log)
	must(log, err, "connect firebase clients")
	defer func() {
		log.Info("closing firebase clients")
		if cerr := clients.Close(); cerr != nil {
			log.Error("firebase close error", slog.Any("error", cerr))
		}
	}()

	store := docstore.NewFirestore(clients.Firestore)

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	rateLimit := middleware.RateLimit(appCtx)
	checkCache := (func() error)(nil)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		rateLimit = middleware.RedisRateLimit(rdb)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: func() error {
			return store.Ping(context.Background())
		},
		CheckCache: checkCache,
	}, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	dishService := dish.NewService(dish.NewDocstoreRepository(store), log)
	tipService := tip.NewService(tip.NewDocstoreRepository(store), log)
	sauceService := sauce.NewService(sauce.NewDocstoreRepository(store), log)
	adminService := admin.NewService(admin.NewDocstoreRepository(store), log)

	guards := []func(http.Handler) http.Handler{}
	if cfg.AuthEnforced {
		guards = append(guards,
			middleware.Authenticate(clients.Auth),
			middleware.RequireAdmin(adminService),
		)
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Dish:      dish.NewHandler(dishService),
		Tip:       tip.NewHandler(tipService),
		Sauce:     sauce.NewHandler(sauceService),
		Admin:     admin.NewHandler(adminService),
		Menu:      menu.NewHandler(dishService),
	}

	server := api.NewServer(appCtx, cfg, log, api.Middlewares{
		RateLimit: rateLimit,
		Guards:    guards,
	}, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
