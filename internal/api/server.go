// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jackyyuan/lelemenu/internal/admin"
	"github.com/jackyyuan/lelemenu/internal/catalog/dish"
	"github.com/jackyyuan/lelemenu/internal/catalog/sauce"
	"github.com/jackyyuan/lelemenu/internal/catalog/tip"
	"github.com/jackyyuan/lelemenu/internal/menu"
	"github.com/jackyyuan/lelemenu/internal/platform/config"
	"github.com/jackyyuan/lelemenu/internal/platform/constants"
	"github.com/jackyyuan/lelemenu/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Dish handles the dish catalog.
	Dish *dish.Handler

	// Tip handles ingredient tips.
	Tip *tip.Handler

	// Sauce handles sauce recipes.
	Sauce *sauce.Handler

	// Admin lists the admin allow-list.
	Admin *admin.Handler

	// Menu serves the aggregated category view.
	Menu *menu.Handler
}

// Middlewares carries the deployment-dependent pieces of the chain: which
// rate limiter to use and the guards applied to mutating catalog routes.
type Middlewares struct {
	// RateLimit is the per-IP limiter (in-process bucket, or the Redis
	// fixed-window variant when REDIS_URL is configured).
	RateLimit func(http.Handler) http.Handler

	// Guards wrap the mutating catalog routes. Empty when auth enforcement
	// is off; Authenticate + RequireAdmin when it is on.
	Guards []func(http.Handler) http.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, mw Middlewares, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(mw.RateLimit)
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups. Reads are public; mutations carry the
	// guards.
	r.Route("/api", func(api chi.Router) {
		api.Route("/dishes", func(route chi.Router) {
			h.Dish.RegisterRoutes(route, mw.Guards...)
		})
		api.Route("/ingredient_tips", func(route chi.Router) {
			h.Tip.RegisterRoutes(route, mw.Guards...)
		})
		api.Route("/sauce_recipes", func(route chi.Router) {
			h.Sauce.RegisterRoutes(route, mw.Guards...)
		})
		api.Route("/admins", func(route chi.Router) {
			h.Admin.RegisterRoutes(route)
		})
		api.Route("/menu", func(route chi.Router) {
			h.Menu.RegisterRoutes(route)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
