// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

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

	"github.com/phamtuan/vitalog/internal/catalog/exercise"
	"github.com/phamtuan/vitalog/internal/catalog/food"
	"github.com/phamtuan/vitalog/internal/community/blog"
	"github.com/phamtuan/vitalog/internal/community/forum"
	"github.com/phamtuan/vitalog/internal/diary"
	"github.com/phamtuan/vitalog/internal/platform/config"
	"github.com/phamtuan/vitalog/internal/platform/constants"
	"github.com/phamtuan/vitalog/internal/platform/middleware"
	"github.com/phamtuan/vitalog/internal/users/admin"
	"github.com/phamtuan/vitalog/internal/users/auth"
	"github.com/phamtuan/vitalog/internal/users/follow"
	"github.com/phamtuan/vitalog/internal/users/profile"
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

	// Auth handles registration, login, and session introspection.
	Auth *auth.Handler

	// Profile handles the caller's profile document.
	Profile *profile.Handler

	// Follow handles the follow graph and member discovery.
	Follow *follow.Handler

	// Admin handles the moderation surface (user list, ban flag).
	Admin *admin.Handler

	// Food handles the shared food vocabulary.
	Food *food.Handler

	// Exercise handles the shared exercise vocabulary.
	Exercise *exercise.Handler

	// Eating handles the eating diary.
	Eating *diary.EatingHandler

	// Workout handles the workout diary.
	Workout *diary.WorkoutHandler

	// Forum handles the discussion board.
	Forum *forum.Handler

	// Blog handles article categories and articles.
	Blog *blog.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, banChecker middleware.BanChecker, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.BanGuard(banChecker))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups, mounted under the path the web
	// client was built against.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/me/profile", h.Profile.Routes())
		api.Mount("/follows", h.Follow.Routes())
		api.Mount("/admin", h.Admin.Routes())
		api.Mount("/foods", h.Food.Routes())
		api.Mount("/exercises", h.Exercise.Routes())
		api.Mount("/eatingplans", h.Eating.Routes())
		api.Mount("/workoutplans", h.Workout.Routes())
		api.Mount("/forumposts", h.Forum.Routes())
		api.Mount("/articlecategories", h.Blog.CategoryRoutes())
		api.Mount("/articles", h.Blog.ArticleRoutes())
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
