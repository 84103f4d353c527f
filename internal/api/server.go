// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

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

	"github.com/anavarrete/frameteca/internal/admin"
	"github.com/anavarrete/frameteca/internal/langpack"
	"github.com/anavarrete/frameteca/internal/platform/config"
	"github.com/anavarrete/frameteca/internal/platform/constants"
	"github.com/anavarrete/frameteca/internal/platform/middleware"
	"github.com/anavarrete/frameteca/internal/topics"
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

	// Topics handles the topic catalogue plus its maintenance endpoints.
	Topics *topics.Handler

	// LangPack serves the UI string bundles.
	LangPack *langpack.Handler

	// Admin handles operator login. Nil when no admin is configured.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The maintenance endpoints (seed, drop, legacy migration) are mounted
// behind RequireAdmin only when operator credentials are configured; a
// development deployment without them keeps those endpoints open.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// The frontend consumes these paths unversioned, at the root.
	r.Mount("/topics", h.Topics.Routes())
	r.Mount("/i18n", h.LangPack.Routes())

	if h.Admin != nil {
		r.Mount("/auth", h.Admin.Routes())
	}

	guarded := cfg.AdminConfigured()
	r.Group(func(maintenance chi.Router) {
		if guarded {
			maintenance.Use(middleware.RequireAdmin)
		}
		maintenance.Mount("/seed", h.Topics.SeedRoutes())
		maintenance.Mount("/migrate", h.Topics.MigrationRoutes())
	})

	if !guarded {
		log.Warn("maintenance endpoints are unauthenticated (no admin credentials configured)")
	}

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
