// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/electoral-cartogram/cliparse"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/handlers"
	"github.com/danielhkuo/electoral-cartogram/metrics"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/sessions"
)

func NewRouter(db *sql.DB, deps coordinator.Deps, store *sessions.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	mapHandler := handlers.NewMapHandler(deps.Data, deps.Aggregator, deps.Formatter)
	summaryHandler := handlers.NewSummaryHandler(deps.Aggregator, deps.Formatter, deps.Parliament)
	sessionHandler := handlers.NewSessionHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				slog.Error("health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("database unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Shared views (public)
	mux.HandleFunc("GET /map/ridings", middleware.WithLogging(mapHandler.GetRidings))
	mux.HandleFunc("GET /summary", middleware.WithLogging(summaryHandler.GetSummary))

	// Viewer sessions (requires X-Session-Token after creation)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}/view", middleware.WithLogging(sessionHandler.GetView))
	mux.HandleFunc("GET /sessions/{id}/map/ridings", middleware.WithLogging(sessionHandler.GetMap))
	mux.HandleFunc("POST /sessions/{id}/hover", middleware.WithLogging(sessionHandler.HoverOn))
	mux.HandleFunc("POST /sessions/{id}/hover-off", middleware.WithLogging(sessionHandler.HoverOff))
	mux.HandleFunc("PUT /sessions/{id}/language", middleware.WithLogging(sessionHandler.SetLanguage))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("electoral-cartogram API v1"))
	})

	return mux
}
