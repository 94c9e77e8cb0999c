// Package server exposes the dashboard API over HTTP: complaint CRUD at the
// boundary and the analytics bundle endpoint the dashboard renders from.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/analytics"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/store"
)

// Server wires the store and analytics engine to HTTP handlers.
type Server struct {
	store  store.Store
	engine *analytics.Engine
	cfg    config.ServerConfig
}

// New creates a Server.
func New(st store.Store, eng *analytics.Engine, cfg config.ServerConfig) *Server {
	return &Server{store: st, engine: eng, cfg: cfg}
}

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if s.cfg.RateLimit > 0 {
		r.Use(rateLimiter(s.cfg.RateLimit, s.cfg.RateBurst))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/complaints", s.handleListComplaints)
		r.Post("/complaints", s.handleCreateComplaint)
		r.Patch("/complaints/{id}/status", s.handleUpdateStatus)
	})

	return r
}

// requestLogger logs each request with latency and status via the global
// zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
