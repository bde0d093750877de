// Package api provides the HTTP JSON API for beamcalc.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/beamcalc/internal/config"
	"github.com/alexiusacademia/beamcalc/internal/logging"
)

// Server represents the API server.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	limiter *IPRateLimiter
	router  chi.Router
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst),
	}

	s.setupRouter()
	return s
}

// setupRouter configures all routes.
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health and version endpoints (not rate limited)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/diagram.svg", s.handleDiagram)
		r.Post("/report.pdf", s.handleReport)
	})

	s.router = r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
