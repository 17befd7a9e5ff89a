// Package server provides the HTTP API for Tantei.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/tantei/internal/config"
	"github.com/hyperjump/tantei/internal/models"
	"github.com/hyperjump/tantei/internal/resolve"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Searcher produces search hits for free text.
type Searcher interface {
	Search(ctx context.Context, text string, limit int) ([]models.SearchHit, error)
}

// Server is the HTTP server for the Tantei API.
type Server struct {
	searcher    Searcher
	resolver    *resolve.Resolver
	details     *resolve.Details
	config      *config.ServerConfig
	searchLimit int
	logger      *zap.Logger
	server      *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	searcher Searcher,
	resolver *resolve.Resolver,
	details *resolve.Details,
	cfg *config.ServerConfig,
	searchLimit int,
	logger *zap.Logger,
) *Server {
	return &Server{
		searcher:    searcher,
		resolver:    resolver,
		details:     details,
		config:      cfg,
		searchLimit: searchLimit,
		logger:      logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/person/{id}", s.handlePerson)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
