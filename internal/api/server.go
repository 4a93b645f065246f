// Package api provides the management REST API for rootdnsd: liveness,
// runtime statistics, and a summary of the currently loaded zone.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/rootdns/internal/api/handlers"
	"github.com/jroosing/rootdns/internal/api/middleware"
	"github.com/jroosing/rootdns/internal/journal"
	"github.com/jroosing/rootdns/internal/server"
	"github.com/jroosing/rootdns/internal/zone"
)

// Server is the management HTTP server.
type Server struct {
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds a management API server listening on addr, backed by the
// given zone store, reload journal, and query-outcome stats collector.
func New(addr string, logger *slog.Logger, z *zone.Store, j *journal.Journal, stats *server.DNSStats) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(logger, z, j, stats)
	RegisterRoutes(engine, h)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{logger: logger, engine: engine, httpServer: httpServer}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Engine exposes the underlying gin.Engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ListenAndServe blocks serving HTTP until Shutdown is called.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
