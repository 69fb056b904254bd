// Package api exposes the HTTP surface of the analysis service: job
// submission, status, results, cancellation, and event streaming.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk/pkg/database"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/orchestrator"
	"github.com/dealdesk/dealdesk/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	jobs        *services.JobService
	records     *services.RecordService
	eventLog    *services.EventService
	publisher   *events.Publisher
	connManager *events.ConnectionManager
	pool        *orchestrator.WorkerPool
	db          *database.Client

	httpServer *http.Server
}

// NewServer creates an API server wired to the given services.
func NewServer(
	jobs *services.JobService,
	records *services.RecordService,
	eventLog *services.EventService,
	publisher *events.Publisher,
	connManager *events.ConnectionManager,
	pool *orchestrator.WorkerPool,
	db *database.Client,
) *Server {
	return &Server{
		jobs:        jobs,
		records:     records,
		eventLog:    eventLog,
		publisher:   publisher,
		connManager: connManager,
		pool:        pool,
		db:          db,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())
	r.Use(corsHeaders())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/analysis", s.submitAnalysisHandler)
		v1.GET("/analysis", s.listAnalysesHandler)
		v1.GET("/analysis/:id", s.getAnalysisHandler)
		v1.GET("/analysis/:id/result", s.getResultHandler)
		v1.POST("/analysis/:id/cancel", s.cancelAnalysisHandler)
		v1.GET("/analysis/:id/events", s.wsHandler)
		v1.GET("/analysis/:id/events/stream", s.sseHandler)
	}

	return r
}

// Start runs the HTTP server until the listener fails.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
