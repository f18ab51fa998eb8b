// Package api is the HTTP surface: telemetry ingest, operator entry points,
// the telephony webhook, and operational readbacks.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/database"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/masking"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/version"
)

// Deps bundles the server's collaborators. Model may be nil; the telephony
// webhook then falls back to its canned dialogue turns.
type Deps struct {
	Telemetry      *services.TelemetryService
	Vehicles       *services.VehicleService
	Engagements    *services.EngagementService
	Communications *services.CommunicationService
	Pipeline       *services.PipelineService
	Publisher      *bus.Publisher
	Model          llm.Client
}

// Server hosts the HTTP endpoints.
type Server struct {
	cfg    *config.Config
	db     *database.Client
	deps   Deps
	log    *slog.Logger
	masker *masking.Service

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, db *database.Client, deps Deps) *Server {
	return &Server{
		cfg:    cfg,
		db:     db,
		deps:   deps,
		log:    slog.Default().With("component", "api"),
		masker: masking.NewService(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	r.GET("/health", s.health)
	r.POST("/ingest_telemetry", s.ingestTelemetry)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/feedback", s.submitFeedback)
		v1.POST("/vehicles", s.upsertVehicle)
		v1.GET("/cases/:id/state", s.caseState)
		v1.GET("/reviews", s.listReviews)
		v1.PUT("/reviews/:id/resolve", s.resolveReview)
	}

	tw := r.Group("/twilio")
	{
		tw.POST("/voice", s.twilioVoice)
		tw.POST("/gather", s.twilioGather)
		tw.POST("/status", s.twilioStatus)
	}

	return r
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// health reports process liveness and database reachability.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// requestLogger logs one line per request in the usual key-value style.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// corsMiddleware answers preflight requests and stamps the CORS headers the
// ingest endpoint promises to browser clients.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
