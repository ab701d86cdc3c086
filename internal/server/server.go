// Package server exposes the questionnaire engine, pulse-check scoring,
// habit grading, and share links over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"lifepath/internal/logging"
	"lifepath/internal/scoring"
	"lifepath/internal/session"
	"lifepath/internal/share"
)

// Options configures the HTTP server.
type Options struct {
	Addr           string
	Debug          bool
	AllowedOrigins []string
	MetricsEnabled bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	// Registry receives the server's Prometheus collectors. Nil selects
	// the default registry.
	Registry *prometheus.Registry
}

// Server wires the domain services behind a gin engine.
type Server struct {
	sessions *session.Manager
	scorer   *scoring.Client
	shares   *share.Service
	logger   logging.Logger
	metrics  *Metrics
	clock    func() time.Time

	engine     *gin.Engine
	httpServer *http.Server
}

// New assembles the server and its routes.
func New(opts Options, sessions *session.Manager, scorer *scoring.Client, shares *share.Service, logger logging.Logger) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogMiddleware(logger))

	corsConfig := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-User-ID", "X-Device-ID"}
	engine.Use(cors.New(corsConfig))

	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	if opts.Registry != nil {
		reg = opts.Registry
	}
	metrics := MustNewMetrics(reg)
	engine.Use(metrics.Middleware())

	s := &Server{
		sessions: sessions,
		scorer:   scorer,
		shares:   shares,
		logger:   logging.OrNop(logger),
		metrics:  metrics,
		clock:    time.Now,
		engine:   engine,
	}
	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      engine,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	s.setupRoutes(opts)
	return s
}

func (s *Server) setupRoutes(opts Options) {
	s.engine.GET("/healthz", s.handleHealth)
	if opts.MetricsEnabled {
		handler := promhttp.Handler()
		if opts.Registry != nil {
			handler = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})
		}
		s.engine.GET("/metrics", gin.WrapH(handler))
	}

	api := s.engine.Group("/api")

	sess := api.Group("/session")
	sess.Use(IdentityMiddleware())
	{
		sess.GET("", s.handleGetSession)
		sess.POST("/answers", s.handleAnswer)
		sess.PUT("/priorities", s.handleSetPriorities)
		sess.POST("/next", s.handleNext)
		sess.POST("/previous", s.handlePrevious)
		sess.POST("/restart", s.handleRestart)
		sess.POST("/reset", s.handleReset)
		sess.POST("/complete", s.handleComplete)
		sess.GET("/progress", s.handleProgress)
		sess.GET("/flow", s.handleFlow)
	}

	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("", s.handleCatalog)
		catalogGroup.GET("/future/:pillar", s.handleFuture)
	}

	pulse := api.Group("/pulse-check")
	{
		pulse.GET("/cards", s.handlePulseCards)
		pulse.POST("/score", s.handleScore)
	}

	shareGroup := api.Group("/share")
	{
		shareGroup.POST("", s.handleCreateShare)
		shareGroup.GET("/:token", s.handleGetShare)
	}

	api.POST("/habits/record", s.handleRecordHabit)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    gin.H{"status": "ok", "timestamp": time.Now()},
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully
// and flushes pending session writes.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.sessions.Flush()
		return nil
	})

	return g.Wait()
}
