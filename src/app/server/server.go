// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"visionboard/src/app/http/handler"
	"visionboard/src/app/middleware"
	"visionboard/src/core/domain"
	"visionboard/src/core/ports"
	"visionboard/src/core/usecase"
	"visionboard/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler  *handler.HealthHandler
	boardHandler   *handler.BoardHandler
	profileHandler *handler.ProfileHandler
}

// New creates a new Server with all dependencies wired up. remoteProfiles
// is nil when no database is configured; the profile service then serves
// everything from the local store.
func New(cfg *config.Config, log *slog.Logger, board ports.BoardRepository, localProfiles, remoteProfiles ports.ProfileStore) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	stores := map[string]ports.Repository{"local_store": localProfiles}
	if remoteProfiles != nil {
		stores["remote_store"] = remoteProfiles
	}
	healthService := usecase.NewHealthService(board, stores, log)

	ids := &domain.TimestampIDSource{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	boardService := usecase.NewBoardService(board, ids, rng, log)
	profileService := usecase.NewProfileService(localProfiles, remoteProfiles, cfg.Storage.MaxAvatarBytes, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		boardHandler:   handler.NewBoardHandler(boardService),
		profileHandler: handler.NewProfileHandler(profileService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Board
		v1.GET("/board", s.boardHandler.View)
		v1.POST("/board/theories", s.boardHandler.AddTheory)
		v1.POST("/board/wishes", s.boardHandler.AddWish)
		v1.POST("/board/wishes/:wish_id/toggle", s.boardHandler.ToggleWish)

		// Profile
		v1.GET("/profile", s.profileHandler.Get)
		v1.PUT("/profile", s.profileHandler.Save)
		v1.POST("/profile/avatar", s.profileHandler.SaveAvatar)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
