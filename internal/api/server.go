// Package api exposes the tutor over HTTP.
//
// Endpoints:
//   - POST /api/chat        - answer a question
//   - GET  /api/categories  - subject categories and their keywords
//   - GET  /healthz         - liveness probe
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/xaenox/tutor-bot/internal/models"
	"github.com/xaenox/tutor-bot/internal/tutor"
	"github.com/xaenox/tutor-bot/pkg/config"
)

// Answerer is the part of the tutor the HTTP layer depends on.
type Answerer interface {
	Answer(question string, history []models.ConversationTurn) tutor.Reply
}

type Server struct {
	cfg    config.ServerConfig
	tutor  Answerer
	logger *zap.Logger
	engine *gin.Engine
}

func New(cfg config.ServerConfig, t Answerer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	// Only the socket peer counts as the client; forwarded headers are ignored.
	_ = engine.SetTrustedProxies(nil)

	s := &Server{
		cfg:    cfg,
		tutor:  t,
		logger: logger,
		engine: engine,
	}

	engine.Use(requestID(), accessLog(logger), recovery(logger))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	if s.cfg.RateLimit.RPS > 0 {
		limiter := newClientLimiter(rate.Limit(s.cfg.RateLimit.RPS), s.cfg.RateLimit.Burst)
		api.Use(s.rateLimit(limiter))
	}
	api.POST("/chat", s.handleChat)
	api.GET("/categories", s.handleCategories)

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	})
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("HTTP server listening", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
