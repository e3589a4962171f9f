package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/sozercan/prompt-generator/internal/config"
	"github.com/sozercan/prompt-generator/internal/engine"
)

const (
	ServiceName = "Prompt Generator API"
	Version     = "1.0.0"
)

// PromptEngine is the core the HTTP layer delegates to.
type PromptEngine interface {
	Generate(category engine.Category, count int, specificity engine.Specificity) ([]string, error)
	Optimize(text, context string) engine.OptimizationResult
}

type Server struct {
	cfg     config.Config
	server  *http.Server
	router  *chi.Mux
	engine  PromptEngine
	limiter *rate.Limiter
}

func New(cfg config.Config, eng PromptEngine) *Server {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		engine: eng,
	}
	if cfg.RateLimit.RPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), max(1, cfg.RateLimit.Burst))
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(recoverMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}))
	if s.cfg.Server.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}
	if s.limiter != nil {
		s.router.Use(s.rateLimitMiddleware)
	}

	s.router.Get("/", s.handleStatus)
	s.router.Post("/generate", s.handleGenerate)
	s.router.Post("/optimize", s.handleOptimize)
	s.router.Get("/types", s.handleTypes)
	s.router.Get("/openapi.json", s.handleOpenAPI)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
