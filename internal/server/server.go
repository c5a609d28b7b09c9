// Package server собирает HTTP API: маршруты, middleware и жизненный цикл сервера
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/iudanet/expensekeeper/internal/server/events"
	"github.com/iudanet/expensekeeper/internal/server/handlers"
	"github.com/iudanet/expensekeeper/internal/server/jwt"
	"github.com/iudanet/expensekeeper/internal/server/middleware"
	"github.com/iudanet/expensekeeper/internal/server/storage"
	"github.com/iudanet/expensekeeper/pkg/api"
)

// DefaultShutdownTimeout время на завершение активных запросов при остановке
const DefaultShutdownTimeout = 10 * time.Second

// Deps зависимости HTTP API
type Deps struct {
	Logger    *slog.Logger
	Storage   storage.Storage
	Tokens    *jwt.Service
	Publisher events.Publisher
	Version   string
	// CORSOrigins разрешенные Origin; пустой список отключает CORS
	CORSOrigins []string
}

// NewRouter creates HTTP handler with all API routes
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger

	authHandler := handlers.NewAuthHandler(logger, deps.Storage, deps.Tokens)
	txHandler := handlers.NewTransactionHandler(logger, deps.Storage, deps.Publisher)
	summaryHandler := handlers.NewSummaryHandler(logger, deps.Storage)
	healthHandler := handlers.NewHealthHandler(logger, deps.Storage, deps.Version)

	r := chi.NewRouter()

	// Порядок: recovery первым, чтобы перехватывать панику в остальных middleware
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingWithSkip(logger, []string{"/health"}))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.NotFound(jsonError("not found", http.StatusNotFound))
	r.MethodNotAllowed(jsonError("method not allowed", http.StatusMethodNotAllowed))

	// Публичные endpoints
	r.Get("/health", healthHandler.Health)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Защищенные endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(logger, deps.Tokens))

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", txHandler.Create)
			r.Get("/", txHandler.List)
			r.Get("/{id}", txHandler.Get)
			r.Put("/{id}", txHandler.Update)
			r.Delete("/{id}", txHandler.Delete)
		})
		r.Get("/summary", summaryHandler.Summary)
	})

	return r
}

func jsonError(message string, statusCode int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
	}
}

// Server HTTP сервер с graceful shutdown
type Server struct {
	httpServer      *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New creates server listening on addr
func New(addr string, handler http.Handler, logger *slog.Logger, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run слушает адрес сервера до отмены ctx, затем дожидается завершения активных запросов
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на готовом listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server started", slog.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", slog.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
