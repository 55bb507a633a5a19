// Package http is the transport adapter: it routes requests to the
// application services and owns the error-to-status mapping at the request
// boundary.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/edgcastillo/saveddit/internal/logging"
	"github.com/edgcastillo/saveddit/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	address string
	users   *services.UserService
	reddit  *services.RedditService
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, us *services.UserService, rs *services.RedditService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		reddit:  rs,
	}
}

// Handler builds the chi router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
	})

	r.Route("/reddit", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/credentials", s.handleLinkCredentials)
		r.Get("/saved", s.handleSavedItems)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
