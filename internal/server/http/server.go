// Package http exposes UserService over a JSON/cookie HTTP API.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/useraccounts/internal/logging"
	"github.com/dmitrijs2005/useraccounts/internal/server/models"
	"github.com/dmitrijs2005/useraccounts/internal/server/services"
)

// UserService is the part of services.UserService the handlers call.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.PublicAccount, string, error)
	Login(ctx context.Context, email, password string) (*models.PublicAccount, string, error)
	Logout(ctx context.Context, token string) error
	Reauthenticate(ctx context.Context, token string) (*models.PublicAccount, error)
}

type HTTPServer struct {
	address         string
	users           UserService
	logger          logging.Logger
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us UserService, allowedOrigins []string, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		allowedOrigins:  allowedOrigins,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the root http.Handler with CORS and request logging applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, "ok")
	})

	mux.HandleFunc("POST /user/register", s.handleRegister)
	mux.HandleFunc("POST /user/login", s.handleLogin)
	mux.HandleFunc("GET /user/logout", s.handleLogout)
	mux.HandleFunc("GET /user/token-relogin", s.handleTokenRelogin)

	return s.withLogging(withCORS(s.allowedOrigins, mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
