// Package httpapi exposes the account and task services over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Profile(ctx context.Context, claims *auth.Claims) (*models.User, error)
}

type TaskService interface {
	Create(ctx context.Context, claims *auth.Claims, taskname, status string) (*models.Task, error)
	Update(ctx context.Context, claims *auth.Claims, taskID, taskname, status string) (*models.Task, error)
	ListForUser(ctx context.Context, claims *auth.Claims) ([]*models.Task, error)
}

// Authenticator turns an Authorization header value into verified claims.
type Authenticator interface {
	Authenticate(header string) (*auth.Claims, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	accounts        AccountService
	tasks           TaskService
	gate            Authenticator
	logger          logging.Logger
	engine          *gin.Engine
}

func NewHTTPServer(a string, shutdownTimeout time.Duration, l logging.Logger, as AccountService, ts TaskService, gate Authenticator) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		accounts:        as,
		tasks:           ts,
		gate:            gate,
		logger:          l.With("module", "http_server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, for use with httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves requests until ctx is cancelled, then drains in-flight requests
// for at most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listen)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
