package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"study-deadline-engine/internal/auth"
	"study-deadline-engine/internal/deadline"
	"study-deadline-engine/internal/middleware"
	"study-deadline-engine/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	// Domains
	deadlineUC deadline.UseCase
	authUC     auth.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	DeadlineUseCase deadline.UseCase
	AuthUseCase     auth.UseCase
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		deadlineUC:  cfg.DeadlineUseCase,
		authUC:      cfg.AuthUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.deadlineUC == nil {
		return errors.New("deadline usecase is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	return nil
}

// Run maps all handlers and blocks serving HTTP.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
