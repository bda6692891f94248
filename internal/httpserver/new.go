package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware settings
	allowedOrigins       []string
	resetRateLimitPerMin int

	// Schedule domain
	scheduleUC    schedule.UseCase
	maxAudioBytes int64

	// readyCheck reports whether backing services are reachable. Nil means always ready.
	readyCheck func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AllowedOrigins       []string
	ResetRateLimitPerMin int

	ScheduleUseCase schedule.UseCase
	MaxAudioBytes   int64

	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.New(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		allowedOrigins:       cfg.AllowedOrigins,
		resetRateLimitPerMin: cfg.ResetRateLimitPerMin,
		scheduleUC:           cfg.ScheduleUseCase,
		maxAudioBytes:        cfg.MaxAudioBytes,
		readyCheck:           cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.scheduleUC == nil {
		return errors.New("schedule use case is required")
	}
	if srv.maxAudioBytes <= 0 {
		return errors.New("max audio bytes must be positive")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
