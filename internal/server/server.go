package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moodpulse/moodpulse/internal/config"
	apperrors "github.com/moodpulse/moodpulse/internal/errors"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/pipeline"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	cache     *pipeline.Cache
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, cache *pipeline.Cache, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())
	e.Use(newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	srv := &Server{
		echo:      e,
		config:    cfg,
		cache:     cache,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	logging.Logger.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
