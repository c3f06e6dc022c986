package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Dashboard API
	s.echo.GET("/api/regions", s.handleRegions)
	s.echo.GET("/api/sentiment", s.handleSentiment)
	s.echo.GET("/api/stats", s.handleStats)
	s.echo.GET("/api/resources", s.handleResources)
}
