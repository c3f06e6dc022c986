package server

import (
	"github.com/labstack/echo/v4"

	"github.com/moodpulse/moodpulse/internal/platform/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness reports ready once the server is up. The pipeline has no
// external collaborators, so readiness only adds the current cache size for
// operators checking warm-up progress.
func (s *Server) handleReadiness(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"status":        "ready",
		"cache_entries": s.cache.Len(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
