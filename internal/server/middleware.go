package server

import (
	"github.com/labstack/echo/v4"

	"github.com/moodpulse/moodpulse/internal/platform/correlation"
)

const correlationHeader = "X-Correlation-ID"

// correlationMiddleware attaches a correlation ID to every request. An ID
// supplied by the client via X-Correlation-ID is reused, otherwise a fresh one
// is generated. The ID is echoed back on the response and flows into every
// log line through the correlation-aware slog handler.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(correlationHeader)
			if id == "" {
				id = correlation.NewID()
			}

			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(correlationHeader, id)

			return next(c)
		}
	}
}
