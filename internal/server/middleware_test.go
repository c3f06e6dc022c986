package server

import (
	"net/http"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/moodpulse/moodpulse/internal/pipeline"
)

func TestCorrelationMiddleware_GeneratesID(t *testing.T) {
	s := newTestServer(t)

	req, rec := newRequest("/api/regions")
	s.echo.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(correlationHeader), 8)
}

func TestCorrelationMiddleware_EchoesClientID(t *testing.T) {
	s := newTestServer(t)

	req, rec := newRequest("/api/regions")
	req.Header.Set(correlationHeader, "client99")
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "client99", rec.Header().Get(correlationHeader))
}

func TestRateLimiter_DeniesBurstOverflow(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	s := NewServer(cfg, pipeline.NewCache(newFakeRunner()), clockwork.NewFakeClock())

	req, rec := newRequest("/api/regions")
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newRequest("/api/regions")
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
