package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpulse/moodpulse/internal/pipeline"
)

func TestHandleLiveness_UptimeFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewServer(testConfig(), pipeline.NewCache(newFakeRunner()), clock)

	clock.Advance(90 * time.Second)

	code, body := doJSON(t, s, "/health/live")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 90.0, body["uptime"])
}

func TestHandleReadiness_ReportsCacheEntries(t *testing.T) {
	cache := pipeline.NewCache(newFakeRunner())
	s := NewServer(testConfig(), cache, clockwork.NewFakeClock())

	code, body := doJSON(t, s, "/health/ready")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, 0.0, body["cache_entries"])

	require.NoError(t, cache.Warm(context.Background(), 2024))

	_, body = doJSON(t, s, "/health/ready")
	assert.Equal(t, 6.0, body["cache_entries"])
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/version")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dev", body["version"])
	assert.NotEmpty(t, body["go_version"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	req, rec := newRequest("/metrics")
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
