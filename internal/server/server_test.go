package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/moodpulse/moodpulse/internal/config"
	"github.com/moodpulse/moodpulse/internal/domain"
	"github.com/moodpulse/moodpulse/internal/pipeline"
)

// fakeRunner serves canned pipeline results so handler tests stay fast and
// deterministic.
type fakeRunner struct {
	avgs   map[string]float64
	trends map[string]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		avgs: map[string]float64{
			"Northeast":         65,
			"Southeast":         38,
			"Midwest":           52,
			"Southwest":         45,
			"West Coast":        70,
			"Pacific Northwest": 58,
		},
		trends: map[string]string{
			"Northeast":         domain.TrendImproving,
			"Southeast":         domain.TrendDeclining,
			"Midwest":           domain.TrendImproving,
			"Southwest":         domain.TrendDeclining,
			"West Coast":        domain.TrendImproving,
			"Pacific Northwest": domain.TrendDeclining,
		},
	}
}

func (r *fakeRunner) Run(_ context.Context, region string, year int, _ []int) (*domain.PipelineResult, error) {
	avg := r.avgs[region]
	return &domain.PipelineResult{
		Region: region,
		Year:   year,
		MonthlyData: []domain.MonthlyAggregate{
			{Region: region, Year: year, Month: 1, MonthLabel: "Jan", AvgSentiment: avg - 1, SampleCount: 30},
			{Region: region, Year: year, Month: 2, MonthLabel: "Feb", AvgSentiment: avg + 1, SampleCount: 30},
		},
		OverallAvg:                avg,
		TrendDirection:            r.trends[region],
		TotalSamplesProcessed:     360,
		FeatureExtractorAvailable: true,
		PipelineVersion:           pipeline.Version,
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "development",
		Port:           "8080",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(testConfig(), pipeline.NewCache(newFakeRunner()), clockwork.NewFakeClock())
}

func newRequest(target string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest("GET", target, nil), httptest.NewRecorder()
}

// doJSON issues a request against the server and decodes the JSON response.
func doJSON(t *testing.T, s *Server, target string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}
