package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpulse/moodpulse/internal/domain"
)

func TestHandleRegions(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/regions")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, float64(len(domain.Regions)), body["total"])
	regions, ok := body["regions"].([]any)
	require.True(t, ok)
	assert.Len(t, regions, len(domain.Regions))
	assert.Contains(t, regions, "Pacific Northwest")
}

func TestHandleSentiment_DefaultRegionAndYear(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/sentiment")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "Northeast", body["region"])
	assert.Equal(t, float64(2024), body["year"])
	assert.Equal(t, 65.0, body["overall_avg"])
	assert.Equal(t, domain.TrendImproving, body["trend_direction"])
	assert.Equal(t, float64(360), body["total_samples"])
	assert.Equal(t, true, body["feature_extractor_available"])

	monthly, ok := body["monthly_data"].([]any)
	require.True(t, ok)
	assert.Len(t, monthly, 2)
}

func TestHandleSentiment_AllRegions(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/sentiment?region=all&year=2023")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, float64(2023), body["year"])
	regions, ok := body["regions"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, regions, len(domain.Regions))
	assert.Contains(t, body["message"], "all 6 regions")
}

func TestHandleSentiment_UnknownRegion(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/sentiment?region=Atlantis")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", body["type"])
	assert.Contains(t, body["error"], "Atlantis")
}

func TestHandleSentiment_InvalidYear(t *testing.T) {
	s := newTestServer(t)

	for _, year := range []string{"abc", "-5", "0"} {
		code, body := doJSON(t, s, "/api/sentiment?year="+year)
		assert.Equal(t, http.StatusBadRequest, code, "year=%s", year)
		assert.Equal(t, "validation", body["type"])
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/stats")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, float64(len(domain.Regions)), body["regions_monitored"])
	// Mean of 65, 38, 52, 45, 70, 58.
	assert.Equal(t, 54.67, body["national_avg_sentiment"])
	assert.Equal(t, "West Coast", body["highest_region"])
	assert.Equal(t, 70.0, body["highest_score"])
	assert.Equal(t, "Southeast", body["lowest_region"])
	assert.Equal(t, 38.0, body["lowest_score"])
	assert.Equal(t, float64(6*360), body["total_samples_processed"])
}

func TestHandleResources_AllRegions(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/resources")
	require.Equal(t, http.StatusOK, code)

	rows, ok := body["resources"].([]any)
	require.True(t, ok)
	require.Len(t, rows, len(domain.Regions))

	// Southeast is under 40 and declining, so it leads with a capped score.
	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Southeast", first["region"])
	assert.Equal(t, "Critical", first["priority"])
	assert.Equal(t, float64(100), first["allocation_score"])

	second, ok := rows[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Southwest", second["region"])
	assert.Equal(t, "↑ High", second["priority"])

	assert.Equal(t, float64(73), body["total_budget_pct_allocated"])
	assert.Equal(t, float64(300), body["total_counselors_needed"])
}

func TestHandleResources_RegionFilter(t *testing.T) {
	s := newTestServer(t)

	code, body := doJSON(t, s, "/api/resources?region=Southeast,%20Midwest,%20Atlantis")
	require.Equal(t, http.StatusOK, code)

	rows, ok := body["resources"].([]any)
	require.True(t, ok)
	// Atlantis is silently dropped.
	require.Len(t, rows, 2)
}
