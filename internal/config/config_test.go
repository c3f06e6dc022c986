package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "auto", cfg.FeatureExtractor)
	assert.True(t, cfg.WarmCache)
	assert.Equal(t, 2024, cfg.WarmYear)
	assert.Equal(t, 30, cfg.SamplesPerMonth)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FEATURE_EXTRACTOR", "fallback")
	t.Setenv("WARM_CACHE", "false")
	t.Setenv("WARM_YEAR", "2023")
	t.Setenv("SAMPLES_PER_MONTH", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "fallback", cfg.FeatureExtractor)
	assert.False(t, cfg.WarmCache)
	assert.Equal(t, 2023, cfg.WarmYear)
	assert.Equal(t, 50, cfg.SamplesPerMonth)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"FEATURE_EXTRACTOR", "partial"},
		{"WARM_CACHE", "maybe"},
		{"WARM_YEAR", "-1"},
		{"SAMPLES_PER_MONTH", "0"},
		{"SAMPLES_PER_MONTH", "thirty"},
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_BURST", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
