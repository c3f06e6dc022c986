package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	LogLevel         string
	LogFormat        string
	FeatureExtractor string
	WarmCache        bool
	WarmYear         int
	SamplesPerMonth  int
	RateLimitRPS     float64
	RateLimitBurst   int
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		FeatureExtractor: getEnv("FEATURE_EXTRACTOR", "auto"),
	}

	switch cfg.FeatureExtractor {
	case "auto", "full", "fallback":
	default:
		return nil, fmt.Errorf("FEATURE_EXTRACTOR must be auto, full, or fallback, got %q", cfg.FeatureExtractor)
	}

	warm, err := getBool("WARM_CACHE", true)
	if err != nil {
		return nil, err
	}
	cfg.WarmCache = warm

	cfg.WarmYear, err = getInt("WARM_YEAR", 2024)
	if err != nil {
		return nil, err
	}
	if cfg.WarmYear < 1 {
		return nil, fmt.Errorf("WARM_YEAR must be positive, got %d", cfg.WarmYear)
	}

	cfg.SamplesPerMonth, err = getInt("SAMPLES_PER_MONTH", 30)
	if err != nil {
		return nil, err
	}
	if cfg.SamplesPerMonth < 1 {
		return nil, fmt.Errorf("SAMPLES_PER_MONTH must be positive, got %d", cfg.SamplesPerMonth)
	}

	cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS)
	}

	cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", cfg.RateLimitBurst)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}
