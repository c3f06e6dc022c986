package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/moodpulse/moodpulse/internal/config"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/nlp"
	"github.com/moodpulse/moodpulse/internal/pipeline"
	"github.com/moodpulse/moodpulse/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func warmCache(cache *pipeline.Cache, year int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	slog.Info("Warming pipeline cache for all regions", "year", year)
	if err := cache.Warm(ctx, year); err != nil {
		slog.Error("Cache warm-up failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Cache ready", "entries", cache.Len())
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	extractor := nlp.NewExtractor(cfg.FeatureExtractor)
	scorer := nlp.NewScorer(extractor)
	pipe := pipeline.New(scorer, clock, cfg.SamplesPerMonth)
	cache := pipeline.NewCache(pipe)

	if cfg.WarmCache {
		warmCache(cache, cfg.WarmYear)
	}

	srv := server.NewServer(cfg, cache, clock)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
