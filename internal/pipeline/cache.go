package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/moodpulse/moodpulse/internal/domain"
	"github.com/moodpulse/moodpulse/internal/metrics"
)

// Runner computes a pipeline result. Satisfied by *Pipeline; the indirection
// keeps the cache testable without running real pipelines.
type Runner interface {
	Run(ctx context.Context, region string, year int, months []int) (*domain.PipelineResult, error)
}

// Cache memoizes pipeline results by "{region}-{year}" for the process
// lifetime. No eviction, no TTL. Concurrent first-time lookups for one key
// share a single computation via singleflight, and readers only ever observe
// a fully formed result.
type Cache struct {
	runner Runner
	group  singleflight.Group

	mu      sync.RWMutex
	results map[string]*domain.PipelineResult
}

func NewCache(runner Runner) *Cache {
	return &Cache{
		runner:  runner,
		results: make(map[string]*domain.PipelineResult),
	}
}

// Get returns the cached result for (region, year), computing and storing it
// on first use. A cache hit returns the stored value unchanged.
func (c *Cache) Get(ctx context.Context, region string, year int) (*domain.PipelineResult, error) {
	key := cacheKey(region, year)

	c.mu.RLock()
	result, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return result, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have stored the result between our read
		// and this flight starting.
		c.mu.RLock()
		cached, ok := c.results[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		slog.Info("Pipeline cache miss, computing", "region", region, "year", year)
		computed, err := c.runner.Run(ctx, region, year, nil)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.results[key] = computed
		metrics.CacheEntries.Set(float64(len(c.results)))
		c.mu.Unlock()

		return computed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.PipelineResult), nil
}

// Warm eagerly computes results for every known region at the given year so
// first external requests are served from the cache.
func (c *Cache) Warm(ctx context.Context, year int) error {
	for _, region := range domain.Regions {
		if _, err := c.Get(ctx, region, year); err != nil {
			return fmt.Errorf("warming %s %d: %w", region, year, err)
		}
	}
	return nil
}

// Len reports the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

func cacheKey(region string, year int) string {
	return fmt.Sprintf("%s-%d", region, year)
}
