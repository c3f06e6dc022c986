// Package metrics defines the Prometheus instruments for the sentiment
// pipeline. Everything is registered via promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// PipelineRunsTotal counts completed pipeline runs by region and status.
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total pipeline runs by region and status",
		},
		[]string{"region", "status"},
	)

	// PipelineRunDuration tracks end-to-end pipeline run latency in seconds.
	PipelineRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_run_duration_seconds",
			Help:    "Pipeline run duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// SamplesProcessedTotal counts samples that passed through the scorer.
	SamplesProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "samples_processed_total",
			Help: "Total text samples scored by the pipeline",
		},
	)
)

// Cache metrics
var (
	// CacheLookupsTotal counts pipeline cache lookups by result (hit/miss).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_cache_lookups_total",
			Help: "Pipeline cache lookups by result",
		},
		[]string{"result"},
	)

	// CacheEntries tracks the current number of cached pipeline results.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipeline_cache_entries",
			Help: "Current number of cached pipeline results",
		},
	)
)
