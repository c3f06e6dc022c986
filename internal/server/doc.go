// Package server exposes the sentiment pipeline over HTTP.
//
// Endpoints:
//   - /api/regions: the monitored region list
//   - /api/sentiment: cached monthly sentiment series per region
//   - /api/stats: cross-region dashboard summary
//   - /api/resources: resource-allocation recommendations
//   - /health/live, /health/ready, /metrics, /version: observability
//
// Handlers return structured errors (internal/errors); the error middleware
// converts them into JSON responses and Prometheus counters.
package server
