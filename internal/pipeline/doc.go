// Package pipeline orchestrates the sentiment data flow: generated samples
// are scored, stamped, aggregated into monthly statistics, and memoized per
// (region, year) in a process-wide cache.
package pipeline
