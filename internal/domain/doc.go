// Package domain holds the data model shared by the pipeline, the cache, and
// the HTTP layer. The JSON field names on these types are the wire contract
// consumed by the dashboard and must stay stable.
package domain
