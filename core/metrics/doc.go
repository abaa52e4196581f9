// Package metrics exposes Prometheus metrics for the HTTP surface.
//
// It provides a Fiber middleware recording request totals and latencies per
// route, and a handler serving the /metrics scrape endpoint. Operator
// dashboards polling /api/inventory/:id/progress show up here with bounded
// label cardinality because the route pattern, not the raw path, is recorded.
package metrics
