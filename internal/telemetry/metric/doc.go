// Package metric provides Prometheus metrics for muDB.
//
//   - prometheus.go: the metrics registry, command and connection metrics,
//     and the /metrics HTTP handler
//   - collector.go: a collector reporting key-space size on scrape
//
// All metric names carry the "mudb" namespace.
package metric
