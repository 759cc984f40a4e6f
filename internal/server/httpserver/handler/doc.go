// Package handler provides the admin HTTP endpoints for muDB.
//
// Endpoints:
//
//   - GET /health: liveness, always 200 while the process serves HTTP
//   - GET /ready: 200 once the RESP listener accepts connections, else 503
//   - GET /admin/v1/status/summary: key count, shard layout and build info
//
// JSON responses share the Response envelope. /metrics is mounted by the
// router and uses the Prometheus text format.
package handler
