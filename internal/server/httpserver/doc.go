// Package httpserver provides the admin HTTP server for muDB.
//
// The server is optional (server.http.enabled) and carries no data-plane
// traffic. It exposes Prometheus metrics and health probes:
//
//   - router.go: route table and middleware chain
//   - middleware.go: request IDs, panic recovery, access logging
//   - server.go: listener lifecycle
package httpserver
