// Package main provides the entry point for mudb-server.
//
// mudb-server keeps string and list values in memory and serves them over
// RESP on a TCP listener. An optional admin HTTP listener exposes /health,
// /ready, a status summary and Prometheus metrics.
//
// Usage:
//
//	mudb-server [flags]
//	mudb-server --config /etc/mudb/server.yaml
//	mudb-server --port 6390 --log-level debug
//
// Configuration is read from defaults, the YAML file, MUDB_* environment
// variables and flags, later sources winning. Changing log.level in the
// file takes effect without a restart.
package main
