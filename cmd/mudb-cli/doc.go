// Package main provides the entry point for mudb-cli.
//
// Usage:
//
//	mudb-cli [--host HOST] [--port PORT] [--output plain|json|yaml] COMMAND [ARGS...]
//	mudb-cli set greeting "hello world"
//	mudb-cli lrange queue 0 -1
//	mudb-cli            # interactive mode
//
// Defaults come from ~/.mudb/cli.yaml when it exists.
package main
