// Package logger provides structured logging for muDB.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler construction, runtime level changes, default logger
//   - context.go: context propagation of the logger and connection IDs
//   - truncate.go: shortening of client payloads before they are written
//
// Client data (keys, values, command arguments) can be arbitrarily large, so
// attributes named value, args or payload are cut to a fixed length.
package logger
