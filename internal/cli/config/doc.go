// Package config provides the mudb-cli configuration file.
//
// The file lives at ~/.mudb/cli.yaml and holds connection defaults, the
// output format and REPL history settings. Command-line flags override it.
package config
