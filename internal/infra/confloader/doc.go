// Package confloader provides the configuration loading mechanism.
//
// It uses koanf to merge several sources into a typed struct:
//
//  1. Command-line flags (WithOverrides / LoadMap)
//  2. Environment variables (MUDB_ prefix)
//  3. Configuration file (YAML)
//  4. Default values (whatever the target struct already holds)
//
// Environment variable names are matched against the koanf tags of the
// target struct, so MUDB_LIMITS_COMMANDS_PER_SECOND sets
// limits.commands_per_second rather than limits.commands.per.second.
//
// The Watcher reports changes to the configuration file through fsnotify so
// that callers can reload settings which are safe to change at runtime.
package confloader
