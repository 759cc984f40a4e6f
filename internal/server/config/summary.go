package config

// LogAttrs returns the effective configuration as alternating key/value
// pairs for a single startup log line.
func LogAttrs(cfg *ServerConfig) []any {
	return []any{
		"redis_addr", cfg.Server.Redis.Addr,
		"idle_timeout", cfg.Server.Redis.IdleTimeout.String(),
		"http_enabled", cfg.Server.HTTP.Enabled,
		"http_addr", cfg.Server.HTTP.Addr,
		"shards", cfg.Storage.Shards,
		"commands_per_second", cfg.Limits.CommandsPerSecond,
		"max_bulk_len", cfg.Limits.MaxBulkLen,
		"max_array_len", cfg.Limits.MaxArrayLen,
		"log_level", cfg.Log.Level,
	}
}
