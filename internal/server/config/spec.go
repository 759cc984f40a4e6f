package config

import (
	"net"
	"strconv"
	"time"
)

// ServerConfig is the root configuration for mudb-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Limits  LimitsSection  `koanf:"limits"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	Redis RedisConfig `koanf:"redis"`
	HTTP  HTTPConfig  `koanf:"http"`
}

// RedisConfig configures the RESP listener.
type RedisConfig struct {
	Addr string `koanf:"addr"`

	// IdleTimeout closes a connection that sends nothing for this long.
	// Zero disables it.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// WriteTimeout bounds the time spent flushing replies. Zero disables it.
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// HTTPConfig configures the admin HTTP server (/metrics, /health, /ready).
type HTTPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// StorageSection configures the in-memory store.
type StorageSection struct {
	// Shards is the number of lock shards, a power of 2.
	Shards int `koanf:"shards"`
}

// LimitsSection configures per-client and per-frame limits.
type LimitsSection struct {
	// CommandsPerSecond is the sustained command rate allowed per client IP.
	// Zero disables rate limiting.
	CommandsPerSecond int `koanf:"commands_per_second"`

	// Burst is the number of commands a client may send at once.
	Burst int `koanf:"burst"`

	// MaxBulkLen is the largest accepted bulk string, in bytes.
	MaxBulkLen int `koanf:"max_bulk_len"`

	// MaxArrayLen is the largest accepted number of frame elements.
	MaxArrayLen int `koanf:"max_array_len"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SetRedisPort replaces the port of Server.Redis.Addr, keeping the host.
func (c *ServerConfig) SetRedisPort(port int) {
	host, _, err := net.SplitHostPort(c.Server.Redis.Addr)
	if err != nil {
		host = DefaultRedisHost
	}
	c.Server.Redis.Addr = net.JoinHostPort(host, strconv.Itoa(port))
}
