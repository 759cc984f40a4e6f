package config

import (
	"github.com/yndnr/mudb-go/pkg/cmap"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// Default configuration values.
const (
	DefaultRedisHost = "127.0.0.1"
	DefaultRedisPort = 6380
	DefaultRedisAddr = "127.0.0.1:6380"
	DefaultHTTPAddr  = "127.0.0.1:9180"

	DefaultShards = cmap.DefaultShardCount

	DefaultBurst       = 100
	DefaultMaxBulkLen  = resp.DefaultMaxBulkLen
	DefaultMaxArrayLen = resp.DefaultMaxArrayLen

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Redis: RedisConfig{
				Addr: DefaultRedisAddr,
			},
			HTTP: HTTPConfig{
				Enabled: false,
				Addr:    DefaultHTTPAddr,
			},
		},
		Storage: StorageSection{
			Shards: DefaultShards,
		},
		Limits: LimitsSection{
			Burst:       DefaultBurst,
			MaxBulkLen:  DefaultMaxBulkLen,
			MaxArrayLen: DefaultMaxArrayLen,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
