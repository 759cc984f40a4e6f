package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/yndnr/mudb-go/internal/telemetry/logger"
	"github.com/yndnr/mudb-go/pkg/cmap"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyLimits(&cfg.Limits); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if err := verifyAddr("server.redis.addr", cfg.Redis.Addr); err != nil {
		return err
	}
	if cfg.Redis.IdleTimeout < 0 {
		return errors.New("server.redis.idle_timeout must not be negative")
	}
	if cfg.Redis.WriteTimeout < 0 {
		return errors.New("server.redis.write_timeout must not be negative")
	}
	if !cfg.HTTP.Enabled {
		return nil
	}
	if err := verifyAddr("server.http.addr", cfg.HTTP.Addr); err != nil {
		return err
	}
	if cfg.HTTP.Addr == cfg.Redis.Addr {
		return fmt.Errorf("server.http.addr conflicts with server.redis.addr (%s)", cfg.HTTP.Addr)
	}
	return nil
}

func verifyAddr(name, addr string) error {
	if addr == "" {
		return fmt.Errorf("%s is required", name)
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s: invalid address %q: %w", name, addr, err)
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if !cmap.ValidShardCount(cfg.Shards) {
		return fmt.Errorf("storage.shards must be a power of 2, got %d", cfg.Shards)
	}
	return nil
}

func verifyLimits(cfg *LimitsSection) error {
	if cfg.CommandsPerSecond < 0 {
		return errors.New("limits.commands_per_second must not be negative")
	}
	if cfg.CommandsPerSecond > 0 && cfg.Burst < 1 {
		return errors.New("limits.burst must be at least 1 when rate limiting is enabled")
	}
	if cfg.MaxBulkLen < 1 {
		return errors.New("limits.max_bulk_len must be at least 1")
	}
	if cfg.MaxArrayLen < 1 {
		return errors.New("limits.max_array_len must be at least 1")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
		return nil
	}
	return fmt.Errorf("log.format: unknown format %q", cfg.Format)
}
