package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mudb-go/internal/infra/buildinfo"
	"github.com/yndnr/mudb-go/internal/infra/confloader"
	"github.com/yndnr/mudb-go/internal/infra/shutdown"
	"github.com/yndnr/mudb-go/internal/server/config"
	"github.com/yndnr/mudb-go/internal/server/httpserver"
	"github.com/yndnr/mudb-go/internal/server/redisserver"
	"github.com/yndnr/mudb-go/internal/storage/memory"
	"github.com/yndnr/mudb-go/internal/telemetry/logger"
	"github.com/yndnr/mudb-go/internal/telemetry/metric"
)

const shutdownTimeout = 30 * time.Second

func main() {
	app := &cli.App{
		Name:    "mudb-server",
		Usage:   "in-memory key-value server speaking RESP",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"MUDB_CONFIG"},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "RESP port, overriding server.redis.addr's port",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:  "http",
				Usage: "enable the admin HTTP listener",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	configFile := c.String("config")

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting mudb-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", configFile)
	log.Info("effective configuration", config.LogAttrs(cfg)...)

	store := memory.New(memory.WithShards(cfg.Storage.Shards))

	metrics := metric.NewRegistry()
	metrics.MustRegister(metric.NewCollector(store))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)

	// Bind failures are fatal before anything starts serving.
	redisServer := redisserver.New(redisConfig(cfg), store,
		redisserver.WithLogger(log),
		redisserver.WithMetrics(metrics))
	if err := redisServer.Listen(); err != nil {
		return err
	}

	var adminServer *httpserver.Server
	if cfg.Server.HTTP.Enabled {
		router := httpserver.NewRouter(&httpserver.RouterConfig{
			Stats:   store,
			Ready:   redisServer.Ready,
			Metrics: metrics.Handler(),
			Logger:  log,
		})
		adminServer = httpserver.New(cfg.Server.HTTP.Addr, router)
		if err := adminServer.Listen(); err != nil {
			_ = redisServer.Shutdown(ctx)
			return err
		}
	}

	// Hooks run in reverse order of registration.
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down redis server")
		return redisServer.Shutdown(ctx)
	})

	go func() {
		if err := redisServer.Serve(ctx); err != nil {
			log.Error("redis server failed", "error", err)
			shutdownHandler.Trigger(fmt.Errorf("redis server: %w", err))
		}
	}()

	if adminServer != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down admin HTTP server")
			return adminServer.Shutdown(ctx)
		})

		go func() {
			log.Info("admin HTTP server listening", "addr", adminServer.Addr().String())
			if err := adminServer.Serve(); err != nil {
				log.Error("admin HTTP server failed", "error", err)
				shutdownHandler.Trigger(fmt.Errorf("admin HTTP server: %w", err))
			}
		}()
	}

	if configFile != "" {
		watcher, err := watchConfig(c, configFile, log)
		if err != nil {
			log.Warn("config hot reload disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from the file, environment and flags.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	overrides := flagOverrides(c)

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return nil, err
	}

	// --port replaces only the port, so it is applied after loading.
	if c.IsSet("port") {
		cfg.SetRedisPort(c.Int("port"))
		if err := config.Verify(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return cfg, nil
}

// flagOverrides maps set flags onto configuration keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("http") {
		overrides["server.http.enabled"] = c.Bool("http")
	}
	return overrides
}

// initLogger creates the process logger and installs it as the default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  os.Stdout,
		Service: "mudb-server",
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

func redisConfig(cfg *config.ServerConfig) *redisserver.Config {
	return &redisserver.Config{
		Addr:              cfg.Server.Redis.Addr,
		IdleTimeout:       cfg.Server.Redis.IdleTimeout,
		WriteTimeout:      cfg.Server.Redis.WriteTimeout,
		MaxBulkLen:        cfg.Limits.MaxBulkLen,
		MaxArrayLen:       cfg.Limits.MaxArrayLen,
		CommandsPerSecond: cfg.Limits.CommandsPerSecond,
		Burst:             cfg.Limits.Burst,
	}
}

// watchConfig reloads the file on change and applies log.level. Other
// settings need a restart.
func watchConfig(c *cli.Context, path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	overrides := flagOverrides(c)
	watcher.OnChange(func(string) {
		cfg, err := config.Load(path, overrides)
		if err != nil {
			log.Warn("config reload failed, keeping current settings", "error", err)
			return
		}
		before := logger.GetLevel()
		logger.SetLevel(cfg.Log.Level)
		if after := logger.GetLevel(); after != before {
			log.Info("log level changed", "from", before, "to", after)
		}
	})
	watcher.StartAsync()
	return watcher, nil
}
