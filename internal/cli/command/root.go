package command

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mudb-go/internal/cli/config"
	"github.com/yndnr/mudb-go/internal/cli/connection"
	"github.com/yndnr/mudb-go/internal/cli/output"
	"github.com/yndnr/mudb-go/internal/infra/buildinfo"
)

// ErrErrorReply is returned by a data subcommand when the server answered
// with an error reply. The reply has already been printed.
var ErrErrorReply = errors.New("server returned an error reply")

const (
	metaSettings = "settings"
	metaConnMgr  = "connMgr"
)

// Settings are the resolved global options: config file values overridden by
// flags and environment variables.
type Settings struct {
	Addr        string
	Timeout     time.Duration
	Output      output.Format
	HistoryFile string
	HistorySize int
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "mudb-cli",
		Usage:   "mudb command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			PingCommand(),
			GetCommand(),
			SetCommand(),
			LPushCommand(),
			RPushCommand(),
			LRangeCommand(),
			OpenCommand(),
			REPLCommand(),
		},
		Before: setup,
		After:  teardown,
		Action: replAction,
	}
}

// globalFlags returns the global CLI flags. Unset flags fall back to the
// CLI config file.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "server host (default: 127.0.0.1)",
			EnvVars: []string{"MUDB_HOST"},
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "server port (default: 6380)",
			EnvVars: []string{"MUDB_PORT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: plain, json, yaml (default: plain)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "dial and request timeout (default: 5s)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "CLI config file",
			Value:   config.DefaultConfigPath(),
			EnvVars: []string{"MUDB_CLI_CONFIG"},
		},
	}
}

// setup resolves the settings and creates the connection manager.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Port)
	}

	s := &Settings{
		Addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Timeout:     cfg.Timeout,
		Output:      format,
		HistoryFile: cfg.HistoryFile,
		HistorySize: cfg.HistorySize,
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[metaSettings] = s
	c.App.Metadata[metaConnMgr] = connection.NewManager(s.Addr, s.Timeout)
	return nil
}

func teardown(c *cli.Context) error {
	if mgr := GetConnectionManager(c); mgr != nil {
		return mgr.Disconnect()
	}
	return nil
}

// GetSettings retrieves the resolved settings from context.
func GetSettings(c *cli.Context) *Settings {
	if s, ok := c.App.Metadata[metaSettings].(*Settings); ok {
		return s
	}
	return nil
}

// GetConnectionManager retrieves the connection manager from context.
func GetConnectionManager(c *cli.Context) *connection.Manager {
	if mgr, ok := c.App.Metadata[metaConnMgr].(*connection.Manager); ok {
		return mgr
	}
	return nil
}

// EnsureConnected returns the connected client, dialing if needed.
func EnsureConnected(c *cli.Context) (*connection.Client, error) {
	mgr := GetConnectionManager(c)
	if mgr == nil {
		return nil, errors.New("connection manager not initialized")
	}
	return mgr.Connect(c.Context)
}

// Formatter returns the formatter for the selected output format.
func Formatter(c *cli.Context) output.Formatter {
	if s := GetSettings(c); s != nil {
		return output.NewFormatter(s.Output)
	}
	return output.NewFormatter(output.FormatPlain)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
