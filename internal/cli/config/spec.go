package config

import (
	"net"
	"strconv"
	"time"
)

// CLIConfig is the configuration for mudb-cli.
type CLIConfig struct {
	// Default connection settings
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Timeout time.Duration `yaml:"timeout"`

	// Output is the reply format: plain, json or yaml.
	Output string `yaml:"output"`

	// REPL history
	HistoryFile string `yaml:"history_file"`
	HistorySize int    `yaml:"history_size"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Host:        "127.0.0.1",
		Port:        6380,
		Timeout:     5 * time.Second,
		Output:      "plain",
		HistoryFile: DefaultHistoryPath(),
		HistorySize: 1000,
	}
}

// Address returns host:port.
func (c *CLIConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
