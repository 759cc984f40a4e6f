package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// PingCommand returns the ping command.
func PingCommand() *cli.Command {
	return dataCommand("PING", "Check that the server answers", "[MESSAGE]")
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return dataCommand("GET", "Get the string value of a key", "KEY")
}

// SetCommand returns the set command.
func SetCommand() *cli.Command {
	return dataCommand("SET", "Set the string value of a key", "KEY VALUE")
}

// LPushCommand returns the lpush command.
func LPushCommand() *cli.Command {
	return dataCommand("LPUSH", "Prepend values to a list, one at a time", "KEY VALUE [VALUE...]")
}

// RPushCommand returns the rpush command.
func RPushCommand() *cli.Command {
	return dataCommand("RPUSH", "Append values to a list", "KEY VALUE [VALUE...]")
}

// LRangeCommand returns the lrange command.
func LRangeCommand() *cli.Command {
	return dataCommand("LRANGE", "Get a range of list elements (negative indexes count from the tail)", "KEY START STOP")
}

func dataCommand(name, usage, argsUsage string) *cli.Command {
	return &cli.Command{
		Name:      strings.ToLower(name),
		Usage:     usage,
		ArgsUsage: argsUsage,
		Action: func(c *cli.Context) error {
			return runData(c, name)
		},
	}
}

// runData validates the arguments locally, sends the command and prints
// the reply.
func runData(c *cli.Context, name string) error {
	args := append([]string{name}, c.Args().Slice()...)
	cmd, err := command.Parse(resp.BulkStrings(args...))
	if err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(name), err)
	}

	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	reply, err := client.Do(c.Context, cmd)
	if err != nil {
		return err
	}
	if err := Formatter(c).Format(c.App.Writer, reply); err != nil {
		return err
	}
	if command.IsError(reply) {
		return ErrErrorReply
	}
	return nil
}
