package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// OpenCommand returns the open command, which checks connectivity.
func OpenCommand() *cli.Command {
	return &cli.Command{
		Name:   "open",
		Usage:  "Connect to the server and check that it answers PING",
		Action: openAction,
	}
}

func openAction(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}

	reply, err := client.Do(c.Context, command.Ping{})
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}
	if pong, ok := reply.(resp.SimpleString); !ok || pong != "PONG" {
		return fmt.Errorf("unexpected PING reply from %s: %v", client.Addr(), reply)
	}

	fmt.Fprintf(c.App.Writer, "Connected to %s\n", client.Addr())
	return nil
}
