package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/mudb-go/internal/cli/repl"
)

// REPLCommand returns the repl command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Start an interactive session (the default without a command)",
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	opts := []repl.Option{
		repl.WithInput(c.App.Reader),
		repl.WithOutput(c.App.Writer),
		repl.WithPrompt(client.Addr() + "> "),
	}
	if s := GetSettings(c); s != nil {
		opts = append(opts, repl.WithHistory(repl.NewHistory(s.HistoryFile, s.HistorySize)))
	}

	return repl.New(client, Formatter(c), opts...).Run(c.Context)
}
