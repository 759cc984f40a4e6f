package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yndnr/mudb-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		// Error replies were already printed with the reply.
		if !errors.Is(err, command.ErrErrorReply) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
