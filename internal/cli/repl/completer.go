package repl

import (
	"strings"

	"github.com/yndnr/mudb-go/internal/core/command"
)

// builtins are handled by the REPL without a server round trip.
var builtins = []string{"help", "history", "exit", "quit"}

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer over the server commands and the REPL
// built-ins.
func NewCompleter() *Completer {
	commands := make([]string, 0, len(command.Names)+len(builtins))
	commands = append(commands, command.Names...)
	commands = append(commands, builtins...)
	return &Completer{commands: commands}
}

// Complete returns the commands starting with prefix, ignoring case.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(strings.ToUpper(cmd), prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
