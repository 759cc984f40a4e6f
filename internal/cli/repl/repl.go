package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/mudb-go/internal/cli/output"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// Executor sends one command to the server.
type Executor interface {
	DoArgs(ctx context.Context, args ...string) (resp.Value, error)
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput sets the input reader (default: os.Stdin).
func WithInput(r io.Reader) Option {
	return func(repl *REPL) { repl.input = r }
}

// WithOutput sets the output writer (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(repl *REPL) { repl.output = w }
}

// WithHistory sets the history store (default: in memory only).
func WithHistory(h *History) Option {
	return func(repl *REPL) { repl.history = h }
}

// WithPrompt sets the prompt.
func WithPrompt(prompt string) Option {
	return func(repl *REPL) { repl.prompt = prompt }
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	exec      Executor
	formatter output.Formatter
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	prompt    string
}

// New creates a new REPL instance.
func New(exec Executor, formatter output.Formatter, opts ...Option) *REPL {
	r := &REPL{
		exec:      exec,
		formatter: formatter,
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory("", 0),
		prompt:    "mudb> ",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads and executes lines until EOF, exit or quit. It returns an error
// only when the server connection fails.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		fmt.Fprintf(r.output, "warning: load history: %v\n", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			fmt.Fprintf(r.output, "warning: save history: %v\n", err)
		}
	}()

	reader := bufio.NewReader(r.input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		stop, execErr := r.execute(ctx, strings.TrimSpace(line))
		if execErr != nil {
			return execErr
		}
		if stop || errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// execute runs one line. stop is true for exit and quit.
func (r *REPL) execute(ctx context.Context, line string) (stop bool, err error) {
	if line == "" {
		return false, nil
	}

	args, err := SplitArgs(line)
	if err != nil {
		fmt.Fprintf(r.output, "Invalid argument(s): %v\n", err)
		return false, nil
	}
	if len(args) == 0 {
		return false, nil
	}
	r.history.Add(line)

	switch strings.ToLower(args[0]) {
	case "exit", "quit":
		return true, nil
	case "help":
		r.help(args[1:])
		return false, nil
	case "history":
		for i, entry := range r.history.Entries() {
			fmt.Fprintf(r.output, "%4d  %s\n", i+1, entry)
		}
		return false, nil
	}

	reply, err := r.exec.DoArgs(ctx, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", args[0], err)
	}
	return false, r.formatter.Format(r.output, reply)
}

func (r *REPL) help(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	matches := r.completer.Complete(prefix)
	if len(matches) == 0 {
		fmt.Fprintf(r.output, "no command matches %q\n", prefix)
		return
	}
	fmt.Fprintln(r.output, strings.Join(matches, "  "))
}
