package command

import "github.com/yndnr/mudb-go/pkg/resp"

// Set stores Value under Key.
type Set struct {
	Key   string
	Value string
}

func parseSet(args []string) (Command, error) {
	if err := checkArity("set", args, 2); err != nil {
		return nil, err
	}
	return Set{Key: args[0], Value: args[1]}, nil
}

// Name implements Command.
func (Set) Name() string { return "SET" }

// Apply implements Command. Success is the bulk string "OK".
func (c Set) Apply(store Store) resp.Value {
	if err := store.Set(c.Key, c.Value); err != nil {
		return ErrorReply(err)
	}
	return resp.BulkString("OK")
}

// Frame implements Command.
func (c Set) Frame() resp.Array {
	return resp.BulkStrings("SET", c.Key, c.Value)
}

func (Set) command() {}
