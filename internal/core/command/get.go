package command

import "github.com/yndnr/mudb-go/pkg/resp"

// Get returns the string stored under Key.
type Get struct {
	Key string
}

func parseGet(args []string) (Command, error) {
	if err := checkArity("get", args, 1); err != nil {
		return nil, err
	}
	return Get{Key: args[0]}, nil
}

// Name implements Command.
func (Get) Name() string { return "GET" }

// Apply implements Command.
func (c Get) Apply(store Store) resp.Value {
	value, found, err := store.Get(c.Key)
	if err != nil {
		return ErrorReply(err)
	}
	if !found {
		return resp.Null
	}
	return resp.BulkString(value)
}

// Frame implements Command.
func (c Get) Frame() resp.Array {
	return resp.BulkStrings("GET", c.Key)
}

func (Get) command() {}
