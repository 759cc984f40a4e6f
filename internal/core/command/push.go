package command

import (
	"github.com/yndnr/mudb-go/internal/core/domain"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// LPush pushes Values onto the head of the list under Key, one at a time,
// so the last value ends up first.
type LPush struct {
	Key    string
	Values []string
}

// RPush appends Values to the tail of the list under Key.
type RPush struct {
	Key    string
	Values []string
}

func parseLPush(args []string) (Command, error) {
	key, values, err := pushArgs("lpush", args)
	if err != nil {
		return nil, err
	}
	return LPush{Key: key, Values: values}, nil
}

func parseRPush(args []string) (Command, error) {
	key, values, err := pushArgs("rpush", args)
	if err != nil {
		return nil, err
	}
	return RPush{Key: key, Values: values}, nil
}

func pushArgs(name string, args []string) (string, []string, error) {
	if len(args) < 2 {
		return "", nil, wrongArity(name)
	}
	return args[0], args[1:], nil
}

func push(store Store, key string, values []string, end domain.End) resp.Value {
	n, err := store.Push(key, values, end)
	if err != nil {
		return ErrorReply(err)
	}
	return resp.Integer(n)
}

func pushFrame(name, key string, values []string) resp.Array {
	parts := make([]string, 0, len(values)+2)
	parts = append(parts, name, key)
	parts = append(parts, values...)
	return resp.BulkStrings(parts...)
}

// Name implements Command.
func (LPush) Name() string { return "LPUSH" }

// Apply implements Command. The reply is the new list length.
func (c LPush) Apply(store Store) resp.Value {
	return push(store, c.Key, c.Values, domain.Head)
}

// Frame implements Command.
func (c LPush) Frame() resp.Array {
	return pushFrame("LPUSH", c.Key, c.Values)
}

func (LPush) command() {}

// Name implements Command.
func (RPush) Name() string { return "RPUSH" }

// Apply implements Command. The reply is the new list length.
func (c RPush) Apply(store Store) resp.Value {
	return push(store, c.Key, c.Values, domain.Tail)
}

// Frame implements Command.
func (c RPush) Frame() resp.Array {
	return pushFrame("RPUSH", c.Key, c.Values)
}

func (RPush) command() {}
