package command

import (
	"errors"
	"strings"

	"github.com/yndnr/mudb-go/internal/core/domain"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// Store is the key space a command runs against.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Push(key string, values []string, end domain.End) (int, error)
	Range(key string, start, stop int64) ([]string, error)
}

// Command is one parsed request.
type Command interface {
	// Name returns the canonical upper-case command name.
	Name() string

	// Apply executes the command and returns the reply.
	Apply(store Store) resp.Value

	// Frame renders the command as a request frame.
	Frame() resp.Array

	command()
}

// Names lists the supported command names.
var Names = []string{"PING", "GET", "SET", "LPUSH", "RPUSH", "LRANGE"}

type parseFunc func(args []string) (Command, error)

var parsers = map[string]parseFunc{
	"PING":   parsePing,
	"GET":    parseGet,
	"SET":    parseSet,
	"LPUSH":  parseLPush,
	"RPUSH":  parseRPush,
	"LRANGE": parseLRange,
}

// Parse builds a command from a request frame. The first element is the
// command name; every element must be a bulk string.
func Parse(frame []resp.Value) (Command, error) {
	if len(frame) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	parts := make([]string, len(frame))
	for i, v := range frame {
		bs, ok := v.(resp.BulkString)
		if !ok {
			return nil, domain.ErrInvalidArgument.WithDetailsf("expected bulk string at position %d", i)
		}
		parts[i] = string(bs)
	}

	parse, ok := parsers[strings.ToUpper(parts[0])]
	if !ok {
		return nil, domain.ErrUnknownCommand.WithDetails(parts[0])
	}
	return parse(parts[1:])
}

// ErrorReply converts an error into the reply sent to the client.
func ErrorReply(err error) resp.SimpleError {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return resp.SimpleError(de.Error())
	}
	return resp.SimpleError(domain.PrefixErr + " " + err.Error())
}

// IsError reports whether a reply is an error reply.
func IsError(v resp.Value) bool {
	_, ok := v.(resp.SimpleError)
	return ok
}

func wrongArity(name string) error {
	return domain.ErrWrongArity.WithDetailsf("'%s' command", strings.ToLower(name))
}

func checkArity(name string, args []string, n int) error {
	if len(args) != n {
		return wrongArity(name)
	}
	return nil
}
