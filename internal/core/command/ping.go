package command

import "github.com/yndnr/mudb-go/pkg/resp"

// Ping replies PONG, or echoes its message.
type Ping struct {
	Message    string
	HasMessage bool
}

func parsePing(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Ping{}, nil
	case 1:
		return Ping{Message: args[0], HasMessage: true}, nil
	default:
		return nil, wrongArity("ping")
	}
}

// Name implements Command.
func (Ping) Name() string { return "PING" }

// Apply implements Command.
func (c Ping) Apply(Store) resp.Value {
	if c.HasMessage {
		return resp.BulkString(c.Message)
	}
	return resp.SimpleString("PONG")
}

// Frame implements Command.
func (c Ping) Frame() resp.Array {
	if c.HasMessage {
		return resp.BulkStrings("PING", c.Message)
	}
	return resp.BulkStrings("PING")
}

func (Ping) command() {}
