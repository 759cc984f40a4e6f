package command

import (
	"strconv"

	"github.com/yndnr/mudb-go/internal/core/domain"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// LRange returns the list elements between Start and Stop, inclusive.
// Negative indexes count from the tail.
type LRange struct {
	Key   string
	Start int64
	Stop  int64
}

func parseLRange(args []string) (Command, error) {
	if err := checkArity("lrange", args, 3); err != nil {
		return nil, err
	}
	start, err := parseIndex(args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseIndex(args[2])
	if err != nil {
		return nil, err
	}
	return LRange{Key: args[0], Start: start, Stop: stop}, nil
}

func parseIndex(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrNotInteger.WithDetails(strconv.Quote(s)).WithCause(err)
	}
	return n, nil
}

// Name implements Command.
func (LRange) Name() string { return "LRANGE" }

// Apply implements Command.
func (c LRange) Apply(store Store) resp.Value {
	values, err := store.Range(c.Key, c.Start, c.Stop)
	if err != nil {
		return ErrorReply(err)
	}
	return resp.BulkStrings(values...)
}

// Frame implements Command.
func (c LRange) Frame() resp.Array {
	return resp.BulkStrings("LRANGE", c.Key,
		strconv.FormatInt(c.Start, 10), strconv.FormatInt(c.Stop, 10))
}

func (LRange) command() {}
