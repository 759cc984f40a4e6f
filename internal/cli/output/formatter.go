package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/mudb-go/pkg/resp"
)

// Format represents the output format.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter writes one reply.
type Formatter interface {
	Format(w io.Writer, v resp.Value) error
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPlain, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want plain, json or yaml)", s)
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &PlainFormatter{}
	}
}

// ToData converts a reply into plain Go values for document encoders.
// Errors become {"error": text} so that they stay distinguishable from
// strings.
func ToData(v resp.Value) any {
	switch v := v.(type) {
	case resp.SimpleString:
		return string(v)
	case resp.BulkString:
		return string(v)
	case resp.SimpleError:
		return map[string]string{"error": string(v)}
	case resp.Integer:
		return int64(v)
	case resp.Array:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = ToData(elem)
		}
		return out
	default:
		return nil
	}
}
