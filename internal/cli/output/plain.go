package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yndnr/mudb-go/pkg/resp"
)

// PlainFormatter renders replies for humans.
type PlainFormatter struct{}

// Format writes v followed by a newline.
func (f *PlainFormatter) Format(w io.Writer, v resp.Value) error {
	var b strings.Builder
	writePlain(&b, v, 0)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writePlain(b *strings.Builder, v resp.Value, indent int) {
	switch v := v.(type) {
	case resp.SimpleString:
		b.WriteString(string(v))
	case resp.SimpleError:
		b.WriteString("(error) ")
		b.WriteString(string(v))
	case resp.Integer:
		fmt.Fprintf(b, "(integer) %d", int64(v))
	case resp.BulkString:
		b.WriteString(strconv.Quote(string(v)))
	case resp.Array:
		writeArray(b, v, indent)
	default:
		b.WriteString("(nil)")
	}
}

// writeArray numbers elements from 1. Nested arrays are indented past the
// parent's number so their rows line up.
func writeArray(b *strings.Builder, arr resp.Array, indent int) {
	if len(arr) == 0 {
		b.WriteString("(empty array)")
		return
	}

	width := len(strconv.Itoa(len(arr)))
	for i, elem := range arr {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", indent))
		}
		num := strconv.Itoa(i + 1)
		b.WriteString(strings.Repeat(" ", width-len(num)))
		b.WriteString(num)
		b.WriteString(") ")
		writePlain(b, elem, indent+width+2)
	}
}
