package resp

import (
	"bufio"
	"strconv"
	"strings"
)

var nullBulk = []byte("$-1\r\n")

// lineSanitizer keeps CR/LF out of single-line values so that error text built
// from client input cannot break framing.
var lineSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

// Encode serializes v. A nil Value encodes as a null bulk string.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the encoding of v to dst and returns the extended buffer.
func Append(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case SimpleString:
		return appendLine(dst, '+', string(v))
	case SimpleError:
		return appendLine(dst, '-', string(v))
	case Integer:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(v), 10)
		return append(dst, crlf...)
	case BulkString:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v)), 10)
		dst = append(dst, crlf...)
		dst = append(dst, v...)
		return append(dst, crlf...)
	case Array:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v)), 10)
		dst = append(dst, crlf...)
		for _, elem := range v {
			dst = Append(dst, elem)
		}
		return dst
	case NullBulkString, nil:
		return append(dst, nullBulk...)
	default:
		panic("resp: unknown value type")
	}
}

func appendLine(dst []byte, prefix byte, text string) []byte {
	if strings.ContainsAny(text, "\r\n") {
		text = lineSanitizer.Replace(text)
	}
	dst = append(dst, prefix)
	dst = append(dst, text...)
	return append(dst, crlf...)
}

// Write encodes v into w. The caller is responsible for flushing.
func Write(w *bufio.Writer, v Value) error {
	var scratch [64]byte
	_, err := w.Write(Append(scratch[:0], v))
	return err
}
