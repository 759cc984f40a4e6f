package resp

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// MaxHeaderLen bounds a type/length header line ("$<n>\r\n", "*<n>\r\n").
// A longer line without CRLF is rejected instead of buffered forever.
const MaxHeaderLen = 64

var (
	// ErrIncomplete reports that the buffer does not yet hold a whole value.
	// It is not a protocol error: the caller should read more bytes and retry.
	ErrIncomplete = errors.New("resp: incomplete input")

	// ErrProtocol is the parent of every malformed-input error.
	ErrProtocol = errors.New("resp: protocol error")

	ErrInvalidBulkString   = fmt.Errorf("%w: invalid bulk string", ErrProtocol)
	ErrInvalidSimpleString = fmt.Errorf("%w: invalid simple string", ErrProtocol)
	ErrInvalidSimpleError  = fmt.Errorf("%w: invalid simple error", ErrProtocol)
	ErrInvalidInteger      = fmt.Errorf("%w: invalid integer", ErrProtocol)
	ErrInvalidArray        = fmt.Errorf("%w: invalid array", ErrProtocol)
	ErrUnsupportedType     = fmt.Errorf("%w: unsupported type", ErrProtocol)
	ErrLimitExceeded       = fmt.Errorf("%w: limit exceeded", ErrProtocol)
)

var crlf = []byte("\r\n")

// readLine returns the bytes between buf[1] and the first CRLF, and the number
// of bytes up to and including that CRLF. ok is false when no CRLF is buffered.
func readLine(buf []byte) (line []byte, n int, ok bool) {
	i := bytes.Index(buf, crlf)
	if i < 0 {
		return nil, 0, false
	}
	return buf[1:i], i + 2, true
}

// readHeader reads a "<prefix><int>\r\n" line and returns the integer.
func readHeader(buf []byte, kind error) (int, int, error) {
	line, n, ok := readLine(buf)
	if !ok {
		if len(buf) > MaxHeaderLen {
			return 0, 0, fmt.Errorf("%w: header exceeds %d bytes", kind, MaxHeaderLen)
		}
		return 0, 0, ErrIncomplete
	}
	v, err := strconv.Atoi(string(line))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid length %q", kind, line)
	}
	return v, n, nil
}

// ParseArrayLen parses an array header ("*<count>\r\n") at the front of buf.
// It returns the element count and the header size in bytes.
func ParseArrayLen(buf []byte) (count, n int, err error) {
	if len(buf) == 0 {
		return 0, 0, ErrIncomplete
	}
	if buf[0] != '*' {
		return 0, 0, fmt.Errorf("%w: expected '*', got %q", ErrInvalidArray, buf[0])
	}
	count, n, err = readHeader(buf, ErrInvalidArray)
	if err != nil {
		return 0, 0, err
	}
	if count < 0 {
		return 0, 0, fmt.Errorf("%w: negative length %d", ErrInvalidArray, count)
	}
	return count, n, nil
}

// ParseBulkStringLen parses a bulk string header ("$<len>\r\n") at the front
// of buf. It returns the declared payload length and the header size in bytes.
// Null bulk strings are rejected; command frames never carry them.
func ParseBulkStringLen(buf []byte) (length, n int, err error) {
	length, n, err = bulkHeader(buf)
	if err != nil {
		return 0, 0, err
	}
	if length < 0 {
		return 0, 0, fmt.Errorf("%w: negative length %d", ErrInvalidBulkString, length)
	}
	return length, n, nil
}

func bulkHeader(buf []byte) (int, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrIncomplete
	}
	if buf[0] != '$' {
		return 0, 0, fmt.Errorf("%w: expected '$', got %q", ErrInvalidBulkString, buf[0])
	}
	length, n, err := readHeader(buf, ErrInvalidBulkString)
	if err != nil {
		return 0, 0, err
	}
	if length < -1 {
		return 0, 0, fmt.Errorf("%w: negative length %d", ErrInvalidBulkString, length)
	}
	return length, n, nil
}

// ParseBulkString decodes a whole bulk string at the front of buf.
//
// Unlike Parse, a payload that does not fit in buf is an error: callers are
// expected to have checked the declared length first (as FrameDecoder does).
func ParseBulkString(buf []byte) (BulkString, int, error) {
	length, n, err := ParseBulkStringLen(buf)
	if err != nil {
		return "", 0, err
	}
	// Compared without adding to length, which may be near MaxInt.
	if length > len(buf)-n-2 {
		return "", 0, fmt.Errorf("%w: declared length %d exceeds buffered %d bytes", ErrInvalidBulkString, length, len(buf)-n)
	}
	end := n + length
	if buf[end] != '\r' || buf[end+1] != '\n' {
		return "", 0, fmt.Errorf("%w: missing terminator", ErrInvalidBulkString)
	}
	payload := buf[n:end]
	if !utf8.Valid(payload) {
		return "", 0, fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidBulkString)
	}
	return BulkString(payload), end + 2, nil
}

// ParseSimpleString decodes "+<text>\r\n" at the front of buf.
func ParseSimpleString(buf []byte) (SimpleString, int, error) {
	text, n, err := parseLineValue(buf, '+', ErrInvalidSimpleString)
	return SimpleString(text), n, err
}

// ParseSimpleError decodes "-<text>\r\n" at the front of buf.
func ParseSimpleError(buf []byte) (SimpleError, int, error) {
	text, n, err := parseLineValue(buf, '-', ErrInvalidSimpleError)
	return SimpleError(text), n, err
}

// ParseInteger decodes ":<decimal>\r\n" at the front of buf.
func ParseInteger(buf []byte) (Integer, int, error) {
	text, n, err := parseLineValue(buf, ':', ErrInvalidInteger)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidInteger, text)
	}
	return Integer(v), n, nil
}

func parseLineValue(buf []byte, prefix byte, kind error) (string, int, error) {
	if len(buf) == 0 {
		return "", 0, ErrIncomplete
	}
	if buf[0] != prefix {
		return "", 0, fmt.Errorf("%w: expected %q, got %q", kind, prefix, buf[0])
	}
	line, n, ok := readLine(buf)
	if !ok {
		return "", 0, ErrIncomplete
	}
	if !utf8.Valid(line) {
		return "", 0, fmt.Errorf("%w: not valid UTF-8", kind)
	}
	return string(line), n, nil
}

// Parse decodes one value of any type at the front of buf and returns it with
// the number of bytes consumed. ErrIncomplete means buf holds a valid prefix
// of a value; read more and call Parse again with the grown buffer. A bulk
// string declared longer than DefaultMaxBulkLen can never complete and is
// rejected with ErrInvalidBulkString.
func Parse(buf []byte) (Value, int, error) {
	if len(buf) == 0 {
		return nil, 0, ErrIncomplete
	}
	switch buf[0] {
	case '+':
		return wrap(ParseSimpleString(buf))
	case '-':
		return wrap(ParseSimpleError(buf))
	case ':':
		return wrap(ParseInteger(buf))
	case '$':
		length, n, err := bulkHeader(buf)
		if err != nil {
			return nil, 0, err
		}
		if length == -1 {
			return Null, n, nil
		}
		if length > DefaultMaxBulkLen {
			return nil, 0, fmt.Errorf("%w: declared length %d exceeds %d", ErrInvalidBulkString, length, DefaultMaxBulkLen)
		}
		if length > len(buf)-n-2 {
			return nil, 0, ErrIncomplete
		}
		return wrap(ParseBulkString(buf))
	case '*':
		return parseArray(buf)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedType, buf[0])
	}
}

func parseArray(buf []byte) (Value, int, error) {
	count, n, err := ParseArrayLen(buf)
	if err != nil {
		return nil, 0, err
	}
	arr := make(Array, 0, min(count, 64))
	for i := 0; i < count; i++ {
		v, vn, err := Parse(buf[n:])
		if err != nil {
			return nil, 0, err
		}
		arr = append(arr, v)
		n += vn
	}
	return arr, n, nil
}

func wrap[T Value](v T, n int, err error) (Value, int, error) {
	if err != nil {
		return nil, 0, err
	}
	return v, n, nil
}
