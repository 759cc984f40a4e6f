package resp

import (
	"errors"
	"fmt"
)

// Default protocol limits applied by NewFrameDecoder.
const (
	// DefaultMaxArrayLen limits the number of parts in one command frame.
	DefaultMaxArrayLen = 1024 * 1024

	// DefaultMaxBulkLen limits a single bulk string (512MB, as Redis does).
	DefaultMaxBulkLen = 512 * 1024 * 1024
)

// FrameDecoder reassembles command frames, each an array of bulk strings,
// from a byte stream that may arrive in arbitrary fragments.
//
// A FrameDecoder is owned by a single connection and is not safe for
// concurrent use.
type FrameDecoder struct {
	// MaxArrayLen and MaxBulkLen bound announced sizes; zero disables a limit.
	MaxArrayLen int
	MaxBulkLen  int

	acc *frameBuilder
}

// frameBuilder accumulates the parts of the frame currently being decoded.
type frameBuilder struct {
	expected int
	parts    []Value
}

// NewFrameDecoder returns a decoder with the default limits.
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{
		MaxArrayLen: DefaultMaxArrayLen,
		MaxBulkLen:  DefaultMaxBulkLen,
	}
}

// Decode consumes as much of buf as it can.
//
// It returns the number of bytes consumed, which the caller must drop from
// the front of its buffer before the next call, and the completed frame if
// one was finished. A nil frame with a nil error means more bytes are needed.
// Decode stops after the first completed frame so that pipelined commands are
// handed out one at a time. Any error is a protocol error; the decoder state
// is reset and the stream cannot be resynchronized.
func (d *FrameDecoder) Decode(buf []byte) (frame []Value, n int, err error) {
	frame, n, err = d.decode(buf)
	if err != nil {
		d.acc = nil
	}
	return frame, n, err
}

func (d *FrameDecoder) decode(buf []byte) ([]Value, int, error) {
	consumed := 0

	if d.acc == nil {
		count, hn, err := ParseArrayLen(buf)
		if errors.Is(err, ErrIncomplete) {
			return nil, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		if d.MaxArrayLen > 0 && count > d.MaxArrayLen {
			return nil, 0, fmt.Errorf("%w: array length %d exceeds %d", ErrLimitExceeded, count, d.MaxArrayLen)
		}
		consumed = hn
		if count == 0 {
			return []Value{}, consumed, nil
		}
		d.acc = &frameBuilder{
			expected: count,
			parts:    make([]Value, 0, min(count, 16)),
		}
	}

	for consumed < len(buf) {
		rest := buf[consumed:]

		length, hn, err := ParseBulkStringLen(rest)
		if errors.Is(err, ErrIncomplete) {
			return nil, consumed, nil
		}
		if err != nil {
			return nil, consumed, err
		}
		if d.MaxBulkLen > 0 && length > d.MaxBulkLen {
			return nil, consumed, fmt.Errorf("%w: bulk length %d exceeds %d", ErrLimitExceeded, length, d.MaxBulkLen)
		}
		// Payload plus trailing CRLF must be fully buffered. Compared without
		// adding to length, which may be near MaxInt when limits are disabled.
		if length > len(rest)-hn-2 {
			return nil, consumed, nil
		}

		part, pn, err := ParseBulkString(rest)
		if err != nil {
			return nil, consumed, err
		}
		d.acc.parts = append(d.acc.parts, part)
		consumed += pn

		if len(d.acc.parts) == d.acc.expected {
			frame := d.acc.parts
			d.acc = nil
			return frame, consumed, nil
		}
	}

	return nil, consumed, nil
}

// Pending reports whether a frame is partially decoded.
func (d *FrameDecoder) Pending() bool {
	return d.acc != nil
}

// Reset discards any partially decoded frame.
func (d *FrameDecoder) Reset() {
	d.acc = nil
}
