package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDecoder_SingleFrame(t *testing.T) {
	d := NewFrameDecoder()
	input := []byte("*3\r\n$3\r\nSET\r\n$1\r\nk\r\n$5\r\nvalue\r\n")

	frame, n, err := d.Decode(input)
	require.NoError(t, err)
	assert.Equal(t, len(input), n)
	assert.Equal(t, []Value{BulkString("SET"), BulkString("k"), BulkString("value")}, frame)
	assert.False(t, d.Pending())
}

func TestFrameDecoder_EmptyArray(t *testing.T) {
	d := NewFrameDecoder()

	frame, n, err := d.Decode([]byte("*0\r\n*1\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NotNil(t, frame)
	assert.Empty(t, frame)
	assert.False(t, d.Pending())
}

func TestFrameDecoder_NeedMoreData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		consumed int
		pending  bool
	}{
		{name: "empty", input: "", consumed: 0},
		{name: "partial array header", input: "*2", consumed: 0},
		{name: "header only", input: "*2\r\n", consumed: 4, pending: true},
		{name: "partial bulk header", input: "*2\r\n$4", consumed: 4, pending: true},
		{name: "partial payload", input: "*2\r\n$4\r\nPI", consumed: 4, pending: true},
		{name: "payload without CRLF", input: "*2\r\n$4\r\nPING", consumed: 4, pending: true},
		{name: "one of two parts", input: "*2\r\n$4\r\nPING\r\n$2\r\nh", consumed: 14, pending: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFrameDecoder()
			frame, n, err := d.Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Nil(t, frame)
			assert.Equal(t, tt.consumed, n)
			assert.Equal(t, tt.pending, d.Pending())
		})
	}
}

// feed drives d with chunks the way a connection does: consumed bytes are
// dropped, unconsumed bytes are kept and grown by the next chunk.
func feed(t *testing.T, d *FrameDecoder, chunks ...[]byte) [][]Value {
	t.Helper()
	var (
		frames  [][]Value
		pending []byte
	)
	for _, chunk := range chunks {
		pending = append(pending, chunk...)
		for {
			frame, n, err := d.Decode(pending)
			require.NoError(t, err)
			pending = pending[n:]
			if frame == nil {
				break
			}
			frames = append(frames, frame)
		}
	}
	require.Empty(t, pending, "unconsumed bytes left over")
	return frames
}

func TestFrameDecoder_SplitAtEveryOffset(t *testing.T) {
	encoded := Encode(BulkStrings("RPUSH", "list", "héllo", "", "world"))
	want := []Value(BulkStrings("RPUSH", "list", "héllo", "", "world"))

	for i := 0; i <= len(encoded); i++ {
		d := NewFrameDecoder()
		first := append([]byte(nil), encoded[:i]...)
		second := append([]byte(nil), encoded[i:]...)

		frames := feed(t, d, first, second)
		require.Len(t, frames, 1, "split at %d", i)
		assert.Equal(t, want, frames[0], "split at %d", i)
	}
}

func TestFrameDecoder_ByteAtATime_Pipelined(t *testing.T) {
	var stream []byte
	stream = Append(stream, BulkStrings("PING"))
	stream = Append(stream, BulkStrings("SET", "a", "1"))
	stream = Append(stream, BulkStrings("GET", "a"))

	chunks := make([][]byte, len(stream))
	for i := range stream {
		chunks[i] = stream[i : i+1]
	}

	frames := feed(t, NewFrameDecoder(), chunks...)
	require.Len(t, frames, 3)
	assert.Equal(t, []Value(BulkStrings("PING")), frames[0])
	assert.Equal(t, []Value(BulkStrings("SET", "a", "1")), frames[1])
	assert.Equal(t, []Value(BulkStrings("GET", "a")), frames[2])
}

func TestFrameDecoder_OneFramePerCall(t *testing.T) {
	d := NewFrameDecoder()
	input := append(Encode(BulkStrings("PING")), Encode(BulkStrings("PING", "x"))...)

	frame, n, err := d.Decode(input)
	require.NoError(t, err)
	assert.Equal(t, []Value(BulkStrings("PING")), frame)

	frame, n2, err := d.Decode(input[n:])
	require.NoError(t, err)
	assert.Equal(t, []Value(BulkStrings("PING", "x")), frame)
	assert.Equal(t, len(input), n+n2)
}

func TestFrameDecoder_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not an array", input: "+PING\r\n", wantErr: ErrInvalidArray},
		{name: "inline command", input: "PING\r\n", wantErr: ErrInvalidArray},
		{name: "bad array length", input: "*x\r\n", wantErr: ErrInvalidArray},
		{name: "integer part", input: "*1\r\n:1\r\n", wantErr: ErrInvalidBulkString},
		{name: "null part", input: "*1\r\n$-1\r\n", wantErr: ErrInvalidBulkString},
		{name: "bad terminator", input: "*1\r\n$4\r\nPINGxx", wantErr: ErrInvalidBulkString},
		{name: "invalid UTF-8", input: "*1\r\n$1\r\n\xff\r\n", wantErr: ErrInvalidBulkString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewFrameDecoder()
			frame, _, err := d.Decode([]byte(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrProtocol)
			assert.Nil(t, frame)
			assert.False(t, d.Pending(), "decoder must reset after an error")
		})
	}
}

func TestFrameDecoder_Limits(t *testing.T) {
	d := &FrameDecoder{MaxArrayLen: 2, MaxBulkLen: 4}

	_, _, err := d.Decode([]byte("*3\r\n"))
	require.ErrorIs(t, err, ErrLimitExceeded)

	_, _, err = d.Decode([]byte("*1\r\n$5\r\n"))
	require.ErrorIs(t, err, ErrLimitExceeded)

	frame, _, err := d.Decode([]byte("*1\r\n$4\r\nPING\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []Value(BulkStrings("PING")), frame)
}

func TestFrameDecoder_OversizedBulkLength(t *testing.T) {
	input := []byte("*1\r\n$9223372036854775807\r\nabc\r\n")

	t.Run("default limits", func(t *testing.T) {
		d := NewFrameDecoder()
		var err error
		require.NotPanics(t, func() { _, _, err = d.Decode(input) })
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})

	t.Run("limits disabled", func(t *testing.T) {
		d := &FrameDecoder{}
		var (
			frame []Value
			n     int
			err   error
		)
		require.NotPanics(t, func() { frame, n, err = d.Decode(input) })
		require.NoError(t, err)
		assert.Nil(t, frame)
		assert.Equal(t, len("*1\r\n"), n, "only the array header is consumed")
		assert.True(t, d.Pending())
	})
}

func TestFrameDecoder_Reset(t *testing.T) {
	d := NewFrameDecoder()
	_, _, err := d.Decode([]byte("*2\r\n$4\r\nPING\r\n"))
	require.NoError(t, err)
	require.True(t, d.Pending())

	d.Reset()
	assert.False(t, d.Pending())
}
