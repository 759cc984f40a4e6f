package benchmark

import (
	"strings"
	"testing"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// BenchmarkFrameDecode benchmarks decoding one command frame.
func BenchmarkFrameDecode(b *testing.B) {
	push := []string{"RPUSH", "list"}
	for i := 0; i < 100; i++ {
		push = append(push, "item")
	}

	frames := map[string]resp.Array{
		"ping":      resp.BulkStrings("PING"),
		"set_small": resp.BulkStrings("SET", "key", "value"),
		"set_4KB":   resp.BulkStrings("SET", "key", strings.Repeat("x", 4096)),
		"rpush_100": resp.BulkStrings(push...),
	}

	for name, frame := range frames {
		b.Run(name, func(b *testing.B) {
			buf := resp.Encode(frame)
			dec := resp.NewFrameDecoder()

			b.SetBytes(int64(len(buf)))
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, _, err := dec.Decode(buf); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkFrameDecodePipelined benchmarks draining a buffer of pipelined
// frames, as a connection does after a large read.
func BenchmarkFrameDecodePipelined(b *testing.B) {
	var buf []byte
	for i := 0; i < 100; i++ {
		buf = resp.Append(buf, resp.BulkStrings("GET", "key"))
	}
	dec := resp.NewFrameDecoder()

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		off := 0
		for off < len(buf) {
			_, n, err := dec.Decode(buf[off:])
			if err != nil {
				b.Fatalf("Decode failed: %v", err)
			}
			off += n
		}
	}
}

// BenchmarkEncodeReply benchmarks encoding typical replies.
func BenchmarkEncodeReply(b *testing.B) {
	items := make([]string, 100)
	for i := range items {
		items[i] = "item"
	}

	replies := map[string]resp.Value{
		"pong":      resp.SimpleString("PONG"),
		"integer":   resp.Integer(12345),
		"bulk":      resp.BulkString("value"),
		"null":      resp.Null,
		"array_100": resp.BulkStrings(items...),
	}

	for name, reply := range replies {
		b.Run(name, func(b *testing.B) {
			dst := make([]byte, 0, 4096)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				dst = resp.Append(dst[:0], reply)
			}
		})
	}
}

// BenchmarkCommandParse benchmarks turning a decoded frame into a command.
func BenchmarkCommandParse(b *testing.B) {
	frame := resp.BulkStrings("LRANGE", "list", "0", "-1")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := command.Parse(frame); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
