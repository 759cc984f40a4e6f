// Package resp implements the RESP wire format spoken by muDB.
//
// The package is split into three parts:
//
//   - value.go: the Value sum type (simple string, bulk string, null bulk
//     string, simple error, integer, array)
//   - parse.go: buffer-oriented parsing that reports ErrIncomplete when more
//     bytes are needed instead of blocking on a reader
//   - frame.go: FrameDecoder, a resumable state machine that reassembles
//     command frames (arrays of bulk strings) across partial reads
//
// Encoding is stateless; see Encode, Append and Write.
package resp
