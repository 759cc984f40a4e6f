// Package redisserver serves the key space over RESP on a TCP listener.
//
// Each accepted connection gets its own goroutine. The goroutine reads
// whatever bytes are available, feeds them to a resp.FrameDecoder, and runs
// every completed command frame in arrival order. Replies for one read are
// flushed together, so pipelined clients get one write per batch.
//
// Supported commands:
//   - PING [message]
//   - GET key, SET key value
//   - LPUSH key value [value ...], RPUSH key value [value ...]
//   - LRANGE key start stop
//
// A malformed frame is a protocol error: earlier replies are flushed and the
// connection is closed without a reply. Command and type errors are sent back
// as error replies and the connection stays open.
package redisserver
