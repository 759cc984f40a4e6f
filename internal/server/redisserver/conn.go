package redisserver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/internal/core/domain"
	"github.com/yndnr/mudb-go/internal/telemetry/logger"
	"github.com/yndnr/mudb-go/internal/telemetry/metric"
	"github.com/yndnr/mudb-go/pkg/resp"
)

const readBufferSize = 4096

// unknownCommand labels frames whose name is not a supported command, so
// client input cannot grow metric cardinality.
const unknownCommand = "unknown"

// conn is a single client connection.
type conn struct {
	id      string
	ip      string
	netConn net.Conn
	dec     *resp.FrameDecoder
	bw      *bufio.Writer
	limiter *rate.Limiter
	log     logger.Logger

	closed atomic.Bool
}

func (s *Server) newConn(ctx context.Context, nc net.Conn) *conn {
	id := ulid.Make().String()

	ip := nc.RemoteAddr().String()
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	dec := resp.NewFrameDecoder()
	dec.MaxBulkLen = s.cfg.MaxBulkLen
	dec.MaxArrayLen = s.cfg.MaxArrayLen

	ctx = logger.WithConnID(logger.WithLogger(ctx, s.logger), id)

	return &conn{
		id:      id,
		ip:      ip,
		netConn: nc,
		dec:     dec,
		bw:      bufio.NewWriter(nc),
		log:     logger.L(ctx).With("remote", nc.RemoteAddr().String()),
	}
}

// Close closes the underlying connection once.
func (c *conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.netConn.Close()
}

func (s *Server) serveConn(c *conn) {
	defer s.limiters.release(c.ip)
	defer c.Close()

	s.metrics.ConnOpened()
	defer s.metrics.ConnClosed()
	c.log.Debug("connection opened")

	buf := make([]byte, readBufferSize)
	var pending []byte

	for {
		if err := s.setReadDeadline(c); err != nil {
			return
		}

		n, readErr := c.netConn.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)

			var protoErr error
			pending, protoErr = s.process(c, pending)

			// Replies to frames before a malformed one are still delivered.
			if err := s.flush(c); err != nil {
				c.log.Debug("write failed", "error", err)
				return
			}
			if protoErr != nil {
				s.metrics.ProtocolError()
				c.log.Warn("protocol error, closing connection", "error", protoErr)
				return
			}
		}

		if readErr != nil {
			s.logReadError(c, readErr)
			return
		}
	}
}

// process runs every complete frame in pending and returns the unconsumed
// tail, moved to the front of the buffer.
func (s *Server) process(c *conn, pending []byte) ([]byte, error) {
	off := 0
	var protoErr error
	for {
		frame, n, err := c.dec.Decode(pending[off:])
		off += n
		if err != nil {
			protoErr = err
			break
		}
		if frame == nil {
			break
		}
		// Write errors stick in the bufio.Writer and surface on flush.
		_ = resp.Write(c.bw, s.dispatch(c, frame))
	}
	rest := copy(pending, pending[off:])
	return pending[:rest], protoErr
}

// dispatch runs one frame and returns its reply.
func (s *Server) dispatch(c *conn, frame []resp.Value) resp.Value {
	start := time.Now()
	label := commandLabel(frame)

	if c.limiter != nil && !c.limiter.Allow() {
		s.metrics.ObserveCommand(label, metric.StatusRateLimited, time.Since(start))
		c.log.Debug("command rate limited", "command", label)
		return command.ErrorReply(domain.ErrRateLimited)
	}

	var reply resp.Value
	cmd, err := command.Parse(frame)
	if err != nil {
		c.log.Debug("command rejected", "command", label, "code", domain.GetErrorCode(err))
		reply = command.ErrorReply(err)
	} else {
		reply = cmd.Apply(s.store)
	}

	status := metric.StatusOK
	if command.IsError(reply) {
		status = metric.StatusError
	}
	s.metrics.ObserveCommand(label, status, time.Since(start))
	c.log.Debug("command", "command", label, "args", frameArgs(frame), "status", status)

	return reply
}

func (s *Server) setReadDeadline(c *conn) error {
	var deadline time.Time
	if s.cfg.IdleTimeout > 0 {
		deadline = time.Now().Add(s.cfg.IdleTimeout)
	}
	return c.netConn.SetReadDeadline(deadline)
}

func (s *Server) flush(c *conn) error {
	if c.bw.Buffered() == 0 {
		return nil
	}
	var deadline time.Time
	if s.cfg.WriteTimeout > 0 {
		deadline = time.Now().Add(s.cfg.WriteTimeout)
	}
	if err := c.netConn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.bw.Flush()
}

func (s *Server) logReadError(c *conn, err error) {
	var netErr net.Error
	switch {
	case errors.Is(err, io.EOF):
		c.log.Debug("connection closed by client")
	case errors.Is(err, net.ErrClosed):
		c.log.Debug("connection closed")
	case errors.As(err, &netErr) && netErr.Timeout():
		c.log.Debug("connection idle timeout")
	default:
		c.log.Debug("connection read error", "error", err)
	}
}

// commandLabel returns the upper-case command name for supported commands
// and "unknown" otherwise.
func commandLabel(frame []resp.Value) string {
	if len(frame) == 0 {
		return unknownCommand
	}
	name, ok := frame[0].(resp.BulkString)
	if !ok {
		return unknownCommand
	}
	upper := strings.ToUpper(string(name))
	if !slices.Contains(command.Names, upper) {
		return unknownCommand
	}
	return upper
}

// frameArgs renders a frame for logging only when the record is emitted.
type frameArgs []resp.Value

// LogValue implements slog.LogValuer.
func (f frameArgs) LogValue() slog.Value {
	var b strings.Builder
	for i, v := range f {
		if i > 0 {
			b.WriteByte(' ')
		}
		if bs, ok := v.(resp.BulkString); ok {
			b.WriteString(string(bs))
		}
	}
	return slog.StringValue(b.String())
}
