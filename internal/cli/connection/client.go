package connection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// ErrNoCommand is returned by DoArgs for an empty argument list.
var ErrNoCommand = errors.New("no command")

const readChunkSize = 4096

// Client is a RESP client bound to one server connection.
type Client struct {
	addr    string
	timeout time.Duration

	mu   sync.Mutex
	conn net.Conn
	bw   *bufio.Writer
	buf  []byte
}

// Dial connects to addr. A positive timeout bounds the dial and every
// request that has no earlier context deadline.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}

	return &Client{
		addr:    addr,
		timeout: timeout,
		conn:    conn,
		bw:      bufio.NewWriter(conn),
	}, nil
}

// Addr returns the server address.
func (c *Client) Addr() string {
	return c.addr
}

// Do sends cmd and returns the server reply. Error replies are returned as
// resp.SimpleError values, not as errors.
func (c *Client) Do(ctx context.Context, cmd command.Command) (resp.Value, error) {
	return c.roundTrip(ctx, cmd.Frame())
}

// DoArgs sends args as a request frame without validating them locally.
func (c *Client) DoArgs(ctx context.Context, args ...string) (resp.Value, error) {
	if len(args) == 0 {
		return nil, ErrNoCommand
	}
	return c.roundTrip(ctx, resp.BulkStrings(args...))
}

// Close closes the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) roundTrip(ctx context.Context, frame resp.Array) (resp.Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.conn.SetDeadline(c.deadline(ctx)); err != nil {
		return nil, err
	}

	if err := resp.Write(c.bw, frame); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	if err := c.bw.Flush(); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	return c.readReply()
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline, ok := ctx.Deadline()
	if c.timeout > 0 {
		if t := time.Now().Add(c.timeout); !ok || t.Before(deadline) {
			return t
		}
	}
	return deadline
}

// readReply parses one reply, reading more bytes while it is incomplete.
// Bytes past the reply stay buffered for the next call.
func (c *Client) readReply() (resp.Value, error) {
	chunk := make([]byte, readChunkSize)
	for {
		if len(c.buf) > 0 {
			v, n, err := resp.Parse(c.buf)
			if err == nil {
				c.buf = c.buf[:copy(c.buf, c.buf[n:])]
				return v, nil
			}
			if !errors.Is(err, resp.ErrIncomplete) {
				return nil, fmt.Errorf("read reply: %w", err)
			}
		}

		n, err := c.conn.Read(chunk)
		c.buf = append(c.buf, chunk[:n]...)
		if err != nil && n == 0 {
			return nil, fmt.Errorf("read reply: %w", err)
		}
	}
}
