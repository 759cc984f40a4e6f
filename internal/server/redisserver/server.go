package redisserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yndnr/mudb-go/internal/core/command"
	"github.com/yndnr/mudb-go/internal/telemetry/logger"
	"github.com/yndnr/mudb-go/internal/telemetry/metric"
	"github.com/yndnr/mudb-go/pkg/resp"
)

// ErrNotListening is returned by Serve when Listen has not succeeded.
var ErrNotListening = errors.New("redisserver: not listening")

// Config holds the RESP server configuration.
type Config struct {
	// Addr is the TCP address to bind.
	Addr string
	// IdleTimeout closes a connection that sends nothing for this long.
	// Zero disables it.
	IdleTimeout time.Duration
	// WriteTimeout bounds one flush of replies. Zero disables it.
	WriteTimeout time.Duration
	// MaxBulkLen and MaxArrayLen bound announced frame sizes.
	MaxBulkLen  int
	MaxArrayLen int
	// CommandsPerSecond is the sustained command rate per client IP.
	// Zero disables rate limiting.
	CommandsPerSecond int
	// Burst is the bucket size for rate limiting (default: CommandsPerSecond).
	Burst int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:6380",
		WriteTimeout: 30 * time.Second,
		MaxBulkLen:   resp.DefaultMaxBulkLen,
		MaxArrayLen:  resp.DefaultMaxArrayLen,
	}
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics registry. Without it nothing is recorded.
func WithMetrics(m *metric.Registry) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// Server accepts RESP clients and runs their commands against a store.
type Server struct {
	cfg      *Config
	store    command.Store
	logger   logger.Logger
	metrics  *metric.Registry
	limiters *limiterRegistry

	ln      net.Listener
	running atomic.Bool
	wg      sync.WaitGroup

	mu    sync.Mutex
	conns map[*conn]struct{}
}

// New creates a server for store. The store is shared by all connections.
func New(cfg *Config, store command.Store, opts ...Option) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := &Server{
		cfg:      cfg,
		store:    store,
		logger:   logger.Default(),
		limiters: newLimiterRegistry(cfg.CommandsPerSecond, cfg.Burst),
		conns:    make(map[*conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Ready reports whether the server is accepting connections.
func (s *Server) Ready() bool {
	return s.running.Load()
}

// Serve accepts connections until ctx is done or Shutdown is called, in
// which case it returns nil. Any other accept failure is returned.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return ErrNotListening
	}

	s.running.Store(true)
	defer s.running.Store(false)

	stop := context.AfterFunc(ctx, func() {
		s.running.Store(false)
		_ = s.ln.Close()
	})
	defer stop()

	s.logger.Info("redis server listening", "addr", s.ln.Addr().String())
	return s.acceptLoop(ctx)
}

// ListenAndServe calls Listen and then Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Shutdown closes the listener and every open connection, then waits for
// connection goroutines to exit or ctx to be done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.running.Store(false)

	var firstErr error
	if s.ln != nil {
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			firstErr = err
		}
	}

	s.mu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return firstErr
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		nc, err := s.ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return fmt.Errorf("accept: %w", err)
		}

		if !s.handle(ctx, nc) {
			return nil
		}
	}
}

// handle starts serving nc. It returns false, after closing nc, when the
// server is shutting down.
func (s *Server) handle(ctx context.Context, nc net.Conn) bool {
	c := s.newConn(ctx, nc)
	if !s.track(c) {
		_ = c.Close()
		return false
	}

	// Acquired only once tracked; serveConn releases it.
	c.limiter = s.limiters.acquire(c.ip)

	go func() {
		defer s.wg.Done()
		defer s.untrack(c)
		s.serveConn(c)
	}()
	return true
}

// track registers c and counts it in wg unless the server is shutting down.
// Both happen under mu so that Shutdown, which clears running before taking
// mu, never waits on wg while a new connection is being added.
func (s *Server) track(c *conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return false
	}
	s.conns[c] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(c *conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
}

// activeConns returns the number of open connections.
func (s *Server) activeConns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
