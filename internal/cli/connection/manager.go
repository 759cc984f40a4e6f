package connection

import (
	"context"
	"sync"
	"time"
)

// Manager owns the CLI's connection to a server.
type Manager struct {
	addr    string
	timeout time.Duration

	mu     sync.Mutex
	client *Client
}

// NewManager creates a manager for addr. Nothing is dialed until Connect.
func NewManager(addr string, timeout time.Duration) *Manager {
	return &Manager{addr: addr, timeout: timeout}
}

// Addr returns the server address.
func (m *Manager) Addr() string {
	return m.addr
}

// Connect returns the current client, dialing the server first if needed.
func (m *Manager) Connect(ctx context.Context) (*Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}
	client, err := Dial(ctx, m.addr, m.timeout)
	if err != nil {
		return nil, err
	}
	m.client = client
	return client, nil
}

// Disconnect closes the current client, if any.
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Close()
	m.client = nil
	return err
}

// Current returns the current client or nil.
func (m *Manager) Current() *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client
}

// IsConnected returns true if a client is open.
func (m *Manager) IsConnected() bool {
	return m.Current() != nil
}
