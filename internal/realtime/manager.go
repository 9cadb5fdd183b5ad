// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
)

// State describes the push channel lifecycle.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "disconnected"
	}
}

const (
	// EventGreeting is invoked once after every successful dial as a
	// liveness check.
	EventGreeting = "greeting"

	// EventMessageReceived carries a models.Message pushed by the server.
	EventMessageReceived = "messageReceived"

	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Manager owns the push connection and binds its lifetime to the session
// token: a new token replaces the connection, the empty token removes it.
// State transitions are driven entirely by token changes, dial results and
// connection drops; callers only observe.
type Manager struct {
	endpoint    string
	dialer      *websocket.Dialer
	logger      *logger.Logger
	unsubscribe func()

	mu         sync.Mutex
	conn       *Conn
	state      State
	boundToken string
	gen        int
	closedFlag bool

	nextSubID   int
	subs        map[int]subscription
	connCancels map[int]func()
}

// greetingPayload identifies this connection to the server. One user may
// hold several live connections (one per device), each with its own ID.
type greetingPayload struct {
	ConnID string `json:"connId"`
}

// subscription is a handler that outlives any single connection: it is
// re-applied to every freshly dialed one.
type subscription struct {
	event   string
	handler func(payload json.RawMessage)
}

// NewManager wires the manager to the session manager's token stream and
// applies the current token immediately, so a restored session connects
// without waiting for the next token change.
func NewManager(socketAddress string, sessions service.SessionManager, log *logger.Logger) *Manager {
	m := &Manager{
		endpoint:    socketAddress,
		dialer:      websocket.DefaultDialer,
		logger:      log,
		state:       StateDisconnected,
		subs:        make(map[int]subscription),
		connCancels: make(map[int]func()),
	}

	m.unsubscribe = sessions.Subscribe(m.onTokenChange)
	if token := sessions.Token(); token != "" {
		m.onTokenChange(token)
	}

	return m
}

// onTokenChange tears down any live connection and, for a non-empty token,
// starts a fresh connect loop bound to it.
func (m *Manager) onTokenChange(token string) {
	m.mu.Lock()
	if m.closedFlag {
		m.mu.Unlock()
		return
	}

	m.gen++
	gen := m.gen
	old := m.conn
	m.conn = nil
	m.boundToken = token
	if token == "" {
		m.state = StateDisconnected
	} else {
		m.state = StateConnecting
	}
	m.mu.Unlock()

	if old != nil {
		old.Close()
	}

	if token != "" {
		go m.run(gen, token)
	}
}

// run dials until it holds a live connection for this token generation,
// then watches it and redials on drop. Backoff doubles from one second up
// to thirty; it resets after every successful dial. The loop exits when a
// newer generation supersedes it.
func (m *Manager) run(gen int, token string) {
	backoff := initialBackoff

	for {
		if m.stale(gen) {
			return
		}

		m.setState(gen, StateConnecting)

		conn, err := m.dial(token)
		if err != nil {
			m.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("dial push channel")
			m.setState(gen, StateFailed)

			time.Sleep(backoff)
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		if err := conn.Invoke(EventGreeting, greetingPayload{ConnID: uuid.NewString()}); err != nil {
			conn.Close()
			m.setState(gen, StateFailed)
			time.Sleep(backoff)
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		m.mu.Lock()
		if m.gen != gen {
			m.mu.Unlock()
			conn.Close()
			return
		}
		m.conn = conn
		m.state = StateConnected
		m.connCancels = make(map[int]func(), len(m.subs))
		for id, sub := range m.subs {
			m.connCancels[id] = conn.Subscribe(sub.event, sub.handler)
		}
		m.mu.Unlock()

		m.logger.Info().Msg("push channel connected")
		backoff = initialBackoff

		<-conn.Done()

		m.mu.Lock()
		if m.gen == gen {
			m.conn = nil
			m.state = StateDisconnected
		}
		m.mu.Unlock()
	}
}

func (m *Manager) dial(token string) (*Conn, error) {
	u, err := url.Parse(m.endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("access_token", token)
	u.RawQuery = q.Encode()

	ws, _, err := m.dialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	return newConn(ws, m.logger), nil
}

func (m *Manager) stale(gen int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen != gen || m.closedFlag
}

func (m *Manager) setState(gen int, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen == gen && !m.closedFlag {
		m.state = state
	}
}

// Subscribe registers a handler for the named push event on every
// connection the manager establishes, current and future: a reconnect does
// not lose the subscription. Returns the cancel function.
func (m *Manager) Subscribe(event string, handler func(payload json.RawMessage)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = subscription{event: event, handler: handler}
	if m.conn != nil {
		m.connCancels[id] = m.conn.Subscribe(event, handler)
	}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		connCancel := m.connCancels[id]
		delete(m.connCancels, id)
		m.mu.Unlock()

		if connCancel != nil {
			connCancel()
		}
	}
}

// Connection returns the live connection, nil unless currently connected.
func (m *Manager) Connection() *Conn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// BoundToken returns the token the connect loop is currently bound to,
// empty when logged out.
func (m *Manager) BoundToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boundToken
}

// Close detaches from the token stream and tears everything down. The
// manager must not be used afterwards.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}

	m.mu.Lock()
	m.closedFlag = true
	m.gen++
	conn := m.conn
	m.conn = nil
	m.state = StateDisconnected
	m.boundToken = ""
	m.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}
