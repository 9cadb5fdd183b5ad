// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime maintains the push channel to the chat server: a
// websocket connection bound to the current session token, re-established
// with backoff after drops and torn down the moment the token changes.
package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
)

// Frame is the wire envelope of the push channel: an event name and its
// raw JSON payload.
type Frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var (
	// ErrConnClosed is returned by Invoke after the connection is closed.
	ErrConnClosed = errors.New("realtime: connection closed")

	// ErrSendBufferFull is returned by Invoke when the outbound queue is
	// saturated. The frame is dropped rather than blocking the caller.
	ErrSendBufferFull = errors.New("realtime: send buffer full")
)

const (
	sendQueueSize = 64
	writeTimeout  = 10 * time.Second
)

// Conn wraps a live websocket connection. All outbound frames go through a
// buffered queue consumed by a single writer goroutine; inbound frames are
// decoded by a reader goroutine and fanned out to event subscribers.
type Conn struct {
	ws     *websocket.Conn
	send   chan Frame
	logger *logger.Logger

	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]func(json.RawMessage)

	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}
}

func newConn(ws *websocket.Conn, log *logger.Logger) *Conn {
	c := &Conn{
		ws:       ws,
		send:     make(chan Frame, sendQueueSize),
		logger:   log,
		handlers: make(map[string]map[int]func(json.RawMessage)),
		closed:   make(chan struct{}),
		done:     make(chan struct{}),
	}

	go c.writeLoop()
	go c.readLoop()

	return c
}

// Invoke queues an event frame for sending. It never blocks: a saturated
// queue fails with [ErrSendBufferFull].
func (c *Conn) Invoke(event string, payload any) error {
	frame := Frame{Event: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		frame.Payload = raw
	}

	select {
	case <-c.closed:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- frame:
		return nil
	case <-c.closed:
		return ErrConnClosed
	default:
		return ErrSendBufferFull
	}
}

// Subscribe registers a handler for the named event and returns its cancel
// function. Handlers run on the reader goroutine: they must return quickly
// and hand real work off elsewhere.
func (c *Conn) Subscribe(event string, handler func(payload json.RawMessage)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]func(json.RawMessage))
	}
	c.handlers[event][id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers[event], id)
		c.mu.Unlock()
	}
}

// Ping sends a websocket ping control frame. Control frames may be written
// concurrently with the writer goroutine.
func (c *Conn) Ping() error {
	select {
	case <-c.closed:
		return ErrConnClosed
	default:
	}
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Done is closed when the reader loop exits, i.e. the connection is dead
// for any reason.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close shuts the connection down. Safe to call multiple times.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		if err := c.ws.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("close websocket")
		}
	})
}

func (c *Conn) writeLoop() {
	for {
		select {
		case frame := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteJSON(frame); err != nil {
				c.logger.Warn().Err(err).Str("event", frame.Event).Msg("write push frame")
				c.Close()
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *Conn) readLoop() {
	defer close(c.done)

	for {
		var frame Frame
		if err := c.ws.ReadJSON(&frame); err != nil {
			select {
			case <-c.closed:
			default:
				c.logger.Warn().Err(err).Msg("push channel dropped")
			}
			c.Close()
			return
		}

		c.dispatch(frame)
	}
}

func (c *Conn) dispatch(frame Frame) {
	c.mu.RLock()
	handlers := make([]func(json.RawMessage), 0, len(c.handlers[frame.Event]))
	for _, h := range c.handlers[frame.Event] {
		handlers = append(handlers, h)
	}
	c.mu.RUnlock()

	if len(handlers) == 0 {
		c.logger.Debug().Str("event", frame.Event).Msg("push event with no subscribers")
		return
	}

	for _, handler := range handlers {
		handler(frame.Payload)
	}
}
