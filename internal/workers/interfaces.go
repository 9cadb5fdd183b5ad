// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/internal/realtime"
)

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's goroutine and returns immediately; Stop blocks
// until the goroutine has fully exited. Stop must be safe to call when the
// worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ConnectionSource is the slice of the push transport the heartbeat worker
// needs: the current connection, nil when disconnected.
type ConnectionSource interface {
	Connection() *realtime.Conn
}
