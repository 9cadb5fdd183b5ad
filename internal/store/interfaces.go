package store

import (
	"github.com/MKhiriev/go-chat-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the durable local storage for the authenticated session.
// Implementations persist the user profile and the bearer token as a pair:
// at every observation point either both values are present or both are
// absent. Only the session manager writes through this interface.
type SessionStore interface {
	// Load reads the persisted session. A missing, corrupted, or
	// half-present pair is reported as the zero session, never as an error;
	// Load only fails on storage-level faults.
	Load() (models.Session, error)

	// Save atomically persists the user profile and token together.
	Save(session models.Session) error

	// Clear atomically removes both session values. Clearing an empty
	// store is a no-op.
	Clear() error

	// Close releases the underlying database. The store must not be used
	// afterwards.
	Close() error
}
