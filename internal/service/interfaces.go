package service

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../servicemock/services_mock.go -package=servicemock

// SessionState describes where the session manager is in its lifecycle.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateRestoring
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// TokenListener is notified with the new token value on every session token
// change, including the transition to the empty token on logout. Listeners
// are invoked synchronously; they must not call back into the manager's
// mutating operations.
type TokenListener func(token string)

// SessionManager owns the authenticated identity. It is the only writer of
// the session: every other component reads derived state (current token,
// profile) through it.
type SessionManager interface {
	// Restore reads a persisted session at process start and, when it
	// carries a valid user identifier and token, transitions straight to
	// Authenticated without a network round-trip — an expired token is only
	// discovered on the next failing request. Exactly one restore runs per
	// process lifetime; subsequent calls return the current session.
	Restore() models.Session

	// Login exchanges credentials for a session. On success the user and
	// token are set in memory and in the persistent store together, and
	// token listeners are notified. On failure the session is unchanged.
	Login(ctx context.Context, req models.LoginRequest, onLoading func(bool)) request.Outcome[models.Session]

	// Register creates a new account. Success does not authenticate: the
	// caller is expected to proceed to login.
	Register(ctx context.Context, req models.RegisterRequest, onLoading func(bool)) request.Outcome[struct{}]

	// Logout invalidates the server-side session best-effort and clears
	// the local session unconditionally: whatever the network outcome,
	// memory and store are empty afterwards and listeners observe the
	// empty token.
	Logout(ctx context.Context, onLoading func(bool)) request.Outcome[struct{}]

	// Invalidate drops the local session without a network call. Callers
	// use it when a request fails with an auth-kind error, meaning the
	// server no longer honours the token.
	Invalidate()

	// Session returns the current session snapshot.
	Session() models.Session

	// Token returns the current bearer token, empty when unauthenticated.
	// It implements [adapter.TokenSource].
	Token() string

	// State returns the current lifecycle state.
	State() SessionState

	// Subscribe registers a listener for token changes and returns its
	// unsubscribe function.
	Subscribe(listener TokenListener) (unsubscribe func())
}

// ChatService exposes every conversation and message operation under the
// uniform request contract. Each call drives the supplied loading callback
// through exactly one false→true→false cycle and yields exactly one of
// success/failure.
type ChatService interface {
	AvailableUsers(ctx context.Context, onLoading func(bool)) request.Outcome[[]models.User]
	MyChats(ctx context.Context, onLoading func(bool)) request.Outcome[[]models.Chat]

	CreateDirectChat(ctx context.Context, receiverID string, onLoading func(bool)) request.Outcome[models.Chat]
	CreateGroupChat(ctx context.Context, req models.CreateGroupRequest, onLoading func(bool)) request.Outcome[models.Chat]
	GroupInfo(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[models.Chat]
	RenameGroup(ctx context.Context, chatID, name string, onLoading func(bool)) request.Outcome[models.Chat]
	DeleteGroup(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[struct{}]
	DeleteDirectChat(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[struct{}]
	AddParticipant(ctx context.Context, chatID, participantID string, onLoading func(bool)) request.Outcome[struct{}]
	RemoveParticipant(ctx context.Context, chatID, participantID string, onLoading func(bool)) request.Outcome[struct{}]

	ChatMessages(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[[]models.Message]
	SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage, onLoading func(bool)) request.Outcome[models.Message]
	DeleteMessage(ctx context.Context, messageID string, onLoading func(bool)) request.Outcome[struct{}]
}
