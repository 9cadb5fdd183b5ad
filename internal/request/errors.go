package request

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
)

// Kind classifies a failed request for callers that branch on failure class
// rather than exact cause.
type Kind string

const (
	// KindNetwork covers transport failures and timeouts: the request may
	// never have reached the server.
	KindNetwork Kind = "network"
	// KindAuth covers rejected or expired credentials (HTTP 401/403).
	KindAuth Kind = "auth"
	// KindValidation covers requests the server (or the local validator)
	// rejected as malformed.
	KindValidation Kind = "validation"
	// KindServer covers server-side failures (HTTP 5xx).
	KindServer Kind = "server"
	// KindUnknown covers everything else, including recovered panics.
	KindUnknown Kind = "unknown"
)

// Error is the normalized failure of one request: a classification and a
// human-readable message, with the underlying cause preserved for
// [errors.Is] matching.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// NewError builds a normalized error directly, for failures that originate
// inside the client (e.g. local validation) rather than from a transport
// error chain.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Normalize maps any underlying failure into an [*Error]. Adapter sentinels
// carry the HTTP classification; validator and context/net errors are
// recognised directly; anything unclassified is KindUnknown.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	var alreadyNormalized *Error
	if errors.As(err, &alreadyNormalized) {
		return alreadyNormalized
	}

	kind := classify(err)
	return &Error{Kind: kind, Message: humanMessage(err), cause: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return KindAuth

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return KindValidation

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return KindServer

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindNetwork
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return KindValidation
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindNetwork
	}

	return KindUnknown
}

// humanMessage extracts the trailing, most specific segment from a chain of
// wrapped "context: cause" messages (e.g. "login request: client
// unauthorized: invalid username or password" -> "invalid username or
// password").
func humanMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 && idx+2 < len(msg) {
		return msg[idx+2:]
	}
	return msg
}
