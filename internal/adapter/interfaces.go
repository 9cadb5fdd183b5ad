// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the chat server's REST API.
//
// The primary abstractions are [AuthAPI] for the credential lifecycle and
// [ChatAPI] for conversation and message operations; both are implemented by
// the resty-based HTTP adapter returned by [NewHTTPServerAdapter].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_api_mock.go -package=mock

// TokenSource supplies the current bearer token. The adapter reads it fresh
// on every outbound request rather than caching it at construction, so a
// login or logout is visible to the very next call. An empty token means no
// Authorization header is sent at all.
type TokenSource interface {
	Token() string
}

// AuthAPI defines the credential lifecycle operations of the chat server.
type AuthAPI interface {
	// Login exchanges credentials for the authenticated user profile and a
	// bearer token via POST user/login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates a new account via POST user. Registration does not
	// authenticate: the caller is expected to log in afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Logout invalidates the server-side session via POST user/logout.
	Logout(ctx context.Context) error
}

// ChatAPI defines the conversation and message operations of the chat
// server. Every call requires an authenticated session; the token is
// attached at dispatch time from the adapter's [TokenSource].
type ChatAPI interface {
	// AvailableUsers lists users the caller can start a chat with
	// (GET user).
	AvailableUsers(ctx context.Context) ([]models.User, error)

	// MyChats lists the caller's chats (GET chat/user).
	MyChats(ctx context.Context) ([]models.Chat, error)

	// CreateDirectChat opens a one-on-one chat with the given counterpart
	// (POST chat/{receiverId}).
	CreateDirectChat(ctx context.Context, receiverID string) (models.Chat, error)

	// CreateGroupChat creates a named group with the given participants
	// (POST chat).
	CreateGroupChat(ctx context.Context, req models.CreateGroupRequest) (models.Chat, error)

	// GroupInfo fetches a group's metadata (GET chat-group/{chatId}).
	GroupInfo(ctx context.Context, chatID string) (models.Chat, error)

	// RenameGroup changes a group's name (POST chat/group/{chatId}).
	RenameGroup(ctx context.Context, chatID, name string) (models.Chat, error)

	// DeleteGroup removes a group chat (DELETE chat/group/{chatId}).
	DeleteGroup(ctx context.Context, chatID string) error

	// DeleteDirectChat removes a one-on-one chat (DELETE chat/{chatId}).
	DeleteDirectChat(ctx context.Context, chatID string) error

	// AddParticipant adds a user to a group
	// (POST chat/group/{chatId}/{participantId}).
	AddParticipant(ctx context.Context, chatID, participantID string) error

	// RemoveParticipant removes a user from a group
	// (DELETE chat/group/{chatId}/{participantId}).
	RemoveParticipant(ctx context.Context, chatID, participantID string) error

	// ChatMessages fetches a chat's message history (GET messages/{chatId}).
	ChatMessages(ctx context.Context, chatID string) ([]models.Message, error)

	// SendMessage posts a message as multipart form content
	// (POST messages/{chatId}). The content part is omitted entirely when
	// msg.Content is empty; each attachment is appended as a discrete
	// "attachments" part.
	SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage) (models.Message, error)

	// DeleteMessage removes a message by identifier
	// (DELETE messages/{messageId}).
	DeleteMessage(ctx context.Context, messageID string) error
}

// ServerAdapter is the full transport contract the client wires once and
// hands to the service layer.
type ServerAdapter interface {
	AuthAPI
	ChatAPI
}
