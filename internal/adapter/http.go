package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type httpServerAdapter struct {
	client *resty.Client
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// The bearer token is not captured here: tokens is consulted on every
// outbound request, so a login or logout performed after construction takes
// effect immediately. When tokens reports an empty value the Authorization
// header is omitted entirely.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := strings.TrimSpace(tokens.Token()); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return &httpServerAdapter{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── AuthAPI ──────────────────────────────────────────────────────────────────

// Login implements [AuthAPI]. It POSTs the credentials to POST /user/login
// and decodes the returned user profile and bearer token. Returns an error
// if the request fails or the server returns a non-2xx status.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/user/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [AuthAPI]. It POSTs the profile to POST /user. The
// response body carries the created user but the caller is expected to log
// in explicitly, so only the status is inspected.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/user")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [AuthAPI]. It POSTs to POST /user/logout with no body.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── ChatAPI: users and chats ─────────────────────────────────────────────────

// AvailableUsers implements [ChatAPI].
func (h *httpServerAdapter) AvailableUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("available users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode available users response: %w", err)
	}

	return users, nil
}

// MyChats implements [ChatAPI].
func (h *httpServerAdapter) MyChats(ctx context.Context) ([]models.Chat, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/chat/user")
	if err != nil {
		return nil, fmt.Errorf("my chats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var chats []models.Chat
	if err = json.Unmarshal(resp.Body(), &chats); err != nil {
		return nil, fmt.Errorf("decode my chats response: %w", err)
	}

	return chats, nil
}

// CreateDirectChat implements [ChatAPI].
func (h *httpServerAdapter) CreateDirectChat(ctx context.Context, receiverID string) (models.Chat, error) {
	var chat models.Chat

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&chat).
		Post("/chat/" + url.PathEscape(receiverID))
	if err != nil {
		return models.Chat{}, fmt.Errorf("create direct chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// CreateGroupChat implements [ChatAPI].
func (h *httpServerAdapter) CreateGroupChat(ctx context.Context, req models.CreateGroupRequest) (models.Chat, error) {
	var chat models.Chat

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&chat).
		Post("/chat")
	if err != nil {
		return models.Chat{}, fmt.Errorf("create group chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// GroupInfo implements [ChatAPI].
func (h *httpServerAdapter) GroupInfo(ctx context.Context, chatID string) (models.Chat, error) {
	var chat models.Chat

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&chat).
		Get("/chat-group/" + url.PathEscape(chatID))
	if err != nil {
		return models.Chat{}, fmt.Errorf("group info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// RenameGroup implements [ChatAPI].
func (h *httpServerAdapter) RenameGroup(ctx context.Context, chatID, name string) (models.Chat, error) {
	var chat models.Chat

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenameGroupRequest{Name: name}).
		SetResult(&chat).
		Post("/chat/group/" + url.PathEscape(chatID))
	if err != nil {
		return models.Chat{}, fmt.Errorf("rename group request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// DeleteGroup implements [ChatAPI].
func (h *httpServerAdapter) DeleteGroup(ctx context.Context, chatID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/chat/group/" + url.PathEscape(chatID))
	if err != nil {
		return fmt.Errorf("delete group request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteDirectChat implements [ChatAPI].
func (h *httpServerAdapter) DeleteDirectChat(ctx context.Context, chatID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/chat/" + url.PathEscape(chatID))
	if err != nil {
		return fmt.Errorf("delete direct chat request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddParticipant implements [ChatAPI].
func (h *httpServerAdapter) AddParticipant(ctx context.Context, chatID, participantID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/chat/group/" + url.PathEscape(chatID) + "/" + url.PathEscape(participantID))
	if err != nil {
		return fmt.Errorf("add participant request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveParticipant implements [ChatAPI].
func (h *httpServerAdapter) RemoveParticipant(ctx context.Context, chatID, participantID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/chat/group/" + url.PathEscape(chatID) + "/" + url.PathEscape(participantID))
	if err != nil {
		return fmt.Errorf("remove participant request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── ChatAPI: messages ────────────────────────────────────────────────────────

// ChatMessages implements [ChatAPI].
func (h *httpServerAdapter) ChatMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/messages/" + url.PathEscape(chatID))
	if err != nil {
		return nil, fmt.Errorf("chat messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode chat messages response: %w", err)
	}

	return messages, nil
}

// SendMessage implements [ChatAPI]. The message is encoded as multipart form
// content: a "content" part only when msg.Content is non-empty, and one
// "attachments" part per file with its content type sniffed from the data.
func (h *httpServerAdapter) SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage) (models.Message, error) {
	var sent models.Message

	req := h.client.R().
		SetContext(ctx).
		SetResult(&sent)

	if msg.Content != "" {
		req.SetMultipartFormData(map[string]string{"content": msg.Content})
	}
	for _, file := range msg.Attachments {
		contentType := mimetype.Detect(file.Data).String()
		req.SetMultipartField("attachments", file.Name, contentType, bytes.NewReader(file.Data))
	}

	resp, err := req.Post("/messages/" + url.PathEscape(chatID))
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return sent, nil
}

// DeleteMessage implements [ChatAPI].
func (h *httpServerAdapter) DeleteMessage(ctx context.Context, messageID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/messages/" + url.PathEscape(messageID))
	if err != nil {
		return fmt.Errorf("delete message request: %w", err)
	}

	return mapHTTPError(resp)
}
