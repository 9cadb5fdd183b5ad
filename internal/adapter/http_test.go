// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// staticTokenSource отдаёт фиксированный токен, как это делает SessionManager
type staticTokenSource struct {
	token string
}

func (s *staticTokenSource) Token() string { return s.token }

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, token string) ServerAdapter {
	t.Helper()

	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPServerAdapter(adapterCfg, &staticTokenSource{token: token}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, &staticTokenSource{}, logger.Nop())
	require.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "pw", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.User{ID: "u1", Username: "alice", Name: "Alice"},
			Token: "tok-abc",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	auth, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", auth.Token)
	assert.Equal(t, "u1", auth.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid username or password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid username or password")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	err := a.Register(context.Background(), models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Username: "alice", Password: "password123",
	})

	require.NoError(t, err)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Token injection ──────────────────────────────────────────────────────────

func TestAuthorizationHeader_AttachedFresh(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	source := &staticTokenSource{token: "tok-1"}
	adapterCfg := config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}
	a, err := NewHTTPServerAdapter(adapterCfg, source, logger.Nop())
	require.NoError(t, err)

	_, err = a.MyChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	// Токен сменился после логина — следующий запрос должен нести новый
	source.token = "tok-2"
	_, err = a.MyChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", gotAuth)
}

func TestAuthorizationHeader_OmittedWhenUnauthenticated(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.AvailableUsers(context.Background())

	require.NoError(t, err)
	assert.False(t, hasAuth, "no credential must mean no Authorization header at all")
}

// ── Chats ────────────────────────────────────────────────────────────────────

func TestMyChats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c1","name":"devs","isGroupChat":true},{"id":"c2","isGroupChat":false}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	chats, err := a.MyChats(context.Background())

	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "c1", chats[0].ID)
	assert.True(t, chats[0].IsGroupChat)
	assert.False(t, chats[1].IsGroupChat)
}

func TestCreateDirectChat_PathContainsReceiver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/u42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c9","isGroupChat":false}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	chat, err := a.CreateDirectChat(context.Background(), "u42")

	require.NoError(t, err)
	assert.Equal(t, "c9", chat.ID)
}

func TestCreateGroupChat_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)

		var req models.CreateGroupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "devs", req.Name)
		assert.Equal(t, []string{"u1", "u2"}, req.Participants)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g1","name":"devs","isGroupChat":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	chat, err := a.CreateGroupChat(context.Background(), models.CreateGroupRequest{
		Name: "devs", Participants: []string{"u1", "u2"},
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", chat.ID)
}

func TestGroupInfo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat-group/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"group not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	_, err := a.GroupInfo(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenameGroup_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/group/g1", r.URL.Path)

		var req models.RenameGroupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new-name", req.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g1","name":"new-name","isGroupChat":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	chat, err := a.RenameGroup(context.Background(), "g1", "new-name")

	require.NoError(t, err)
	assert.Equal(t, "new-name", chat.Name)
}

func TestParticipantRoutes(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	ctx := context.Background()

	require.NoError(t, a.AddParticipant(ctx, "g1", "u7"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/chat/group/g1/u7", gotPath)

	require.NoError(t, a.RemoveParticipant(ctx, "g1", "u7"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/chat/group/g1/u7", gotPath)

	require.NoError(t, a.DeleteGroup(ctx, "g1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/chat/group/g1", gotPath)

	require.NoError(t, a.DeleteDirectChat(ctx, "c3"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/chat/c3", gotPath)
}

// ── Messages ─────────────────────────────────────────────────────────────────

func TestChatMessages_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"m1","content":"hi","chat":"c1"},{"id":"m2","content":"hello","chat":"c1"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	messages, err := a.ChatMessages(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "hello", messages[1].Content)
}

func TestSendMessage_ContentOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/c1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "hello there", r.FormValue("content"))
		assert.Empty(t, r.MultipartForm.File["attachments"], "no attachments part expected")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m3","content":"hello there","chat":"c1"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	sent, err := a.SendMessage(context.Background(), "c1", models.OutgoingMessage{Content: "hello there"})

	require.NoError(t, err)
	assert.Equal(t, "m3", sent.ID)
}

func TestSendMessage_AttachmentOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, hasContent := r.MultipartForm.Value["content"]
		assert.False(t, hasContent, "empty content must omit the content part entirely")

		files := r.MultipartForm.File["attachments"]
		require.Len(t, files, 1)
		assert.Equal(t, "pic.png", files[0].Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m4","chat":"c1"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	sent, err := a.SendMessage(context.Background(), "c1", models.OutgoingMessage{
		Attachments: []models.AttachmentFile{{Name: "pic.png", Data: []byte{0x89, 'P', 'N', 'G'}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "m4", sent.ID)
}

func TestSendMessage_ContentAndAttachments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "check these out", r.FormValue("content"))
		assert.Len(t, r.MultipartForm.File["attachments"], 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m5","chat":"c1"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	_, err := a.SendMessage(context.Background(), "c1", models.OutgoingMessage{
		Content: "check these out",
		Attachments: []models.AttachmentFile{
			{Name: "a.txt", Data: []byte("first")},
			{Name: "b.txt", Data: []byte("second")},
		},
	})

	require.NoError(t, err)
}

func TestDeleteMessage_Route(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/messages/m9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	require.NoError(t, a.DeleteMessage(context.Background(), "m9"))
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "tok")
			err := a.Logout(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_ServerEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"participants must not be empty"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	_, err := a.CreateGroupChat(context.Background(), models.CreateGroupRequest{Name: "devs"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "participants must not be empty")
}
