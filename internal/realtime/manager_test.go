package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	mock "github.com/MKhiriev/go-chat-messenger/internal/servicemock"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
)

// pushServer — тестовый websocket-сервер, записывающий входящие соединения.
type pushServer struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu     sync.Mutex
	tokens []string
	conns  []*websocket.Conn
	frames []Frame
}

func newPushServer(t *testing.T) *pushServer {
	t.Helper()
	ps := &pushServer{}

	ps.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := ps.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		ps.mu.Lock()
		ps.tokens = append(ps.tokens, r.URL.Query().Get("access_token"))
		ps.conns = append(ps.conns, ws)
		ps.mu.Unlock()

		for {
			var frame Frame
			if err := ws.ReadJSON(&frame); err != nil {
				return
			}
			ps.mu.Lock()
			ps.frames = append(ps.frames, frame)
			ps.mu.Unlock()
		}
	}))
	t.Cleanup(ps.srv.Close)

	return ps
}

func (ps *pushServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ps.srv.URL, "http")
}

func (ps *pushServer) seenTokens() []string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return append([]string(nil), ps.tokens...)
}

func (ps *pushServer) seenEvents() []string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	events := make([]string, 0, len(ps.frames))
	for _, f := range ps.frames {
		events = append(events, f.Event)
	}
	return events
}

// pushFrame шлёт кадр клиенту через последнее принятое соединение.
func (ps *pushServer) pushFrame(t *testing.T, frame Frame) {
	t.Helper()
	ps.mu.Lock()
	defer ps.mu.Unlock()
	require.NotEmpty(t, ps.conns)
	require.NoError(t, ps.conns[len(ps.conns)-1].WriteJSON(frame))
}

// newTestManager строит Manager поверх мока менеджера сессий и возвращает
// захваченный слушатель токена.
func newTestManager(t *testing.T, ctrl *gomock.Controller, endpoint, initialToken string) (*Manager, service.TokenListener) {
	t.Helper()

	sessions := mock.NewMockSessionManager(ctrl)

	var listener service.TokenListener
	sessions.EXPECT().Subscribe(gomock.Any()).DoAndReturn(
		func(l service.TokenListener) func() {
			listener = l
			return func() {}
		},
	)
	sessions.EXPECT().Token().Return(initialToken)

	m := NewManager(endpoint, sessions, logger.Nop())
	t.Cleanup(m.Close)

	require.NotNil(t, listener)
	return m, listener
}

// ── Подключение ──────────────────────────────────────────────────────────────

func TestManager_ConnectsWithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "token-1", m.BoundToken())
	assert.NotNil(t, m.Connection())
	assert.Equal(t, []string{"token-1"}, ps.seenTokens())

	// после подключения уходит приветствие как проверка живости
	require.Eventually(t, func() bool {
		events := ps.seenEvents()
		return len(events) > 0 && events[0] == EventGreeting
	}, 3*time.Second, 10*time.Millisecond)
}

func TestManager_NoTokenNoConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "")

	assert.Equal(t, StateDisconnected, m.State())
	assert.Nil(t, m.Connection())
	assert.Empty(t, m.BoundToken())
	assert.Empty(t, ps.seenTokens())
}

func TestManager_TokenChangeRebinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, listener := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)
	first := m.Connection()

	listener("token-2")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected && m.Connection() != first
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "token-2", m.BoundToken())
	assert.Equal(t, []string{"token-1", "token-2"}, ps.seenTokens())
}

func TestManager_LogoutTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, listener := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	listener("")

	require.Eventually(t, func() bool {
		return m.State() == StateDisconnected && m.Connection() == nil
	}, 3*time.Second, 10*time.Millisecond)
	assert.Empty(t, m.BoundToken())
}

func TestManager_DialFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// адрес без слушателя: подключение невозможно
	m, _ := newTestManager(t, ctrl, "ws://127.0.0.1:1/push", "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateFailed
	}, 3*time.Second, 10*time.Millisecond)
	assert.Nil(t, m.Connection())
	assert.Equal(t, "token-1", m.BoundToken())
}

func TestManager_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	m.Close()

	assert.Equal(t, StateDisconnected, m.State())
	assert.Nil(t, m.Connection())
	assert.Empty(t, m.BoundToken())
}

func TestManager_SubscribeSurvivesRebind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, listener := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	received := make(chan json.RawMessage, 2)
	cancel := m.Subscribe(EventMessageReceived, func(payload json.RawMessage) {
		received <- payload
	})
	defer cancel()

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)
	first := m.Connection()

	// подписка должна пережить пересоздание соединения
	listener("token-2")
	require.Eventually(t, func() bool {
		return m.State() == StateConnected && m.Connection() != first
	}, 3*time.Second, 10*time.Millisecond)

	ps.pushFrame(t, Frame{Event: EventMessageReceived, Payload: json.RawMessage(`{"id":"m-7"}`)})

	select {
	case payload := <-received:
		assert.JSONEq(t, `{"id":"m-7"}`, string(payload))
	case <-time.After(3 * time.Second):
		t.Fatal("push frame not delivered after rebind")
	}
}

// ── Conn ─────────────────────────────────────────────────────────────────────

func TestConn_SubscribeReceivesFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	received := make(chan json.RawMessage, 1)
	cancel := m.Connection().Subscribe(EventMessageReceived, func(payload json.RawMessage) {
		received <- payload
	})
	defer cancel()

	ps.pushFrame(t, Frame{Event: EventMessageReceived, Payload: json.RawMessage(`{"id":"m-1"}`)})

	select {
	case payload := <-received:
		assert.JSONEq(t, `{"id":"m-1"}`, string(payload))
	case <-time.After(3 * time.Second):
		t.Fatal("push frame not delivered")
	}
}

func TestConn_SubscribeCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	conn := m.Connection()
	received := make(chan json.RawMessage, 2)
	cancel := conn.Subscribe(EventMessageReceived, func(payload json.RawMessage) {
		received <- payload
	})
	cancel()

	ps.pushFrame(t, Frame{Event: EventMessageReceived, Payload: json.RawMessage(`{}`)})

	// кадр после отписки не должен дойти
	select {
	case <-received:
		t.Fatal("cancelled handler still invoked")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConn_InvokeAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ps := newPushServer(t)
	m, _ := newTestManager(t, ctrl, ps.wsURL(), "token-1")

	require.Eventually(t, func() bool {
		return m.State() == StateConnected
	}, 3*time.Second, 10*time.Millisecond)

	conn := m.Connection()
	m.Close()

	assert.ErrorIs(t, conn.Invoke("anything", nil), ErrConnClosed)
}
