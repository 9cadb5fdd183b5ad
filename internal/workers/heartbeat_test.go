package workers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	mock "github.com/MKhiriev/go-chat-messenger/internal/servicemock"
	"github.com/MKhiriev/go-chat-messenger/internal/realtime"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
)

// nilSource изображает транспорт без живого соединения.
type nilSource struct{}

func (nilSource) Connection() *realtime.Conn { return nil }

func TestHeartbeatWorker_SkipsWithoutConnection(t *testing.T) {
	w := NewHeartbeatWorker(nilSource{}, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()
}

func TestHeartbeatWorker_StopWithoutStart(t *testing.T) {
	w := NewHeartbeatWorker(nilSource{}, time.Second, logger.Nop())

	// Stop без Start не должен паниковать или блокироваться
	w.Stop()
	w.Stop()
}

func TestHeartbeatWorker_PingsLiveConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu    sync.Mutex
		pings int
	)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ws.SetPingHandler(func(string) error {
			mu.Lock()
			pings++
			mu.Unlock()
			return nil
		})
		for {
			// читаем, чтобы обрабатывались control-кадры
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	sessions := mock.NewMockSessionManager(ctrl)
	sessions.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(service.TokenListener) func() { return func() {} })
	sessions.EXPECT().Token().Return("tok")

	manager := realtime.NewManager("ws"+strings.TrimPrefix(srv.URL, "http"), sessions, logger.Nop())
	defer manager.Close()

	require.Eventually(t, func() bool {
		return manager.Connection() != nil
	}, 3*time.Second, 10*time.Millisecond)

	w := NewHeartbeatWorker(manager, 10*time.Millisecond, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return pings >= 2
	}, 3*time.Second, 10*time.Millisecond)
}
