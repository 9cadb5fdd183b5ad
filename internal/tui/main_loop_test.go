package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock "github.com/MKhiriev/go-chat-messenger/internal/servicemock"
	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// newTestMainLoop — хелпер для создания mainLoopModel с моками
func newTestMainLoop(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	mainLoopModel,
	*mock.MockSessionManager,
	*mock.MockChatService,
) {
	t.Helper()
	sessions := mock.NewMockSessionManager(ctrl)
	chatSvc := mock.NewMockChatService(ctrl)

	self := &models.User{ID: "u-1", Username: "alice", Name: "Alice"}
	sessions.EXPECT().Session().Return(models.Session{User: self, Token: "tok"})

	services := &service.Services{SessionManager: sessions, ChatService: chatSvc}
	return newMainLoopModel(context.Background(), services), sessions, chatSvc
}

// ── Обработка ошибок ─────────────────────────────────────────────────────────

func TestMainLoop_AuthFailureDropsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model, sessions, _ := newTestMainLoop(t, ctrl)

	// истёкший токен: локальная сессия сбрасывается, программа завершается
	// с выходом обратно на экран логина
	sessions.EXPECT().Invalidate()

	authErr := request.NewError(request.KindAuth, "token expired")
	updated, cmd := model.Update(chatsLoadedMsg{err: authErr})

	result, ok := updated.(mainLoopModel)
	require.True(t, ok)
	assert.True(t, result.logout)
	assert.False(t, result.quitByUser)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_AuthFailureOnSendAlsoDrops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model, sessions, _ := newTestMainLoop(t, ctrl)

	sessions.EXPECT().Invalidate()

	updated, cmd := model.Update(messageSentMsg{err: request.NewError(request.KindAuth, "unauthorized")})

	result, ok := updated.(mainLoopModel)
	require.True(t, ok)
	assert.True(t, result.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_ServerFailureShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model, _, _ := newTestMainLoop(t, ctrl)

	// не-авторизационная ошибка остаётся в оверлее: сессия живёт дальше
	updated, cmd := model.Update(chatsLoadedMsg{err: request.NewError(request.KindServer, "boom")})

	result, ok := updated.(mainLoopModel)
	require.True(t, ok)
	assert.False(t, result.logout)
	assert.NotEmpty(t, result.errMsg)
	assert.Nil(t, cmd)
}
