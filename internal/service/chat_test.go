package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/mock"
	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// newTestChatSvc — хелпер для создания chatService с моками
func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*chatService, *mock.MockChatAPI) {
	t.Helper()
	mockAPI := mock.NewMockChatAPI(ctrl)
	svc := NewChatService(mockAPI, logger.Nop()).(*chatService)
	return svc, mockAPI
}

// ── Списки ───────────────────────────────────────────────────────────────────

func TestChatService_MyChats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	chats := []models.Chat{{ID: "c-1", Name: "team"}, {ID: "c-2"}}
	mockAPI.EXPECT().MyChats(ctx).Return(chats, nil)

	rec := &loadingRecorder{}
	outcome := svc.MyChats(ctx, rec.record)

	got, ok := outcome.Ok()
	require.True(t, ok)
	assert.Equal(t, chats, got)
	assert.Equal(t, []bool{true, false}, rec.states)
}

func TestChatService_AvailableUsers_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().AvailableUsers(ctx).Return(nil, context.DeadlineExceeded)

	outcome := svc.AvailableUsers(ctx, nil)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindNetwork, failure.Kind)
}

// ── Группы ───────────────────────────────────────────────────────────────────

func TestChatService_CreateGroupChat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateGroupRequest{Name: "team", Participants: []string{"u-2", "u-3"}}
	created := models.Chat{ID: "c-9", Name: "team", IsGroupChat: true}
	mockAPI.EXPECT().CreateGroupChat(ctx, req).Return(created, nil)

	outcome := svc.CreateGroupChat(ctx, req, nil)

	got, ok := outcome.Ok()
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestChatService_CreateGroupChat_NoParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestChatSvc(t, ctrl)

	// пустая группа отклоняется локально: адаптер не должен вызываться
	req := models.CreateGroupRequest{Name: "team"}
	outcome := svc.CreateGroupChat(context.Background(), req, nil)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindValidation, failure.Kind)
}

func TestChatService_RenameGroup_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestChatSvc(t, ctrl)

	outcome := svc.RenameGroup(context.Background(), "c-1", "", nil)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindValidation, failure.Kind)
}

func TestChatService_DeleteGroup_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	// удалять группу может только администратор
	mockAPI.EXPECT().DeleteGroup(ctx, "c-1").Return(adapter.ErrForbidden)

	outcome := svc.DeleteGroup(ctx, "c-1", nil)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindAuth, failure.Kind)
}

func TestChatService_Participants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAPI.EXPECT().AddParticipant(ctx, "c-1", "u-7").Return(nil),
		mockAPI.EXPECT().RemoveParticipant(ctx, "c-1", "u-7").Return(nil),
	)

	_, ok := svc.AddParticipant(ctx, "c-1", "u-7", nil).Ok()
	assert.True(t, ok)
	_, ok = svc.RemoveParticipant(ctx, "c-1", "u-7", nil).Ok()
	assert.True(t, ok)
}

// ── Сообщения ────────────────────────────────────────────────────────────────

func TestChatService_SendMessage_TextOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	msg := models.OutgoingMessage{Content: "hello"}
	sent := models.Message{ID: "m-1", ChatID: "c-1", Content: "hello"}
	mockAPI.EXPECT().SendMessage(ctx, "c-1", msg).Return(sent, nil)

	outcome := svc.SendMessage(ctx, "c-1", msg, nil)

	got, ok := outcome.Ok()
	require.True(t, ok)
	assert.Equal(t, sent, got)
}

func TestChatService_SendMessage_AttachmentOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	msg := models.OutgoingMessage{
		Attachments: []models.AttachmentFile{{Name: "pic.png", Data: []byte{1, 2, 3}}},
	}
	mockAPI.EXPECT().SendMessage(ctx, "c-1", msg).Return(models.Message{ID: "m-2"}, nil)

	outcome := svc.SendMessage(ctx, "c-1", msg, nil)

	_, ok := outcome.Ok()
	assert.True(t, ok)
}

func TestChatService_SendMessage_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestChatSvc(t, ctrl)

	rec := &loadingRecorder{}
	outcome := svc.SendMessage(context.Background(), "c-1", models.OutgoingMessage{}, rec.record)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindValidation, failure.Kind)
	// цикл загрузки проходит даже при локальном отказе
	assert.Equal(t, []bool{true, false}, rec.states)
}

func TestChatService_DeleteMessage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().DeleteMessage(ctx, "m-404").Return(adapter.ErrNotFound)

	outcome := svc.DeleteMessage(ctx, "m-404", nil)

	failure := outcome.Err()
	require.NotNil(t, failure)
	assert.Equal(t, request.KindValidation, failure.Kind)
}

// ── MergeMessages ────────────────────────────────────────────────────────────

func TestMergeMessages_DeduplicatesByID(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	known := []models.Message{
		{ID: "m-1", Content: "first", SentAt: base},
		{ID: "m-2", Content: "second", SentAt: base.Add(time.Minute)},
	}

	// REST-подтверждение и push-эхо одного сообщения: поздняя копия побеждает
	merged := MergeMessages(known, models.Message{ID: "m-2", Content: "second (edited)", SentAt: base.Add(time.Minute)})

	require.Len(t, merged, 2)
	assert.Equal(t, "second (edited)", merged[1].Content)
}

func TestMergeMessages_OrdersBySendTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	merged := MergeMessages(nil,
		models.Message{ID: "m-3", SentAt: base.Add(2 * time.Minute)},
		models.Message{ID: "m-1", SentAt: base},
		models.Message{ID: "m-2", SentAt: base.Add(time.Minute)},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"m-1", "m-2", "m-3"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMergeMessages_EmptyInputs(t *testing.T) {
	assert.Empty(t, MergeMessages(nil))

	known := []models.Message{{ID: "m-1"}}
	assert.Len(t, MergeMessages(known), 1)
}
