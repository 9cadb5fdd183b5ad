// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type chatService struct {
	api      adapter.ChatAPI
	validate *validator.Validate
	logger   *logger.Logger
}

// NewChatService wraps the transport's chat operations in the uniform
// request contract.
func NewChatService(api adapter.ChatAPI, log *logger.Logger) ChatService {
	return &chatService{
		api:      api,
		validate: validator.New(),
		logger:   log,
	}
}

// AvailableUsers implements [ChatService].
func (s *chatService) AvailableUsers(ctx context.Context, onLoading func(bool)) request.Outcome[[]models.User] {
	return request.Execute(ctx, s.api.AvailableUsers, onLoading)
}

// MyChats implements [ChatService].
func (s *chatService) MyChats(ctx context.Context, onLoading func(bool)) request.Outcome[[]models.Chat] {
	return request.Execute(ctx, s.api.MyChats, onLoading)
}

// CreateDirectChat implements [ChatService].
func (s *chatService) CreateDirectChat(ctx context.Context, receiverID string, onLoading func(bool)) request.Outcome[models.Chat] {
	return request.Execute(ctx, func(ctx context.Context) (models.Chat, error) {
		return s.api.CreateDirectChat(ctx, receiverID)
	}, onLoading)
}

// CreateGroupChat implements [ChatService]. The group request is validated
// locally before the round-trip: a group needs a name and at least one
// participant besides the creator.
func (s *chatService) CreateGroupChat(ctx context.Context, req models.CreateGroupRequest, onLoading func(bool)) request.Outcome[models.Chat] {
	return request.Execute(ctx, func(ctx context.Context) (models.Chat, error) {
		if err := s.validate.Struct(req); err != nil {
			return models.Chat{}, err
		}
		return s.api.CreateGroupChat(ctx, req)
	}, onLoading)
}

// GroupInfo implements [ChatService].
func (s *chatService) GroupInfo(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[models.Chat] {
	return request.Execute(ctx, func(ctx context.Context) (models.Chat, error) {
		return s.api.GroupInfo(ctx, chatID)
	}, onLoading)
}

// RenameGroup implements [ChatService].
func (s *chatService) RenameGroup(ctx context.Context, chatID, name string, onLoading func(bool)) request.Outcome[models.Chat] {
	return request.Execute(ctx, func(ctx context.Context) (models.Chat, error) {
		if err := s.validate.Struct(models.RenameGroupRequest{Name: name}); err != nil {
			return models.Chat{}, err
		}
		return s.api.RenameGroup(ctx, chatID, name)
	}, onLoading)
}

// DeleteGroup implements [ChatService].
func (s *chatService) DeleteGroup(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteGroup(ctx, chatID)
	}, onLoading)
}

// DeleteDirectChat implements [ChatService].
func (s *chatService) DeleteDirectChat(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteDirectChat(ctx, chatID)
	}, onLoading)
}

// AddParticipant implements [ChatService].
func (s *chatService) AddParticipant(ctx context.Context, chatID, participantID string, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.AddParticipant(ctx, chatID, participantID)
	}, onLoading)
}

// RemoveParticipant implements [ChatService].
func (s *chatService) RemoveParticipant(ctx context.Context, chatID, participantID string, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.RemoveParticipant(ctx, chatID, participantID)
	}, onLoading)
}

// ChatMessages implements [ChatService].
func (s *chatService) ChatMessages(ctx context.Context, chatID string, onLoading func(bool)) request.Outcome[[]models.Message] {
	return request.Execute(ctx, func(ctx context.Context) ([]models.Message, error) {
		return s.api.ChatMessages(ctx, chatID)
	}, onLoading)
}

// SendMessage implements [ChatService]. A message with neither text nor
// attachments fails locally with [ErrEmptyMessage].
func (s *chatService) SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage, onLoading func(bool)) request.Outcome[models.Message] {
	return request.Execute(ctx, func(ctx context.Context) (models.Message, error) {
		if msg.Content == "" && len(msg.Attachments) == 0 {
			return models.Message{}, ErrEmptyMessage
		}
		return s.api.SendMessage(ctx, chatID, msg)
	}, onLoading)
}

// DeleteMessage implements [ChatService].
func (s *chatService) DeleteMessage(ctx context.Context, messageID string, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteMessage(ctx, messageID)
	}, onLoading)
}

// MergeMessages folds incoming into the known message list, de-duplicating
// by message ID. The REST acknowledgment of a send and the echoed push
// notification for the same message may arrive in either order; the later
// copy wins so push-side edits are not lost. The result is ordered by send
// time, identifiers breaking ties for a stable display order.
func MergeMessages(known []models.Message, incoming ...models.Message) []models.Message {
	merged := lo.KeyBy(known, func(m models.Message) string { return m.ID })
	for _, m := range incoming {
		merged[m.ID] = m
	}

	result := lo.Values(merged)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].SentAt.Equal(result[j].SentAt) {
			return result[i].SentAt.Before(result[j].SentAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
