package service

import (
	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
)

// Services bundles the client's feature services behind one constructor so
// the application wires them in a single call.
type Services struct {
	SessionManager SessionManager
	ChatService    ChatService
}

func NewServices(localStore store.SessionStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) *Services {
	return &Services{
		SessionManager: NewSessionManager(localStore, serverAdapter, log),
		ChatService:    NewChatService(serverAdapter, log),
	}
}
