package tui

import (
	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow: on success RootModel stores
// the session and quits the login program.
type LoginResult struct {
	Session models.Session
	Err     *request.Error
}

// RegisterSuccessNotice is shown on the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type chatsLoadedMsg struct {
	chats []models.Chat
	err   *request.Error
}

type usersLoadedMsg struct {
	users []models.User
	err   *request.Error
}

type messagesLoadedMsg struct {
	chatID   string
	messages []models.Message
	err      *request.Error
}

type messageSentMsg struct {
	message models.Message
	err     *request.Error
}

type messageDeletedMsg struct {
	messageID string
	err       *request.Error
}

type chatCreatedMsg struct {
	chat models.Chat
	err  *request.Error
}

type groupRenamedMsg struct {
	chat models.Chat
	err  *request.Error
}

type chatDeletedMsg struct {
	chatID string
	err    *request.Error
}

type groupInfoMsg struct {
	chat models.Chat
	err  *request.Error
}

type participantChangedMsg struct {
	chatID string
	err    *request.Error
}

type logoutDoneMsg struct {
	err *request.Error
}

// pushMessageMsg carries a message delivered over the realtime channel.
type pushMessageMsg struct {
	message models.Message
}

type copiedMsg struct{}

type clearStatusMsg struct{}
