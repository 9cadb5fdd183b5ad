// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type mainScreen int

const (
	screenChatList mainScreen = iota
	screenChatView
	screenUserPick
	screenGroupForm
	screenRenameForm
	screenParticipants
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteMessage
	confirmDeleteChat
)

// userPickPurpose distinguishes what a selected user is for.
type userPickPurpose int

const (
	pickDirectChat userPickPurpose = iota
	pickAddParticipant
)

// mainLoopModel is the authenticated part of the UI: chat list, message
// view, chat and group management. One model, screen switch inside.
type mainLoopModel struct {
	ctx      context.Context
	chatSvc  service.ChatService
	sessions service.SessionManager
	self     models.User

	screen  mainScreen
	spin    spinner.Model
	loading bool
	status  string
	errMsg  string
	confirm confirmKind

	chats   []models.Chat
	chatIdx int

	active   models.Chat
	messages []models.Message
	msgIdx   int
	input    textinput.Model

	users       []models.User
	userIdx     int
	pickPurpose userPickPurpose
	picked      map[string]bool

	nameInput textinput.Model
	partIdx   int

	logout     bool
	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.Services) mainLoopModel {
	input := textinput.New()
	input.Placeholder = "сообщение"
	input.CharLimit = 2000
	input.Width = 60

	nameInput := textinput.New()
	nameInput.Placeholder = "название"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	var self models.User
	if u := services.SessionManager.Session().User; u != nil {
		self = *u
	}

	return mainLoopModel{
		ctx:       ctx,
		chatSvc:   services.ChatService,
		sessions:  services.SessionManager,
		self:      self,
		spin:      sp,
		input:     input,
		nameInput: nameInput,
		picked:    map[string]bool{},
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadChats())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case copiedMsg:
		return m.withStatus("Скопировано в буфер обмена")

	case chatsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.chats = msg.chats
		if m.chatIdx >= len(m.chats) {
			m.chatIdx = max(0, len(m.chats)-1)
		}
		return m, nil

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.users = msg.users
		m.userIdx = 0
		return m, nil

	case messagesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		if msg.chatID != m.active.ID {
			return m, nil
		}
		m.messages = service.MergeMessages(msg.messages)
		m.msgIdx = max(0, len(m.messages)-1)
		return m, nil

	case messageSentMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.applyIncoming(msg.message)
		return m, nil

	case pushMessageMsg:
		m.applyIncoming(msg.message)
		return m, nil

	case messageDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.removeMessage(msg.messageID)
		return m.withStatus("Сообщение удалено")

	case chatCreatedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.openChat(msg.chat)
		return m, tea.Batch(m.cmdLoadMessages(msg.chat.ID), m.cmdLoadChats())

	case groupRenamedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.active = msg.chat
		m.screen = screenChatView
		return m, m.cmdLoadChats()

	case chatDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		if m.active.ID == msg.chatID {
			m.screen = screenChatList
			m.active = models.Chat{}
			m.messages = nil
		}
		return m, m.cmdLoadChats()

	case participantChangedMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.screen = screenParticipants
		return m, m.cmdReloadGroup(msg.chatID)

	case groupInfoMsg:
		m.loading = false
		if msg.err != nil {
			return m.withError(msg.err)
		}
		m.active = msg.chat
		if m.partIdx >= len(m.active.Participants) {
			m.partIdx = max(0, len(m.active.Participants)-1)
		}
		return m, nil

	case logoutDoneMsg:
		m.loading = false
		m.logout = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error overlay eats everything until dismissed.
	if m.errMsg != "" {
		switch key.String() {
		case "enter", "esc":
			m.errMsg = ""
		}
		return m, nil
	}

	if m.confirm != confirmNone {
		return m.handleConfirmKey(key)
	}

	if key.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenChatList:
		return m.handleChatListKey(key)
	case screenChatView:
		return m.handleChatViewKey(key)
	case screenUserPick:
		return m.handleUserPickKey(key)
	case screenGroupForm:
		return m.handleGroupFormKey(key)
	case screenRenameForm:
		return m.handleRenameFormKey(key)
	case screenParticipants:
		return m.handleParticipantsKey(key)
	}
	return m, nil
}

func (m mainLoopModel) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y":
		kind := m.confirm
		m.confirm = confirmNone
		m.loading = true
		switch kind {
		case confirmDeleteMessage:
			if msg, ok := m.selectedMessage(); ok {
				return m, m.cmdDeleteMessage(msg.ID)
			}
		case confirmDeleteChat:
			if chat, ok := m.selectedChat(); ok {
				return m, m.cmdDeleteChat(chat)
			}
		}
		m.loading = false
	case "n", "esc":
		m.confirm = confirmNone
	}
	return m, nil
}

func (m mainLoopModel) handleChatListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.chatIdx > 0 {
			m.chatIdx--
		}
	case "down", "j":
		if m.chatIdx < len(m.chats)-1 {
			m.chatIdx++
		}
	case "enter":
		if chat, ok := m.selectedChat(); ok {
			m.openChat(chat)
			m.loading = true
			return m, m.cmdLoadMessages(chat.ID)
		}
	case "n":
		m.pickPurpose = pickDirectChat
		m.screen = screenUserPick
		m.loading = true
		return m, m.cmdLoadUsers()
	case "g":
		m.screen = screenGroupForm
		m.picked = map[string]bool{}
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.loading = true
		return m, tea.Batch(m.cmdLoadUsers(), textinput.Blink)
	case "d":
		if _, ok := m.selectedChat(); ok {
			m.confirm = confirmDeleteChat
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadChats()
	case "l":
		m.loading = true
		return m, m.cmdLogout()
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) handleChatViewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenChatList
		m.input.Blur()
		return m, nil
	case "up":
		if m.msgIdx > 0 {
			m.msgIdx--
		}
		return m, nil
	case "down":
		if m.msgIdx < len(m.messages)-1 {
			m.msgIdx++
		}
		return m, nil
	case "enter":
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.loading = true
		return m, m.cmdSendMessage(m.active.ID, content)
	case "ctrl+y":
		if msg, ok := m.selectedMessage(); ok {
			return m, cmdCopyToClipboard(msg.Content)
		}
		return m, nil
	case "ctrl+d":
		if msg, ok := m.selectedMessage(); ok && msg.SenderID == m.self.ID {
			m.confirm = confirmDeleteMessage
		}
		return m, nil
	case "ctrl+r":
		if m.active.IsGroupChat && m.active.AdminID == m.self.ID {
			m.screen = screenRenameForm
			m.nameInput.SetValue(m.active.Name)
			m.nameInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "ctrl+p":
		if m.active.IsGroupChat {
			m.screen = screenParticipants
			m.partIdx = 0
			m.loading = true
			return m, m.cmdReloadGroup(m.active.ID)
		}
		return m, nil
	case "ctrl+l":
		m.loading = true
		return m, m.cmdLoadMessages(m.active.ID)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m mainLoopModel) handleUserPickKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		if m.pickPurpose == pickAddParticipant {
			m.screen = screenParticipants
		} else {
			m.screen = screenChatList
		}
		return m, nil
	case "up", "k":
		if m.userIdx > 0 {
			m.userIdx--
		}
	case "down", "j":
		if m.userIdx < len(m.users)-1 {
			m.userIdx++
		}
	case "enter":
		if m.userIdx >= len(m.users) {
			return m, nil
		}
		picked := m.users[m.userIdx]
		m.loading = true
		if m.pickPurpose == pickAddParticipant {
			return m, m.cmdAddParticipant(m.active.ID, picked.ID)
		}
		return m, m.cmdCreateDirectChat(picked.ID)
	}
	return m, nil
}

func (m mainLoopModel) handleGroupFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenChatList
		m.nameInput.Blur()
		return m, nil
	case "tab":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
		} else {
			m.nameInput.Focus()
		}
		return m, nil
	case "up", "k":
		if !m.nameInput.Focused() && m.userIdx > 0 {
			m.userIdx--
			return m, nil
		}
	case "down", "j":
		if !m.nameInput.Focused() && m.userIdx < len(m.users)-1 {
			m.userIdx++
			return m, nil
		}
	case " ":
		if !m.nameInput.Focused() && m.userIdx < len(m.users) {
			id := m.users[m.userIdx].ID
			m.picked[id] = !m.picked[id]
			return m, nil
		}
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		participants := make([]string, 0, len(m.picked))
		for id, on := range m.picked {
			if on {
				participants = append(participants, id)
			}
		}
		if name == "" || len(participants) == 0 {
			m.errMsg = "Нужны название группы и хотя бы один участник"
			return m, nil
		}
		m.loading = true
		m.nameInput.Blur()
		return m, m.cmdCreateGroupChat(models.CreateGroupRequest{Name: name, Participants: participants})
	}

	if m.nameInput.Focused() {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(key)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleRenameFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenChatView
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Название не может быть пустым"
			return m, nil
		}
		m.loading = true
		m.nameInput.Blur()
		return m, m.cmdRenameGroup(m.active.ID, name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(key)
	return m, cmd
}

func (m mainLoopModel) handleParticipantsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenChatView
	case "up", "k":
		if m.partIdx > 0 {
			m.partIdx--
		}
	case "down", "j":
		if m.partIdx < len(m.active.Participants)-1 {
			m.partIdx++
		}
	case "a":
		if m.active.AdminID == m.self.ID {
			m.pickPurpose = pickAddParticipant
			m.screen = screenUserPick
			m.loading = true
			return m, m.cmdLoadUsers()
		}
	case "d":
		if m.active.AdminID != m.self.ID || m.partIdx >= len(m.active.Participants) {
			return m, nil
		}
		target := m.active.Participants[m.partIdx]
		if target.ID == m.self.ID {
			return m, nil
		}
		m.loading = true
		return m, m.cmdRemoveParticipant(m.active.ID, target.ID)
	}
	return m, nil
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadChats() tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.MyChats(ctx, nil)
		if failure := outcome.Err(); failure != nil {
			return chatsLoadedMsg{err: failure}
		}
		chats, _ := outcome.Ok()
		return chatsLoadedMsg{chats: chats}
	}
}

func (m mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.AvailableUsers(ctx, nil)
		if failure := outcome.Err(); failure != nil {
			return usersLoadedMsg{err: failure}
		}
		users, _ := outcome.Ok()
		return usersLoadedMsg{users: users}
	}
}

func (m mainLoopModel) cmdLoadMessages(chatID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.ChatMessages(ctx, chatID, nil)
		if failure := outcome.Err(); failure != nil {
			return messagesLoadedMsg{chatID: chatID, err: failure}
		}
		messages, _ := outcome.Ok()
		return messagesLoadedMsg{chatID: chatID, messages: messages}
	}
}

func (m mainLoopModel) cmdSendMessage(chatID, content string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.SendMessage(ctx, chatID, models.OutgoingMessage{Content: content}, nil)
		if failure := outcome.Err(); failure != nil {
			return messageSentMsg{err: failure}
		}
		message, _ := outcome.Ok()
		return messageSentMsg{message: message}
	}
}

func (m mainLoopModel) cmdDeleteMessage(messageID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.DeleteMessage(ctx, messageID, nil)
		return messageDeletedMsg{messageID: messageID, err: outcome.Err()}
	}
}

func (m mainLoopModel) cmdCreateDirectChat(receiverID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.CreateDirectChat(ctx, receiverID, nil)
		if failure := outcome.Err(); failure != nil {
			return chatCreatedMsg{err: failure}
		}
		chat, _ := outcome.Ok()
		return chatCreatedMsg{chat: chat}
	}
}

func (m mainLoopModel) cmdCreateGroupChat(req models.CreateGroupRequest) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.CreateGroupChat(ctx, req, nil)
		if failure := outcome.Err(); failure != nil {
			return chatCreatedMsg{err: failure}
		}
		chat, _ := outcome.Ok()
		return chatCreatedMsg{chat: chat}
	}
}

func (m mainLoopModel) cmdRenameGroup(chatID, name string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.RenameGroup(ctx, chatID, name, nil)
		if failure := outcome.Err(); failure != nil {
			return groupRenamedMsg{err: failure}
		}
		chat, _ := outcome.Ok()
		return groupRenamedMsg{chat: chat}
	}
}

func (m mainLoopModel) cmdDeleteChat(chat models.Chat) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		var failure *request.Error
		if chat.IsGroupChat {
			failure = svc.DeleteGroup(ctx, chat.ID, nil).Err()
		} else {
			failure = svc.DeleteDirectChat(ctx, chat.ID, nil).Err()
		}
		return chatDeletedMsg{chatID: chat.ID, err: failure}
	}
}

func (m mainLoopModel) cmdAddParticipant(chatID, participantID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.AddParticipant(ctx, chatID, participantID, nil)
		return participantChangedMsg{chatID: chatID, err: outcome.Err()}
	}
}

func (m mainLoopModel) cmdRemoveParticipant(chatID, participantID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.RemoveParticipant(ctx, chatID, participantID, nil)
		return participantChangedMsg{chatID: chatID, err: outcome.Err()}
	}
}

func (m mainLoopModel) cmdReloadGroup(chatID string) tea.Cmd {
	ctx, svc := m.ctx, m.chatSvc
	return func() tea.Msg {
		outcome := svc.GroupInfo(ctx, chatID, nil)
		if failure := outcome.Err(); failure != nil {
			return groupInfoMsg{err: failure}
		}
		chat, _ := outcome.Ok()
		return groupInfoMsg{chat: chat}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		outcome := sessions.Logout(ctx, nil)
		return logoutDoneMsg{err: outcome.Err()}
	}
}

func cmdCopyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(content); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

// ── State helpers ────────────────────────────────────────────────────────────

func (m *mainLoopModel) openChat(chat models.Chat) {
	m.active = chat
	m.screen = screenChatView
	m.messages = nil
	m.msgIdx = 0
	m.input.SetValue("")
	m.input.Focus()
}

// applyIncoming folds one message into the view: the REST acknowledgment of
// our own send and the push echo both land here, in either order.
func (m *mainLoopModel) applyIncoming(message models.Message) {
	if message.ChatID == m.active.ID && m.screen != screenChatList {
		stickToBottom := m.msgIdx >= len(m.messages)-1
		m.messages = service.MergeMessages(m.messages, message)
		if stickToBottom {
			m.msgIdx = len(m.messages) - 1
		}
	}

	for i := range m.chats {
		if m.chats[i].ID == message.ChatID {
			m.chats[i].LastMessage = message.Content
			m.chats[i].LastMessageTime = message.SentAt
			return
		}
	}
}

func (m *mainLoopModel) removeMessage(messageID string) {
	for i, msg := range m.messages {
		if msg.ID == messageID {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			break
		}
	}
	if m.msgIdx >= len(m.messages) {
		m.msgIdx = max(0, len(m.messages)-1)
	}
}

func (m mainLoopModel) selectedChat() (models.Chat, bool) {
	if m.chatIdx < 0 || m.chatIdx >= len(m.chats) {
		return models.Chat{}, false
	}
	return m.chats[m.chatIdx], true
}

func (m mainLoopModel) selectedMessage() (models.Message, bool) {
	if m.msgIdx < 0 || m.msgIdx >= len(m.messages) {
		return models.Message{}, false
	}
	return m.messages[m.msgIdx], true
}

func (m mainLoopModel) withError(err *request.Error) (tea.Model, tea.Cmd) {
	// Сервер больше не принимает токен: сессия мертва, держать её нет
	// смысла. Сбрасываем локальную идентичность и возвращаемся к логину.
	if err.Kind == request.KindAuth {
		m.sessions.Invalidate()
		m.logout = true
		return m, tea.Quit
	}

	m.errMsg = errorText(err)
	return m, nil
}

func (m mainLoopModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── Views ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.errMsg != "" {
		return errorOverlayModel{message: m.errMsg}.View()
	}
	if m.confirm != confirmNone {
		return m.confirmView()
	}

	switch m.screen {
	case screenChatView:
		return m.chatView()
	case screenUserPick:
		return m.userPickView()
	case screenGroupForm:
		return m.groupFormView()
	case screenRenameForm:
		return m.renameFormView()
	case screenParticipants:
		return m.participantsView()
	default:
		return m.chatListView()
	}
}

func (m mainLoopModel) confirmView() string {
	subject := ""
	switch m.confirm {
	case confirmDeleteMessage:
		if msg, ok := m.selectedMessage(); ok {
			subject = fitText(msg.Content, 40)
		}
	case confirmDeleteChat:
		if chat, ok := m.selectedChat(); ok {
			subject = chat.DisplayName(m.self.ID)
		}
	}
	return confirmModel{message: subject}.View()
}

func (m mainLoopModel) chatListView() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if len(m.chats) == 0 {
		b.WriteString("Чатов пока нет")
	}

	for i, chat := range m.chats {
		cursor := "  "
		if i == m.chatIdx {
			cursor = "> "
		}
		kind := "     "
		if chat.IsGroupChat {
			kind = "[гр.]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, kind, fitText(chat.DisplayName(m.self.ID), 30))
		if chat.LastMessage != "" {
			line += "  │ " + fitText(chat.LastMessage, 34)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	title := "ЧАТЫ — " + m.self.Name
	if m.loading {
		title += " " + m.spin.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новый чат │ g: группа │ d: удалить │ r: обновить │ l: выйти из аккаунта")
}

func (m mainLoopModel) chatView() string {
	var b strings.Builder

	for i, msg := range m.messages {
		cursor := "  "
		if i == m.msgIdx {
			cursor = "> "
		}

		author := msg.Sender.Name
		if msg.SenderID == m.self.ID {
			author = "я"
		}
		if author == "" {
			author = msg.Sender.Username
		}

		line := fmt.Sprintf("%s%s │ %s", cursor, msg.SentAt.Local().Format("15:04"), author)
		b.WriteString(line)
		b.WriteString("\n")

		content := msg.Content
		if content == "" && len(msg.Attachments) > 0 {
			content = fmt.Sprintf("[вложений: %d]", len(msg.Attachments))
		}
		for _, contentLine := range strings.Split(content, "\n") {
			b.WriteString("      ")
			b.WriteString(contentLine)
			b.WriteString("\n")
		}
	}

	if len(m.messages) == 0 {
		b.WriteString("Сообщений пока нет\n")
	}

	b.WriteString("\n")
	b.WriteString("> [")
	b.WriteString(m.input.View())
	b.WriteString("]")

	title := m.active.DisplayName(m.self.ID)
	if m.loading {
		title += " " + m.spin.View()
	}

	hotKeys := "enter: отправить │ ↑/↓: выбор │ ctrl+y: копировать │ ctrl+d: удалить │ esc: назад"
	if m.active.IsGroupChat {
		hotKeys += " │ ctrl+p: участники"
		if m.active.AdminID == m.self.ID {
			hotKeys += " │ ctrl+r: переименовать"
		}
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) userPickView() string {
	var b strings.Builder

	if len(m.users) == 0 {
		b.WriteString("Нет доступных пользователей")
	}
	for i, user := range m.users {
		cursor := "  "
		if i == m.userIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s (%s)\n", cursor, user.Name, user.Username))
	}

	title := "НОВЫЙ ЧАТ"
	if m.pickPurpose == pickAddParticipant {
		title = "ДОБАВИТЬ УЧАСТНИКА"
	}
	if m.loading {
		title += " " + m.spin.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ esc: назад")
}

func (m mainLoopModel) groupFormView() string {
	var b strings.Builder

	b.WriteString("Название │ [")
	b.WriteString(m.nameInput.View())
	b.WriteString("]\n\n")
	b.WriteString("Участники:\n")

	for i, user := range m.users {
		cursor := "  "
		if i == m.userIdx && !m.nameInput.Focused() {
			cursor = "> "
		}
		mark := "[ ]"
		if m.picked[user.ID] {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%s)\n", cursor, mark, user.Name, user.Username))
	}

	title := "НОВАЯ ГРУППА"
	if m.loading {
		title += " " + m.spin.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: поле/список │ space: отметить │ enter: создать │ esc: назад")
}

func (m mainLoopModel) renameFormView() string {
	data := "Новое название │ [" + m.nameInput.View() + "]"
	return renderPage("ПЕРЕИМЕНОВАНИЕ ГРУППЫ", data, "enter: сохранить │ esc: назад")
}

func (m mainLoopModel) participantsView() string {
	var b strings.Builder

	for i, user := range m.active.Participants {
		cursor := "  "
		if i == m.partIdx {
			cursor = "> "
		}
		role := ""
		if user.ID == m.active.AdminID {
			role = " (админ)"
		}
		b.WriteString(fmt.Sprintf("%s%s (%s)%s\n", cursor, user.Name, user.Username, role))
	}

	title := "УЧАСТНИКИ — " + m.active.Name
	if m.loading {
		title += " " + m.spin.View()
	}

	hotKeys := "esc: назад"
	if m.active.AdminID == m.self.ID {
		hotKeys = "a: добавить │ d: исключить │ " + hotKeys
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
