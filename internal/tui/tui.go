package tui

import (
	"context"
	"encoding/json"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/realtime"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.Services
	transport *realtime.Manager
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, transport *realtime.Manager, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, transport: transport, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register pages until the user authenticates
// or quits, returning the established session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.SessionManager),
		"register": NewRegisterModel(ctx, t.services.SessionManager),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the authenticated chat UI. Push messages from the realtime
// channel are fed into the running program, so an open conversation updates
// without polling.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	cancel := t.transport.Subscribe(realtime.EventMessageReceived, func(payload json.RawMessage) {
		var message models.Message
		if err := json.Unmarshal(payload, &message); err != nil {
			return
		}
		program.Send(pushMessageMsg{message: message})
	})
	defer cancel()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
