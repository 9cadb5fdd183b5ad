package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/realtime"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/internal/tui"
	"github.com/MKhiriev/go-chat-messenger/internal/workers"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type App struct {
	logger     *logger.Logger
	localStore store.SessionStore
	services   *service.Services
	transport  *realtime.Manager
	workers    *workers.Workers
	ui         *tui.TUI
}

// tokenProxy breaks the construction cycle between the HTTP adapter and the
// session manager: the adapter is built first against the proxy, the manager
// is plugged in right after. Token reads before that return empty, which the
// adapter treats as "no Authorization header".
type tokenProxy struct {
	src adapter.TokenSource
}

func (p *tokenProxy) Token() string {
	if p.src == nil {
		return ""
	}
	return p.src.Token()
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	localStore, err := store.NewSessionStore(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	tokens := &tokenProxy{}
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewServices(localStore, serverAdapter, log)
	tokens.src = services.SessionManager

	transport := realtime.NewManager(cfg.Adapter.SocketAddress, services.SessionManager, log)

	jobs := workers.NewWorkers(
		workers.NewHeartbeatWorker(transport, cfg.Workers.HeartbeatInterval, log),
	)

	ui, err := tui.New(services, transport, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		logger:     log,
		localStore: localStore,
		services:   services,
		transport:  transport,
		workers:    jobs,
		ui:         ui,
	}, nil
}

// Run drives the whole client lifecycle: restore or interactive login, then
// the chat UI; a logout loops back to the login flow with a clean session.
func (a *App) Run() error {
	defer a.shutdown()
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	session := a.services.SessionManager.Restore()
	if !session.Authenticated() {
		var err error
		session, err = a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}
	}

	a.logger.Info().Str("username", session.User.Username).Msg("session established")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		return a.run(ctx)
	}

	return nil
}

func (a *App) shutdown() {
	a.transport.Close()
	if err := a.localStore.Close(); err != nil {
		a.logger.Error().Err(err).Msg("close session store")
	}
}
