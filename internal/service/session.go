// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/request"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/models"
)

type sessionManager struct {
	localStore store.SessionStore
	api        adapter.AuthAPI
	validate   *validator.Validate
	logger     *logger.Logger

	restoreOnce sync.Once

	mu       sync.RWMutex
	session  models.Session
	state    SessionState
	nextID   int
	watchers map[int]TokenListener
}

// NewSessionManager creates the single owner of the authenticated identity.
// The returned manager doubles as the adapter's token source, so it must be
// constructed before the HTTP adapter it feeds.
func NewSessionManager(localStore store.SessionStore, api adapter.AuthAPI, log *logger.Logger) SessionManager {
	return &sessionManager{
		localStore: localStore,
		api:        api,
		validate:   validator.New(),
		logger:     log,
		state:      StateUnauthenticated,
		watchers:   make(map[int]TokenListener),
	}
}

// Restore implements [SessionManager].
func (m *sessionManager) Restore() models.Session {
	m.restoreOnce.Do(func() {
		m.mu.Lock()
		m.state = StateRestoring
		m.mu.Unlock()

		session, err := m.localStore.Load()
		if err != nil {
			m.logger.Error().Err(err).Msg("load persisted session")
		}

		if !session.Authenticated() {
			m.mu.Lock()
			m.state = StateUnauthenticated
			m.mu.Unlock()
			return
		}

		m.warnIfExpired(session.Token)

		m.mu.Lock()
		m.session = session
		m.state = StateAuthenticated
		m.mu.Unlock()

		m.logger.Info().Str("username", session.User.Username).Msg("session restored from local store")
		m.notify(session.Token)
	})

	return m.Session()
}

// warnIfExpired peeks at the token's exp claim without verifying the
// signature. A restored session is trusted either way — the server rejects
// an expired token on the next request — but the log line explains the
// auth error the user is about to see.
func (m *sessionManager) warnIfExpired(token string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		m.logger.Warn().Time("expired_at", claims.ExpiresAt.Time).Msg("restored token is already expired")
	}
}

// Login implements [SessionManager].
func (m *sessionManager) Login(ctx context.Context, req models.LoginRequest, onLoading func(bool)) request.Outcome[models.Session] {
	m.mu.Lock()
	prev := m.state
	m.state = StateAuthenticating
	m.mu.Unlock()

	outcome := request.Execute(ctx, func(ctx context.Context) (models.Session, error) {
		if err := m.validate.Struct(req); err != nil {
			return models.Session{}, err
		}

		auth, err := m.api.Login(ctx, req)
		if err != nil {
			return models.Session{}, err
		}

		return models.Session{User: &auth.User, Token: auth.Token}, nil
	}, onLoading)

	// Неудачный вход не трогает сессию: возвращаем прежнее состояние,
	// а не безусловно Unauthenticated.
	session, ok := outcome.Ok()
	if !ok {
		m.mu.Lock()
		if m.state == StateAuthenticating {
			m.state = prev
		}
		m.mu.Unlock()
		return outcome
	}

	m.setSession(session)
	return outcome
}

// Register implements [SessionManager].
func (m *sessionManager) Register(ctx context.Context, req models.RegisterRequest, onLoading func(bool)) request.Outcome[struct{}] {
	return request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		if err := m.validate.Struct(req); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, m.api.Register(ctx, req)
	}, onLoading)
}

// Logout implements [SessionManager]. The network call is best-effort: the
// local session is destroyed no matter how it ends, so the persisted pair
// can never survive a logout.
func (m *sessionManager) Logout(ctx context.Context, onLoading func(bool)) request.Outcome[struct{}] {
	outcome := request.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, m.api.Logout(ctx)
	}, onLoading)

	if failure := outcome.Err(); failure != nil {
		m.logger.Warn().Err(failure).Msg("server logout failed, clearing local session anyway")
	}

	m.clearSession()
	return outcome
}

// Invalidate implements [SessionManager].
func (m *sessionManager) Invalidate() {
	m.logger.Info().Msg("invalidating local session")
	m.clearSession()
}

// Session implements [SessionManager].
func (m *sessionManager) Session() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token implements [SessionManager] and [adapter.TokenSource].
func (m *sessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// State implements [SessionManager].
func (m *sessionManager) State() SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe implements [SessionManager].
func (m *sessionManager) Subscribe(listener TokenListener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.watchers[id] = listener
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
	}
}

// setSession installs the new identity: memory and store are written
// together so observers can never see one half of the pair.
func (m *sessionManager) setSession(session models.Session) {
	m.mu.Lock()
	m.session = session
	m.state = StateAuthenticated
	m.mu.Unlock()

	if err := m.localStore.Save(session); err != nil {
		m.logger.Error().Err(err).Msg("persist session; identity kept in memory only")
	}

	m.notify(session.Token)
}

func (m *sessionManager) clearSession() {
	m.mu.Lock()
	m.session = models.Session{}
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.localStore.Clear(); err != nil {
		m.logger.Error().Err(err).Msg("clear persisted session")
	}

	m.notify("")
}

// notify fans the token change out to subscribers. The watcher list is
// copied under the lock; listeners run without it.
func (m *sessionManager) notify(token string) {
	m.mu.RLock()
	listeners := make([]TokenListener, 0, len(m.watchers))
	for _, l := range m.watchers {
		listeners = append(listeners, l)
	}
	m.mu.RUnlock()

	for _, listener := range listeners {
		listener(token)
	}
}
