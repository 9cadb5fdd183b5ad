// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

// Keys under which the two session values are stored. They are always
// written and deleted inside a single transaction.
var (
	keySessionUser  = []byte("session:user")
	keySessionToken = []byte("session:token")
)

type badgerSessionStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewSessionStore opens the embedded key-value database in cfg.DB.Dir and
// returns a [SessionStore] backed by it. The literal directory value
// "memory" selects a non-persistent in-memory database, used by tests and
// ephemeral runs.
func NewSessionStore(cfg config.ClientStorage, log *logger.Logger) (SessionStore, error) {
	opts := badger.DefaultOptions(cfg.DB.Dir).WithLogger(nil)
	if cfg.DB.Dir == "memory" {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	return &badgerSessionStore{db: db, logger: log}, nil
}

// Load implements [SessionStore]. Both keys are read in one view
// transaction. Any inconsistency — a missing key, an unparsable user value,
// a token without a user — degrades to the zero session: a broken local
// cache must never block startup.
func (s *badgerSessionStore) Load() (models.Session, error) {
	var (
		user     models.User
		token    string
		haveUser bool
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keySessionUser)
		if err == nil {
			err = item.Value(func(val []byte) error {
				if jsonErr := json.Unmarshal(val, &user); jsonErr != nil {
					s.logger.Warn().Err(jsonErr).Msg("stored session user is corrupted, treating as absent")
					return nil
				}
				haveUser = true
				return nil
			})
			if err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		item, err = txn.Get(keySessionToken)
		if err == nil {
			return item.Value(func(val []byte) error {
				token = string(val)
				return nil
			})
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if !haveUser || !user.Valid() || token == "" {
		if haveUser != (token != "") {
			s.logger.Warn().Msg("half-present session pair in store, treating as absent")
		}
		return models.Session{}, nil
	}

	return models.Session{User: &user, Token: token}, nil
}

// Save implements [SessionStore]. The user profile and token are written in
// a single update transaction so a crash can never leave exactly one of the
// pair behind.
func (s *badgerSessionStore) Save(session models.Session) error {
	if !session.Authenticated() {
		return ErrIncompleteSession
	}

	payload, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keySessionUser, payload); err != nil {
			return err
		}
		return txn.Set(keySessionToken, []byte(session.Token))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Clear implements [SessionStore]. Both keys are deleted in a single update
// transaction.
func (s *badgerSessionStore) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(keySessionUser); err != nil {
			return err
		}
		return txn.Delete(keySessionToken)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// Close implements [SessionStore].
func (s *badgerSessionStore) Close() error {
	return s.db.Close()
}
