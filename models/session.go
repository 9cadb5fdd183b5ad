// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the authenticated identity held by the client for the current
// login: the user profile plus the bearer token issued for it.
//
// Invariant: Token is non-empty iff User is non-nil. A session with exactly
// one of the two is never constructed; the session store persists and clears
// both values in a single transaction to preserve this across restarts.
type Session struct {
	// User is the profile of the authenticated user, nil when logged out.
	User *User `json:"user,omitempty"`

	// Token is the bearer credential attached to every API call and to the
	// realtime connection. Empty when logged out.
	Token string `json:"token,omitempty"`
}

// Authenticated reports whether the session holds a complete identity.
func (s Session) Authenticated() bool {
	return s.User != nil && s.User.Valid() && s.Token != ""
}
