// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is the body returned by POST user/login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// APIError is the server's error envelope. The adapter decodes it from
// non-2xx bodies to surface the server's human-readable message.
type APIError struct {
	Message string `json:"message"`
}
