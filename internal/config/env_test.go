// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "2.0.0",

		"ADAPTER_ADDRESS":         "https://chat.example.com/api/v1",
		"ADAPTER_SOCKET_ADDRESS":  "wss://chat.example.com/ws",
		"ADAPTER_REQUEST_TIMEOUT": "2m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DIR": "/var/lib/chat-client",

		"WORKERS_HEARTBEAT_INTERVAL": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.0.0", cfg.App.Version)

	assert.Equal(t, "https://chat.example.com/api/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://chat.example.com/ws", cfg.Adapter.SocketAddress)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/chat-client", cfg.Storage.DB.Dir)
	assert.Equal(t, 30*time.Second, cfg.Workers.HeartbeatInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Adapter.SocketAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
