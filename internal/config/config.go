// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-chat-messenger client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network addresses and timeouts for the chat server's
	// HTTP API and realtime socket endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the embedded key-value database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the embedded key-value store that persists the
// session between process restarts.
type DB struct {
	// Dir is the directory the key-value store keeps its data files in.
	// The literal value "memory" selects a non-persistent in-memory store.
	// Env: STORAGE_DB_DIR
	Dir string `env:"DIR"`
}

// Adapter holds configuration for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the chat server's REST API
	// (e.g. "https://chat.example.com/api/v1").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SocketAddress is the URL of the realtime push endpoint
	// (e.g. "wss://chat.example.com/ws"). Plain host:port values are
	// normalised to ws:// by the realtime manager.
	// Env: ADAPTER_SOCKET_ADDRESS
	SocketAddress string `env:"SOCKET_ADDRESS"`

	// RequestTimeout is the upper bound for a single outbound request
	// before it fails with a network error (e.g. "30s", "2m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HeartbeatInterval defines how often the heartbeat worker pings the
	// live realtime connection.
	// Env: WORKERS_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
