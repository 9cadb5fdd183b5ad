package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the UI.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST API base URL used by the client.
	HTTPAddress string
	// SocketAddress is the realtime push endpoint URL.
	SocketAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local key-value database settings for the client.
type ClientDB struct {
	// Dir is the data directory, or "memory" for a non-persistent store.
	Dir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HeartbeatInterval defines how often the heartbeat worker should ping
	// the live realtime connection.
	HeartbeatInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// DefaultRequestTimeout bounds a single outbound request when no explicit
// timeout is configured.
const DefaultRequestTimeout = 2 * time.Minute

// DefaultHeartbeatInterval is the fallback cadence for the realtime
// heartbeat worker.
const DefaultHeartbeatInterval = 30 * time.Second

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for optional durations,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			SocketAddress:  cfg.Adapter.SocketAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Dir: cfg.Storage.DB.Dir,
			},
		},
		Workers: ClientWorkers{HeartbeatInterval: cfg.Workers.HeartbeatInterval},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.HeartbeatInterval == 0 {
		clientCfg.Workers.HeartbeatInterval = DefaultHeartbeatInterval
	}

	return clientCfg, clientCfg.validate()
}
