package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "https://chat.example.com/api/v1",
			SocketAddress:  "wss://chat.example.com/ws",
			RequestTimeout: 2 * time.Minute,
		},
		Storage: ClientStorage{DB: ClientDB{Dir: "/var/lib/chat-client"}},
		Workers: ClientWorkers{HeartbeatInterval: 30 * time.Second},
	}
}

func TestClientConfigValidate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{
			name:    "empty storage dir",
			mutate:  func(c *ClientConfig) { c.Storage.DB.Dir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty socket address",
			mutate:  func(c *ClientConfig) { c.Adapter.SocketAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero heartbeat interval",
			mutate:  func(c *ClientConfig) { c.Workers.HeartbeatInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
