package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server API base URL
//	-socket-address realtime push endpoint URL
//	-d local database directory ("memory" for non-persistent)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "2m")
//	-heartbeat-interval realtime heartbeat interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var socketAddress string
	var databaseDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var heartbeatInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Chat server API base URL")
	flag.StringVar(&socketAddress, "socket-address", "", "Realtime push endpoint URL")
	flag.StringVar(&databaseDir, "d", "", "Local database directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 2m)")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", 0, "Heartbeat interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Dir: databaseDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			SocketAddress:  socketAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HeartbeatInterval: heartbeatInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
