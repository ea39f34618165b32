package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://mail.example.com)
//	-ws-address realtime push endpoint URL (e.g. wss://mail.example.com/api/ws)
//	-d local cache database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-resources comma-separated resource list covered by manual/full sync
//	-sync-interval fallback polling interval for the background worker
func ParseFlags() *StructuredConfig {
	var httpAddress string
	var wsAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var resources commaSeparated
	var syncInterval time.Duration

	flag.StringVar(&httpAddress, "a", "", "Server base URL")
	flag.StringVar(&wsAddress, "ws-address", "", "Realtime push endpoint URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Var(&resources, "resources", "Comma-separated resource list")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Fallback polling interval")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			WSAddress:      wsAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Resources: resources,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
