package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
}

// ClientAdapter holds network settings used by the client transport layers.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server's REST API.
	HTTPAddress string
	// WSAddress is the realtime push endpoint URL; derived from HTTPAddress
	// when empty.
	WSAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains sync orchestrator tuning.
type ClientSync struct {
	// Resources lists the server resources covered by manual and full sync.
	Resources []string
	// DebounceWindow is the signal-coalescing quiet period.
	DebounceWindow time.Duration
	// ManualSyncMinInterval is the minimum gap between user-invoked syncs.
	ManualSyncMinInterval time.Duration
	// InitialSyncGrace is how fresh a persisted last-sync must be for the
	// startup fetch to be skipped.
	InitialSyncGrace time.Duration
	// RetentionLimit caps cached mail items per account (0 = unlimited).
	RetentionLimit int
}

// ClientTransport contains push connection tuning.
type ClientTransport struct {
	// WSAddress is the resolved realtime endpoint URL.
	WSAddress string
	// HeartbeatInterval is the client ping cadence while connected.
	HeartbeatInterval time.Duration
	// ReconnectBase is the initial reconnect backoff delay.
	ReconnectBase time.Duration
	// ReconnectCap bounds a single reconnect delay.
	ReconnectCap time.Duration
	// ReconnectMaxAttempts is the retry ceiling per outage.
	ReconnectMaxAttempts int
	// AuthFailureBound bounds automatic credential-refresh attempts.
	AuthFailureBound int
	// AuthFailureDebounce collapses bursts of auth rejections.
	AuthFailureDebounce time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the fallback polling worker runs.
	SyncInterval time.Duration
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
	// Sync contains orchestrator tuning.
	Sync ClientSync
	// Transport contains push connection tuning.
	Transport ClientTransport
	// Workers contains background job settings.
	Workers ClientWorkers
}

// Defaults for tuning knobs left unset by every configuration source.
const (
	defaultRequestTimeout        = 30 * time.Second
	defaultDebounceWindow        = 2 * time.Second
	defaultManualSyncMinInterval = 30 * time.Second
	defaultInitialSyncGrace      = 5 * time.Minute
	defaultRetentionLimit        = 5000
	defaultHeartbeatInterval     = 30 * time.Second
	defaultReconnectBase         = time.Second
	defaultReconnectCap          = time.Minute
	defaultReconnectMaxAttempts  = 10
	defaultAuthFailureBound      = 3
	defaultAuthFailureDebounce   = 500 * time.Millisecond
	defaultWorkerSyncInterval    = 5 * time.Minute
)

var defaultResources = []string{"inbox", "sent", "drafts"}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the client runtime, fills defaults for unset tuning knobs, and validates
// the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading structured config: %w", err)
	}

	cfg := &ClientConfig{
		App: ClientApp{
			Version: structured.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    structured.Adapter.HTTPAddress,
			WSAddress:      structured.Adapter.WSAddress,
			RequestTimeout: structured.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: structured.Storage.DB.DSN},
		},
		Sync: ClientSync{
			Resources:             structured.Sync.Resources,
			DebounceWindow:        structured.Sync.DebounceWindow,
			ManualSyncMinInterval: structured.Sync.ManualSyncMinInterval,
			InitialSyncGrace:      structured.Sync.InitialSyncGrace,
			RetentionLimit:        structured.Sync.RetentionLimit,
		},
		Transport: ClientTransport{
			WSAddress:            structured.Adapter.WSAddress,
			HeartbeatInterval:    structured.Transport.HeartbeatInterval,
			ReconnectBase:        structured.Transport.ReconnectBase,
			ReconnectCap:         structured.Transport.ReconnectCap,
			ReconnectMaxAttempts: structured.Transport.ReconnectMaxAttempts,
			AuthFailureBound:     structured.Transport.AuthFailureBound,
			AuthFailureDebounce:  structured.Transport.AuthFailureDebounce,
		},
		Workers: ClientWorkers{
			SyncInterval: structured.Workers.SyncInterval,
		},
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return cfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Sync.Resources) == 0 {
		cfg.Sync.Resources = defaultResources
	}
	if cfg.Sync.DebounceWindow == 0 {
		cfg.Sync.DebounceWindow = defaultDebounceWindow
	}
	if cfg.Sync.ManualSyncMinInterval == 0 {
		cfg.Sync.ManualSyncMinInterval = defaultManualSyncMinInterval
	}
	if cfg.Sync.InitialSyncGrace == 0 {
		cfg.Sync.InitialSyncGrace = defaultInitialSyncGrace
	}
	if cfg.Sync.RetentionLimit == 0 {
		cfg.Sync.RetentionLimit = defaultRetentionLimit
	}
	if cfg.Transport.HeartbeatInterval == 0 {
		cfg.Transport.HeartbeatInterval = defaultHeartbeatInterval
	}
	if cfg.Transport.ReconnectBase == 0 {
		cfg.Transport.ReconnectBase = defaultReconnectBase
	}
	if cfg.Transport.ReconnectCap == 0 {
		cfg.Transport.ReconnectCap = defaultReconnectCap
	}
	if cfg.Transport.ReconnectMaxAttempts == 0 {
		cfg.Transport.ReconnectMaxAttempts = defaultReconnectMaxAttempts
	}
	if cfg.Transport.AuthFailureBound == 0 {
		cfg.Transport.AuthFailureBound = defaultAuthFailureBound
	}
	if cfg.Transport.AuthFailureDebounce == 0 {
		cfg.Transport.AuthFailureDebounce = defaultAuthFailureDebounce
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultWorkerSyncInterval
	}

	if cfg.Transport.WSAddress == "" {
		cfg.Transport.WSAddress = deriveWSAddress(cfg.Adapter.HTTPAddress)
	}
}
