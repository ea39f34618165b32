// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-mail-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds outbound server addresses and request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds tuning knobs for the sync orchestrator.
	Sync Sync `envPrefix:"SYNC_"`

	// Transport holds tuning knobs for the realtime push connection.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds addresses and timeouts for outbound communication with the
// mail server.
type Adapter struct {
	// HTTPAddress is the base URL of the server's REST API
	// (e.g. "https://mail.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WSAddress is the URL of the server's realtime push endpoint
	// (e.g. "wss://mail.example.com/api/ws"). When empty, it is derived
	// from HTTPAddress by translating the scheme (http→ws, https→wss).
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache database.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite file path used for the local mail cache
	// (e.g. "mailsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds tuning knobs for the sync orchestrator.
type Sync struct {
	// Resources is the list of server resources (mailbox folders) covered
	// by manual and full syncs (e.g. "inbox,sent,drafts").
	// Env: SYNC_RESOURCES
	Resources []string `env:"RESOURCES" envSeparator:","`

	// DebounceWindow is the quiet period after the last sync_required
	// signal before a coalesced fetch pass is launched.
	// Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// ManualSyncMinInterval is the minimum allowed time between two
	// user-invoked syncs; calls inside the window are rejected.
	// Env: SYNC_MANUAL_MIN_INTERVAL
	ManualSyncMinInterval time.Duration `env:"MANUAL_MIN_INTERVAL"`

	// InitialSyncGrace is the window within which a persisted last-sync
	// time is trusted on startup and no initial fetch pass is issued.
	// Env: SYNC_INITIAL_GRACE
	InitialSyncGrace time.Duration `env:"INITIAL_GRACE"`

	// RetentionLimit caps the number of cached mail items kept per account;
	// older rows are trimmed after each pass. Zero disables trimming.
	// Env: SYNC_RETENTION_LIMIT
	RetentionLimit int `env:"RETENTION_LIMIT"`
}

// Transport holds tuning knobs for the realtime push connection.
type Transport struct {
	// HeartbeatInterval is how often the client sends liveness pings while
	// connected.
	// Env: TRANSPORT_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// ReconnectBase is the initial reconnect backoff delay.
	// Env: TRANSPORT_RECONNECT_BASE
	ReconnectBase time.Duration `env:"RECONNECT_BASE"`

	// ReconnectCap is the upper bound on a single reconnect delay.
	// Env: TRANSPORT_RECONNECT_CAP
	ReconnectCap time.Duration `env:"RECONNECT_CAP"`

	// ReconnectMaxAttempts is the attempt ceiling after which the transport
	// stops retrying and stays disconnected until an explicit Reconnect.
	// Env: TRANSPORT_RECONNECT_MAX_ATTEMPTS
	ReconnectMaxAttempts int `env:"RECONNECT_MAX_ATTEMPTS"`

	// AuthFailureBound is the number of auth-rejection frames tolerated
	// before the transport gives up on automatic credential refresh.
	// Env: TRANSPORT_AUTH_FAILURE_BOUND
	AuthFailureBound int `env:"AUTH_FAILURE_BOUND"`

	// AuthFailureDebounce is the quiet period used to collapse a burst of
	// auth-rejection frames into one credential-refresh attempt.
	// Env: TRANSPORT_AUTH_FAILURE_DEBOUNCE
	AuthFailureDebounce time.Duration `env:"AUTH_FAILURE_DEBOUNCE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the fallback polling worker triggers a
	// sync when the push connection is unavailable.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
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
