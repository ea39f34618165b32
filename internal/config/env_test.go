package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_Full verifies env var mapping across nested config groups.
func TestParseEnv_Full(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://mail.example.com")
	t.Setenv("ADAPTER_WS_ADDRESS", "wss://mail.example.com/api/ws")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "mailsync.db")
	t.Setenv("SYNC_RESOURCES", "mail_items,accounts,labels")
	t.Setenv("SYNC_DEBOUNCE_WINDOW", "3s")
	t.Setenv("TRANSPORT_RECONNECT_MAX_ATTEMPTS", "7")
	t.Setenv("WORKERS_SYNC_INTERVAL", "10m")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://mail.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://mail.example.com/api/ws", cfg.Adapter.WSAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "mailsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"mail_items", "accounts", "labels"}, cfg.Sync.Resources)
	assert.Equal(t, 3*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 7, cfg.Transport.ReconnectMaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
}

// TestParseEnv_Empty verifies that an empty environment leaves the config at
// zero values instead of failing.
func TestParseEnv_Empty(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Workers.SyncInterval)
}
