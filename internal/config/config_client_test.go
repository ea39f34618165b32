package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://mail.example.com"},
		Storage: ClientStorage{DB: ClientDB{DSN: "mailsync.db"}},
	}
	cfg.applyDefaults()
	return cfg
}

// ── defaults ─────────────────────────────────────────────────────────────────

func TestApplyDefaults_FillsTuningKnobs(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 30*time.Second, cfg.Sync.ManualSyncMinInterval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.InitialSyncGrace)
	assert.Equal(t, []string{"inbox", "sent", "drafts"}, cfg.Sync.Resources)
	assert.Equal(t, 3, cfg.Transport.AuthFailureBound)
	assert.Equal(t, 500*time.Millisecond, cfg.Transport.AuthFailureDebounce)
	assert.Equal(t, 10, cfg.Transport.ReconnectMaxAttempts)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://mail.example.com"},
		Storage: ClientStorage{DB: ClientDB{DSN: "mailsync.db"}},
		Sync:    ClientSync{DebounceWindow: 7 * time.Second},
	}
	cfg.applyDefaults()

	assert.Equal(t, 7*time.Second, cfg.Sync.DebounceWindow)
}

// ── websocket address derivation ─────────────────────────────────────────────

func TestDeriveWSAddress(t *testing.T) {
	tests := []struct {
		name string
		http string
		want string
	}{
		{"https", "https://mail.example.com", "wss://mail.example.com/api/ws"},
		{"http", "http://localhost:8080", "ws://localhost:8080/api/ws"},
		{"trailing slash", "https://mail.example.com/", "wss://mail.example.com/api/ws"},
		{"bare host", "localhost:8080", "ws://localhost:8080/api/ws"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveWSAddress(tt.http))
		})
	}
}

func TestApplyDefaults_DerivesWSAddress(t *testing.T) {
	cfg := validClientConfig()
	assert.Equal(t, "wss://mail.example.com/api/ws", cfg.Transport.WSAddress)
}

// ── validation ───────────────────────────────────────────────────────────────

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_InMemoryDSNRejected(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingHTTPAddress(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestValidate_NoResources(t *testing.T) {
	cfg := validClientConfig()
	cfg.Sync.Resources = nil
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}
