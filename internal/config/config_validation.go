// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config is permissive by design: required fields are enforced
// on the [ClientConfig] view, because only that view knows which fields the
// client runtime actually needs.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Transport.WSAddress == "" {
		return ErrInvalidTransportConfigs
	}

	if len(cfg.Sync.Resources) == 0 || cfg.Sync.DebounceWindow <= 0 || cfg.Sync.ManualSyncMinInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// deriveWSAddress translates an HTTP base URL into the matching websocket
// endpoint URL (http→ws, https→wss) with the conventional /api/ws path.
// Returns "" when the HTTP address is empty or has no recognizable scheme.
func deriveWSAddress(httpAddress string) string {
	addr := strings.TrimRight(strings.TrimSpace(httpAddress), "/")
	switch {
	case strings.HasPrefix(addr, "https://"):
		return "wss://" + strings.TrimPrefix(addr, "https://") + "/api/ws"
	case strings.HasPrefix(addr, "http://"):
		return "ws://" + strings.TrimPrefix(addr, "http://") + "/api/ws"
	case addr != "":
		// bare host:port, assume plaintext
		return "ws://" + addr + "/api/ws"
	}
	return ""
}
