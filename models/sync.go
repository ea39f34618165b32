// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ConnectionStatus describes the state of the realtime push connection.
type ConnectionStatus string

const (
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
	StatusReconnecting ConnectionStatus = "reconnecting"
	StatusAuthFailed   ConnectionStatus = "auth_failed"
)

// IsLive reports whether the status represents an established, authenticated
// connection.
func (s ConnectionStatus) IsLive() bool {
	return s == StatusConnected
}

// SyncState is the single observable state object published by the sync
// orchestrator. It is a value type: every mutation replaces the whole snapshot
// and republishes it, so subscribers never observe a torn partial update.
//
// Invariant: LastSync is advanced only on a fully successful sync pass and is
// never set in the same transition as a non-empty LastSyncError.
type SyncState struct {
	// IsOnline reflects whether the push connection is currently live.
	IsOnline bool `json:"is_online"`

	// ConnectionStatus is the transport's connection state.
	ConnectionStatus ConnectionStatus `json:"connection_status"`

	// LastSync is the completion time of the most recent fully successful
	// sync pass, nil if no pass has ever succeeded.
	LastSync *time.Time `json:"last_sync,omitempty"`

	// LastSyncError holds the error string of the most recent failed pass,
	// empty when the last pass succeeded.
	LastSyncError string `json:"last_sync_error,omitempty"`

	// PendingChanges is the number of queued offline mutations awaiting
	// replay against the server.
	PendingChanges int `json:"pending_changes"`

	// IsSyncing reports whether a sync pass is currently in flight.
	IsSyncing bool `json:"is_syncing"`
}

// GlobalResource is the checkpoint row that records the overall last
// successful sync time, as opposed to per-resource watermarks.
const GlobalResource = "global"

// Checkpoint marks how far a resource's incremental sync has progressed.
// LastSyncedAt is the lower bound for the next delta fetch of that resource.
type Checkpoint struct {
	Resource     string    `json:"resource"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// SyncResult is returned by every public sync operation. Contention and
// rate-limit outcomes are reported here as structured failures rather than
// errors, because they are expected under normal operation.
type SyncResult struct {
	Success bool     `json:"success"`
	Tables  []string `json:"tables,omitempty"`
	Updated int      `json:"updated"`
	Deleted int      `json:"deleted"`
	Error   string   `json:"error,omitempty"`
}

// SyncInProgressResult reports that a pass was rejected because another pass
// is already in flight.
func SyncInProgressResult() SyncResult {
	return SyncResult{Success: false, Error: "sync already in progress"}
}

// RateLimitedResult reports that a manual sync was called inside the minimum
// inter-call interval, carrying the remaining wait.
func RateLimitedResult(wait time.Duration) SyncResult {
	return SyncResult{
		Success: false,
		Error:   fmt.Sprintf("manual sync rate limited, retry in %s", wait.Round(time.Second)),
	}
}
