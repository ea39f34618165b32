// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FrameType tags the kind of a JSON frame exchanged over the push connection.
type FrameType string

// Server→client frame kinds.
const (
	FrameConnected       FrameType = "connected"
	FrameHeartbeat       FrameType = "heartbeat"
	FramePong            FrameType = "pong"
	FrameSyncRequired    FrameType = "sync_required"
	FrameNewMail         FrameType = "new_mail"
	FrameSettingsChanged FrameType = "settings_changed"
	FrameError           FrameType = "error"
	FrameAuthFailed      FrameType = "auth_failed"
)

// Client→server frame kinds.
const (
	FrameAuth FrameType = "auth"
	FramePing FrameType = "ping"
)

// Frame is the decoded form of one inbound server frame. Each kind uses only
// its own fields; accessor methods expose the per-kind payloads so callers
// never have to reason about which optional field belongs to which kind.
type Frame struct {
	Type FrameType `json:"type"`

	// Message accompanies connected/error/auth_failed frames.
	Message string `json:"message,omitempty"`

	// Tables and Since belong to sync_required frames. Since is an optional
	// low-watermark hint: the earliest change the server knows the client is
	// missing.
	Tables []string   `json:"tables,omitempty"`
	Since  *time.Time `json:"since,omitempty"`

	// Data carries the opaque payload of domain notifications (new_mail,
	// settings_changed, and unknown forward-compatible kinds).
	Data json.RawMessage `json:"data,omitempty"`
}

// DecodeFrame parses one inbound frame. Frames without a type are rejected;
// unknown types are preserved so they can be forwarded as notifications.
func DecodeFrame(raw []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	if f.Type == "" {
		return Frame{}, fmt.Errorf("frame missing type")
	}
	return f, nil
}

// IsSyncRequired reports whether the frame requests a delta sync.
func (f Frame) IsSyncRequired() bool {
	return f.Type == FrameSyncRequired
}

// IsNotification reports whether the frame is a domain notification that the
// orchestrator re-dispatches as an application event without consuming sync
// capacity. Unknown kinds are treated as notifications.
func (f Frame) IsNotification() bool {
	switch f.Type {
	case FrameConnected, FrameHeartbeat, FramePong, FrameSyncRequired, FrameError, FrameAuthFailed, FrameAuth, FramePing:
		return false
	}
	return true
}

// AuthFrame is the client authentication frame sent right after the
// connection opens.
type AuthFrame struct {
	Type  FrameType `json:"type"`
	Token string    `json:"token"`
}

// NewAuthFrame builds the auth frame for the given bearer token.
func NewAuthFrame(token string) AuthFrame {
	return AuthFrame{Type: FrameAuth, Token: token}
}

// PingFrame is the client liveness reply to a server heartbeat.
type PingFrame struct {
	Type FrameType `json:"type"`
}

// NewPingFrame builds a ping frame.
func NewPingFrame() PingFrame {
	return PingFrame{Type: FramePing}
}
