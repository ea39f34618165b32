package models

import (
	"encoding/json"
	"time"
)

// PendingOpType classifies a queued offline mutation.
type PendingOpType string

const (
	PendingOpCreate PendingOpType = "create"
	PendingOpUpdate PendingOpType = "update"
	PendingOpDelete PendingOpType = "delete"
)

// PendingSyncOp is a mutation attempted while offline, queued in the local
// cache until an offline-replay process pushes it to the server. The sync
// engine only counts these (SyncState.PendingChanges); replay itself is
// handled outside this engine.
type PendingSyncOp struct {
	ID        string          `json:"id"`
	Type      PendingOpType   `json:"type"`
	Resource  string          `json:"resource"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Retries   int             `json:"retries"`
}
