// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MailItem is a single cached mailbox record. The client treats Payload as an
// opaque server-defined document; only the envelope fields needed for listing,
// retention trimming, and checkpoint computation are typed.
type MailItem struct {
	// ID is the server-side identifier of the record, unique per resource.
	ID string `json:"id"`

	// AccountID identifies the mailbox account the record belongs to.
	AccountID string `json:"account_id"`

	// Folder is the mailbox folder name (e.g. "inbox", "sent").
	Folder string `json:"folder,omitempty"`

	Subject string `json:"subject,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Snippet string `json:"snippet,omitempty"`

	// Payload carries the full server representation of the record.
	// It is stored verbatim and never interpreted by the sync engine.
	Payload json.RawMessage `json:"payload,omitempty"`

	Unread  bool `json:"unread"`
	Deleted bool `json:"deleted"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the server watermark of the record. The maximum UpdatedAt
	// across a fetched batch becomes the resource's next checkpoint.
	UpdatedAt time.Time `json:"updated_at"`
}

// FetchResult is the aggregated outcome of one delta fetch against a single
// resource: all pages of records changed since the requested watermark, plus
// an optional server hint for the next checkpoint.
type FetchResult struct {
	// Items holds every record returned across all pages, server order.
	Items []MailItem `json:"items"`

	// NextCheckpointHint, when present, is the server's suggestion for the
	// next lower bound. It is authoritative only when the batch is empty;
	// otherwise the maximum item watermark wins.
	NextCheckpointHint *time.Time `json:"next_checkpoint_hint,omitempty"`
}

// Account is a mailbox account known to the server.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OutgoingMessage is the payload of a send request against the server's
// mutation endpoint.
type OutgoingMessage struct {
	AccountID string `json:"account_id"`
	To        string `json:"to"`
	Cc        string `json:"cc,omitempty"`
	Bcc       string `json:"bcc,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
