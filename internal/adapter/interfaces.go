// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for request/response
// communication with the mail server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// orchestrator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]); the realtime push channel is a
// separate concern handled by the transport package.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the mail
// server's read and mutation endpoints. Implementations are responsible for
// serialisation, authentication header management, and mapping transport
// errors to the sentinel values in errors.go.
//
// FetchResource must be idempotent under retry: calling it again with the
// same watermark after a failure returns the same logical delta.
type ServerAdapter interface {
	// SetToken stores the bearer token used on authenticated requests.
	SetToken(token string)
	// Token returns the bearer token currently held by the adapter.
	Token() string

	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	// RefreshToken exchanges a refresh token for a fresh token pair.
	RefreshToken(ctx context.Context, refreshToken string) (models.Token, error)

	// FetchResource performs a paginated, checkpoint-filtered delta fetch of
	// one resource. since is the exclusive lower watermark; nil fetches the
	// full resource.
	FetchResource(ctx context.Context, resource string, since *time.Time) (models.FetchResult, error)
	// FetchAccountList returns all mailbox accounts visible to the user.
	FetchAccountList(ctx context.Context) ([]models.Account, error)

	// SendMessage submits an outgoing message to the server's mutation
	// endpoint.
	SendMessage(ctx context.Context, msg models.OutgoingMessage) error
}
