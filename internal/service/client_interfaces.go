package service

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/internal/transport"
	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// PushTransport is the realtime push connection surface the orchestrator
// depends on. The production implementation is [transport.Transport]; tests
// substitute stubs.
type PushTransport interface {
	// Connect establishes the push connection with the given bearer token.
	// It is a no-op when the token is empty.
	Connect(token string)

	// UpdateCredential tears down and re-establishes the connection with a
	// rotated token, even if currently connected.
	UpdateCredential(token string)

	// Reconnect forces a fresh attempt with the existing credential,
	// resetting the retry budget.
	Reconnect()

	// Disconnect closes the connection intentionally; no retry follows.
	Disconnect()

	// Status returns the current connection status.
	Status() models.ConnectionStatus

	// SubscribeStatus registers a connection-status listener. The returned
	// function removes the subscription.
	SubscribeStatus(fn func(models.ConnectionStatus)) func()

	// SubscribeSignals registers a listener for sync_required and domain
	// notification frames. The returned function removes the subscription.
	SubscribeSignals(fn func(models.Frame)) func()

	// OnAuthFailure registers the credential-refresh handler invoked when the
	// server rejects the current token. The returned function removes the
	// subscription.
	OnAuthFailure(fn func()) func()

	// Guard returns the refresh guard shared between the transport's
	// auth-failure path and the orchestrator's explicit refresh.
	Guard() *transport.RefreshGuard
}

// ClientSyncService is the sync orchestrator: the single component that
// decides when to sync, runs checkpointed delta fetches against the server,
// and publishes the observable [models.SyncState].
type ClientSyncService interface {
	// Initialize wires the orchestrator to the push transport, restores the
	// persisted sync position, connects, and kicks off the initial sync pass
	// unless the local cache is fresh enough. Calling it again while
	// initialized is a no-op.
	Initialize(ctx context.Context, token models.Token) error

	// Shutdown unsubscribes from the transport, disconnects, and resets the
	// connection-related state fields. The persisted last-sync position
	// survives shutdown.
	Shutdown()

	// ManualSync runs a user-invoked sync pass over all resources. Calls
	// inside the minimum inter-call interval are rejected with a rate-limit
	// result carrying the remaining wait; calls during a running pass are
	// rejected with an in-progress result.
	ManualSync(ctx context.Context) models.SyncResult

	// FullSync clears every stored checkpoint, refreshes the cached account
	// list, and refetches all resources from scratch.
	FullSync(ctx context.Context) models.SyncResult

	// RefreshTokenAndReconnect exchanges the refresh token for a fresh pair
	// and re-establishes the push connection with it. Returns false when a
	// refresh is already in progress or the exchange fails.
	RefreshTokenAndReconnect(ctx context.Context) bool

	// State returns the current published snapshot.
	State() models.SyncState

	// Subscribe registers a state listener. The listener is invoked
	// immediately with the current snapshot, then on every change. The
	// returned function removes the subscription.
	Subscribe(fn func(models.SyncState)) func()

	// SubscribeNotifications registers a listener for domain notification
	// frames (new_mail, settings_changed, unknown kinds) re-dispatched from
	// the push connection. The returned function removes the subscription.
	SubscribeNotifications(fn func(models.Frame)) func()
}

// ClientMailService exposes the cached mailbox data and the outbound
// mutation path, queueing sends locally when the server is unreachable.
type ClientMailService interface {
	// GetMailItems loads the cached, non-deleted records of one folder,
	// newest first.
	GetMailItems(ctx context.Context, folder string) ([]models.MailItem, error)

	// GetAccounts loads the cached account list.
	GetAccounts(ctx context.Context) ([]models.Account, error)

	// SendMessage submits msg to the server. When offline, or when the
	// server fails with a retriable error, the message is queued as a
	// pending operation for later replay instead.
	SendMessage(ctx context.Context, msg models.OutgoingMessage) error
}

// ClientAuthService handles credential exchange and session lifecycle.
type ClientAuthService interface {
	// Login exchanges credentials for a token pair and initializes the sync
	// orchestrator with it.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Logout shuts the sync orchestrator down.
	Logout()
}
