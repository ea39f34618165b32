package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
	"github.com/google/uuid"
)

// outboxResource is the pending-op partition for queued outgoing messages.
const outboxResource = "outbox"

type clientMailService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	push     PushTransport
	logger   *logger.Logger

	// pendingChanged, when set, is invoked after the pending-op queue grows
	// so the published PendingChanges count stays current between passes.
	pendingChanged func()
}

func NewClientMailService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, push PushTransport, pendingChanged func(), log *logger.Logger) ClientMailService {
	return &clientMailService{
		storages:       storages,
		adapter:        serverAdapter,
		push:           push,
		logger:         log,
		pendingChanged: pendingChanged,
	}
}

func (m *clientMailService) GetMailItems(ctx context.Context, folder string) ([]models.MailItem, error) {
	return m.storages.MailRepository.GetMailItems(ctx, folder)
}

func (m *clientMailService) GetAccounts(ctx context.Context) ([]models.Account, error) {
	return m.storages.AccountRepository.GetAllAccounts(ctx)
}

// SendMessage tries the server first while the push connection is live;
// offline, or on a retriable server failure, the message is queued locally
// for later replay instead of being lost.
func (m *clientMailService) SendMessage(ctx context.Context, msg models.OutgoingMessage) error {
	if m.push.Status().IsLive() {
		err := m.adapter.SendMessage(ctx, msg)
		if err == nil {
			return nil
		}
		if !isRetriableSendError(err) {
			return fmt.Errorf("send message: %w", err)
		}
		m.logger.Warn().Err(err).
			Str("func", "clientMailService.SendMessage").
			Msg("send failed with retriable error, queueing message")
	}

	return m.enqueueOutgoing(ctx, msg)
}

func (m *clientMailService) enqueueOutgoing(ctx context.Context, msg models.OutgoingMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode outgoing message: %w", err)
	}

	op := models.PendingSyncOp{
		ID:        uuid.NewString(),
		Type:      models.PendingOpCreate,
		Resource:  outboxResource,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err = m.storages.PendingOpRepository.EnqueuePendingOp(ctx, op); err != nil {
		return fmt.Errorf("queue outgoing message: %w", err)
	}

	m.logger.Info().
		Str("func", "clientMailService.SendMessage").
		Str("op_id", op.ID).
		Msg("outgoing message queued for replay")

	if m.pendingChanged != nil {
		m.pendingChanged()
	}

	return nil
}

// isRetriableSendError reports whether a failed send is worth queueing for
// replay. Client-side rejections (bad request, auth, missing account) would
// fail the same way on replay, so they surface to the caller instead.
func isRetriableSendError(err error) bool {
	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return false
	}
	return true
}
