package store

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalMailRepository is the low-level repository for cached mailbox records.
type LocalMailRepository interface {
	SaveMailItems(ctx context.Context, folder string, items ...models.MailItem) error
	GetMailItems(ctx context.Context, folder string) ([]models.MailItem, error)
	CountMailItems(ctx context.Context) (int64, error)
	TrimToLimit(ctx context.Context, folder string, limit int) error
}

// LocalCheckpointRepository persists per-resource sync watermarks, plus the
// global row recording the overall last successful pass.
type LocalCheckpointRepository interface {
	GetCheckpoint(ctx context.Context, resource string) (models.Checkpoint, error)
	SaveCheckpoint(ctx context.Context, checkpoint models.Checkpoint) error
	GetAllCheckpoints(ctx context.Context) ([]models.Checkpoint, error)
	ClearCheckpoints(ctx context.Context) error
}

// LocalPendingOpRepository queues mutations made while offline. The sync
// engine only counts and lists them; replay is owned by a separate process.
type LocalPendingOpRepository interface {
	EnqueuePendingOp(ctx context.Context, op models.PendingSyncOp) error
	GetAllPendingOps(ctx context.Context) ([]models.PendingSyncOp, error)
	RemovePendingOp(ctx context.Context, id string) error
	CountPendingOps(ctx context.Context) (int64, error)
}

// LocalAccountRepository caches the server's account list.
type LocalAccountRepository interface {
	ReplaceAccounts(ctx context.Context, accounts []models.Account) error
	GetAllAccounts(ctx context.Context) ([]models.Account, error)
}
