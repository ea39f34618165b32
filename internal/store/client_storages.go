package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
)

// ClientStorages groups all client-side cache repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// MailRepository is the SQLite-backed repository for cached mailbox
	// records, partitioned by folder.
	MailRepository LocalMailRepository

	// CheckpointRepository persists per-resource sync watermarks and the
	// global last-successful-pass row.
	CheckpointRepository LocalCheckpointRepository

	// PendingOpRepository queues offline mutations awaiting replay.
	PendingOpRepository LocalPendingOpRepository

	// AccountRepository caches the server's account list.
	AccountRepository LocalAccountRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the same connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		MailRepository:       NewLocalMailRepository(db, logger),
		CheckpointRepository: NewLocalCheckpointRepository(db, logger),
		PendingOpRepository:  NewLocalPendingOpRepository(db, logger),
		AccountRepository:    NewLocalAccountRepository(db, logger),
	}, nil
}
