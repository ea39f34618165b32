package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

type localCheckpointRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCheckpointRepository(db *DB, logger *logger.Logger) LocalCheckpointRepository {
	return &localCheckpointRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCheckpointRepository) GetCheckpoint(ctx context.Context, resource string) (models.Checkpoint, error) {
	log := logger.FromContext(ctx)

	var checkpoint models.Checkpoint
	row := l.DB.QueryRowContext(ctx, getSingleCheckpoint, resource)
	if err := row.Scan(&checkpoint.Resource, &checkpoint.LastSyncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Checkpoint{}, ErrCheckpointNotFound
		}
		log.Err(err).
			Str("func", "checkpointRepository.GetCheckpoint").
			Str("resource", resource).
			Msg("failed to scan checkpoint row")
		return models.Checkpoint{}, fmt.Errorf("failed to get checkpoint (resource=%s): %w", resource, err)
	}

	return checkpoint, nil
}

func (l *localCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint models.Checkpoint) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveSingleCheckpoint, checkpoint.Resource, checkpoint.LastSyncedAt)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.SaveCheckpoint").
			Str("resource", checkpoint.Resource).
			Time("last_synced_at", checkpoint.LastSyncedAt).
			Msg("failed to execute upsert for checkpoint")
		return fmt.Errorf("failed to save checkpoint (resource=%s): %w", checkpoint.Resource, err)
	}

	return nil
}

func (l *localCheckpointRepository) GetAllCheckpoints(ctx context.Context) ([]models.Checkpoint, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCheckpoints)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.GetAllCheckpoints").
			Msg("failed to execute query for getting all checkpoints")
		return nil, fmt.Errorf("failed to query all checkpoints: %w", err)
	}
	defer rows.Close()

	var checkpoints []models.Checkpoint

	for rows.Next() {
		var checkpoint models.Checkpoint

		if scanErr := rows.Scan(&checkpoint.Resource, &checkpoint.LastSyncedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "checkpointRepository.GetAllCheckpoints").
				Msg("failed to scan checkpoint row")
			return nil, fmt.Errorf("failed to scan checkpoint row: %w", scanErr)
		}

		checkpoints = append(checkpoints, checkpoint)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "checkpointRepository.GetAllCheckpoints").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating checkpoint rows: %w", rowsErr)
	}

	return checkpoints, nil
}

func (l *localCheckpointRepository) ClearCheckpoints(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, clearAllCheckpoints)
	if err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.ClearCheckpoints").
			Msg("failed to clear checkpoints")
		return fmt.Errorf("failed to clear checkpoints: %w", err)
	}

	return nil
}
