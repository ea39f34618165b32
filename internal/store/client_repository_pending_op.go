package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

type localPendingOpRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalPendingOpRepository(db *DB, logger *logger.Logger) LocalPendingOpRepository {
	return &localPendingOpRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localPendingOpRepository) EnqueuePendingOp(ctx context.Context, op models.PendingSyncOp) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, enqueueSinglePendingOp,
		op.ID,
		string(op.Type),
		op.Resource,
		op.RecordID,
		[]byte(op.Payload),
		op.CreatedAt,
		op.Retries,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpRepository.EnqueuePendingOp").
			Str("id", op.ID).
			Str("resource", op.Resource).
			Msg("failed to enqueue pending operation")
		return fmt.Errorf("failed to enqueue pending operation (id=%s): %w", op.ID, err)
	}

	return nil
}

func (l *localPendingOpRepository) GetAllPendingOps(ctx context.Context) ([]models.PendingSyncOp, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllPendingOps)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpRepository.GetAllPendingOps").
			Msg("failed to execute query for getting pending operations")
		return nil, fmt.Errorf("failed to query pending operations: %w", err)
	}
	defer rows.Close()

	var ops []models.PendingSyncOp

	for rows.Next() {
		var op models.PendingSyncOp

		scanErr := rows.Scan(
			&op.ID,
			&op.Type,
			&op.Resource,
			&op.RecordID,
			&op.Payload,
			&op.CreatedAt,
			&op.Retries,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingOpRepository.GetAllPendingOps").
				Msg("failed to scan pending operation row")
			return nil, fmt.Errorf("failed to scan pending operation row: %w", scanErr)
		}

		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingOpRepository.GetAllPendingOps").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (l *localPendingOpRepository) RemovePendingOp(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, removeSinglePendingOp, id)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpRepository.RemovePendingOp").
			Str("id", id).
			Msg("failed to remove pending operation")
		return fmt.Errorf("failed to remove pending operation (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpRepository.RemovePendingOp").
			Str("id", id).
			Msg("failed to get rows affected after remove")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		return ErrPendingOpNotFound
	}

	return nil
}

func (l *localPendingOpRepository) CountPendingOps(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := l.DB.QueryRowContext(ctx, countAllPendingOps)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "pendingOpRepository.CountPendingOps").
			Msg("failed to count pending operations")
		return 0, fmt.Errorf("failed to count pending operations: %w", err)
	}

	return count, nil
}
