package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

type localMailRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalMailRepository(db *DB, logger *logger.Logger) LocalMailRepository {
	return &localMailRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localMailRepository) SaveMailItems(ctx context.Context, folder string, items ...models.MailItem) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		_, err := l.DB.ExecContext(ctx, saveSingleMailItem,
			item.ID,
			item.AccountID,
			folder,
			item.Subject,
			item.From,
			item.To,
			item.Snippet,
			[]byte(item.Payload),
			item.Unread,
			item.Deleted,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "mailRepository.SaveMailItems").
				Str("folder", folder).
				Str("id", item.ID).
				Msg("failed to execute upsert for mail item")
			return fmt.Errorf("failed to save mail item (id=%s): %w", item.ID, err)
		}
	}

	return nil
}

func (l *localMailRepository) GetMailItems(ctx context.Context, folder string) ([]models.MailItem, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getMailItemsByFolder, folder)
	if err != nil {
		log.Err(err).
			Str("func", "mailRepository.GetMailItems").
			Str("folder", folder).
			Msg("failed to execute query for getting mail items")
		return nil, fmt.Errorf("failed to query mail items: %w", err)
	}
	defer rows.Close()

	var items []models.MailItem

	for rows.Next() {
		var item models.MailItem

		scanErr := rows.Scan(
			&item.ID,
			&item.AccountID,
			&item.Folder,
			&item.Subject,
			&item.From,
			&item.To,
			&item.Snippet,
			&item.Payload,
			&item.Unread,
			&item.Deleted,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "mailRepository.GetMailItems").
				Str("folder", folder).
				Msg("failed to scan mail item row")
			return nil, fmt.Errorf("failed to scan mail item row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mailRepository.GetMailItems").
			Str("folder", folder).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating mail item rows: %w", rowsErr)
	}

	return items, nil
}

func (l *localMailRepository) CountMailItems(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := l.DB.QueryRowContext(ctx, countAllMailItems)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "mailRepository.CountMailItems").
			Msg("failed to count mail items")
		return 0, fmt.Errorf("failed to count mail items: %w", err)
	}

	return count, nil
}

func (l *localMailRepository) TrimToLimit(ctx context.Context, folder string, limit int) error {
	log := logger.FromContext(ctx)

	// limit <= 0 means unlimited retention
	if limit <= 0 {
		return nil
	}

	result, err := l.DB.ExecContext(ctx, trimFolderToLimit, folder, folder, limit)
	if err != nil {
		log.Err(err).
			Str("func", "mailRepository.TrimToLimit").
			Str("folder", folder).
			Int("limit", limit).
			Msg("failed to trim folder to retention limit")
		return fmt.Errorf("failed to trim folder %s: %w", folder, err)
	}

	if trimmed, raErr := result.RowsAffected(); raErr == nil && trimmed > 0 {
		log.Debug().
			Str("func", "mailRepository.TrimToLimit").
			Str("folder", folder).
			Int64("trimmed", trimmed).
			Msg("trimmed mail items beyond retention limit")
	}

	return nil
}
