package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

type localAccountRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalAccountRepository(db *DB, logger *logger.Logger) LocalAccountRepository {
	return &localAccountRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAccounts swaps the cached account list atomically: the old rows and
// the new ones never coexist for readers.
func (l *localAccountRepository) ReplaceAccounts(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.ReplaceAccounts").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllAccounts); err != nil {
		log.Err(err).
			Str("func", "accountRepository.ReplaceAccounts").
			Msg("failed to delete cached accounts")
		return fmt.Errorf("failed to delete cached accounts: %w", err)
	}

	for _, account := range accounts {
		_, err = tx.ExecContext(ctx, saveSingleAccount,
			account.ID,
			account.Email,
			account.DisplayName,
			account.Provider,
			account.CreatedAt,
			account.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "accountRepository.ReplaceAccounts").
				Str("id", account.ID).
				Msg("failed to insert account")
			return fmt.Errorf("failed to insert account (id=%s): %w", account.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountRepository.ReplaceAccounts").
			Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (l *localAccountRepository) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllAccounts)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.GetAllAccounts").
			Msg("failed to execute query for getting accounts")
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account

	for rows.Next() {
		var account models.Account

		scanErr := rows.Scan(
			&account.ID,
			&account.Email,
			&account.DisplayName,
			&account.Provider,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountRepository.GetAllAccounts").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("failed to scan account row: %w", scanErr)
		}

		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "accountRepository.GetAllAccounts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating account rows: %w", rowsErr)
	}

	return accounts, nil
}
