// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSingleMailItem = `
		INSERT INTO mail_items (
			id,
			account_id,
			folder,
			subject,
			sender,
			recipient,
			snippet,
			payload,
			unread,
			deleted,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (folder, id) DO UPDATE SET
			account_id = excluded.account_id,
			subject    = excluded.subject,
			sender     = excluded.sender,
			recipient  = excluded.recipient,
			snippet    = excluded.snippet,
			payload    = excluded.payload,
			unread     = excluded.unread,
			deleted    = excluded.deleted,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	getMailItemsByFolder = `
		SELECT
			id,
			account_id,
			folder,
			subject,
			sender,
			recipient,
			snippet,
			payload,
			unread,
			deleted,
			created_at,
			updated_at
		FROM mail_items
		WHERE folder = ? AND deleted = FALSE
		ORDER BY updated_at DESC;`

	countAllMailItems = `
		SELECT COUNT(*) FROM mail_items;`

	trimFolderToLimit = `
		DELETE FROM mail_items
		WHERE folder = ?
		  AND id NOT IN (
			SELECT id FROM mail_items
			WHERE folder = ?
			ORDER BY updated_at DESC
			LIMIT ?
		  );`

	getSingleCheckpoint = `
		SELECT resource, last_synced_at
		FROM sync_checkpoints
		WHERE resource = ?;`

	saveSingleCheckpoint = `
		INSERT INTO sync_checkpoints (resource, last_synced_at)
		VALUES (?, ?)
		ON CONFLICT (resource) DO UPDATE SET
			last_synced_at = excluded.last_synced_at;`

	getAllCheckpoints = `
		SELECT resource, last_synced_at
		FROM sync_checkpoints;`

	clearAllCheckpoints = `
		DELETE FROM sync_checkpoints;`

	enqueueSinglePendingOp = `
		INSERT INTO pending_ops (
			id,
			type,
			resource,
			record_id,
			payload,
			created_at,
			retries
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	getAllPendingOps = `
		SELECT
			id,
			type,
			resource,
			record_id,
			payload,
			created_at,
			retries
		FROM pending_ops
		ORDER BY created_at ASC;`

	removeSinglePendingOp = `
		DELETE FROM pending_ops
		WHERE id = ?;`

	countAllPendingOps = `
		SELECT COUNT(*) FROM pending_ops;`

	deleteAllAccounts = `
		DELETE FROM accounts;`

	saveSingleAccount = `
		INSERT INTO accounts (
			id,
			email,
			display_name,
			provider,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?);`

	getAllAccounts = `
		SELECT
			id,
			email,
			display_name,
			provider,
			created_at,
			updated_at
		FROM accounts
		ORDER BY email ASC;`
)
