// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
	"github.com/MKhiriev/go-mail-sync/models"
)

// proactiveRefreshWindow is how close to expiry the access token may get
// before a pass rotates it ahead of the server rejecting requests mid-pass.
const proactiveRefreshWindow = 2 * time.Minute

func (s *clientSyncService) ManualSync(ctx context.Context) models.SyncResult {
	s.mu.Lock()
	now := time.Now()
	if !s.lastManualSync.IsZero() {
		if wait := s.cfg.ManualSyncMinInterval - now.Sub(s.lastManualSync); wait > 0 {
			s.mu.Unlock()
			return models.RateLimitedResult(wait)
		}
	}
	if s.isSyncing {
		s.mu.Unlock()
		return models.SyncInProgressResult()
	}
	s.isSyncing = true
	s.lastManualSync = now
	s.mu.Unlock()

	return s.executePass(ctx, nil, nil, false)
}

func (s *clientSyncService) FullSync(ctx context.Context) models.SyncResult {
	if !s.beginPass() {
		return models.SyncInProgressResult()
	}
	return s.executePass(ctx, nil, nil, true)
}

// runPass acquires the single sync slot and executes one pass; a pass already
// in flight rejects the new one instead of queueing it.
func (s *clientSyncService) runPass(ctx context.Context, tables []string, floor *time.Time, full bool) models.SyncResult {
	if !s.beginPass() {
		s.logger.Debug().Str("func", "clientSyncService.runPass").Msg("sync already in progress, rejecting pass")
		return models.SyncInProgressResult()
	}
	return s.executePass(ctx, tables, floor, full)
}

func (s *clientSyncService) beginPass() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isSyncing {
		return false
	}
	s.isSyncing = true
	return true
}

// executePass runs one sync pass over the resolved resources. The caller must
// already hold the sync slot (beginPass).
//
// The pass aborts on the first resource failure: watermarks advanced by the
// resources that already succeeded are preserved, so the retry only refetches
// what is still missing. LastSync and the global checkpoint row move only
// when every resource succeeded.
func (s *clientSyncService) executePass(ctx context.Context, tables []string, floor *time.Time, full bool) models.SyncResult {
	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
		s.state.publish(func(st *models.SyncState) { st.IsSyncing = false })
	}()

	s.state.publish(func(st *models.SyncState) { st.IsSyncing = true })

	s.maybeRefreshCredential(ctx)

	resources := s.resolveResources(tables)
	result := models.SyncResult{Tables: resources}

	if full {
		if err := s.prepareFullRefresh(ctx); err != nil {
			return s.failPass(result, err)
		}
	}

	for _, resource := range resources {
		updated, deleted, err := s.syncResource(ctx, resource, floor)
		if err != nil {
			return s.failPass(result, err)
		}
		result.Updated += updated
		result.Deleted += deleted
	}

	completedAt := time.Now().UTC()
	globalRow := models.Checkpoint{Resource: models.GlobalResource, LastSyncedAt: completedAt}
	if err := s.storages.CheckpointRepository.SaveCheckpoint(ctx, globalRow); err != nil {
		return s.failPass(result, fmt.Errorf("persist sync position: %w", err))
	}

	s.refreshPendingCount(ctx)

	s.state.publish(func(st *models.SyncState) {
		st.LastSync = &completedAt
		st.LastSyncError = ""
	})

	result.Success = true
	s.logger.Info().
		Str("func", "clientSyncService.executePass").
		Strs("resources", resources).
		Int("updated", result.Updated).
		Int("deleted", result.Deleted).
		Msg("sync pass completed")

	return result
}

func (s *clientSyncService) failPass(result models.SyncResult, err error) models.SyncResult {
	s.logger.Warn().Err(err).Str("func", "clientSyncService.executePass").Msg("sync pass aborted")

	msg := err.Error()
	s.state.publish(func(st *models.SyncState) { st.LastSyncError = msg })

	result.Success = false
	result.Error = msg
	return result
}

// prepareFullRefresh clears every stored watermark and replaces the cached
// account list, so the following fetch loop rebuilds the cache from scratch.
func (s *clientSyncService) prepareFullRefresh(ctx context.Context) error {
	if err := s.storages.CheckpointRepository.ClearCheckpoints(ctx); err != nil {
		return fmt.Errorf("clear checkpoints: %w", err)
	}

	accounts, err := s.adapter.FetchAccountList(ctx)
	if err != nil {
		return fmt.Errorf("fetch account list: %w", err)
	}
	if err := s.storages.AccountRepository.ReplaceAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("replace cached accounts: %w", err)
	}

	return nil
}

// syncResource runs one checkpointed delta fetch: effective floor is the
// earlier of the stored watermark and the caller-provided floor, a resource
// never synced before is fetched in full, and the watermark only ever moves
// forward.
func (s *clientSyncService) syncResource(ctx context.Context, resource string, floor *time.Time) (updated, deleted int, err error) {
	var stored time.Time
	checkpoint, err := s.storages.CheckpointRepository.GetCheckpoint(ctx, resource)
	switch {
	case err == nil:
		stored = checkpoint.LastSyncedAt
	case errors.Is(err, store.ErrCheckpointNotFound):
		// never synced: full fetch regardless of any caller floor
	default:
		return 0, 0, fmt.Errorf("load checkpoint for %s: %w", resource, err)
	}

	var since *time.Time
	if !stored.IsZero() {
		from := stored
		if floor != nil && floor.Before(from) {
			from = *floor
		}
		since = &from
	}

	fetched, err := s.adapter.FetchResource(ctx, resource, since)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch %s: %w", resource, err)
	}

	if len(fetched.Items) > 0 {
		if err = s.storages.MailRepository.SaveMailItems(ctx, resource, fetched.Items...); err != nil {
			return 0, 0, fmt.Errorf("cache %s items: %w", resource, err)
		}
		if err = s.storages.MailRepository.TrimToLimit(ctx, resource, s.cfg.RetentionLimit); err != nil {
			return 0, 0, fmt.Errorf("trim %s cache: %w", resource, err)
		}
	}

	next := stored
	for _, item := range fetched.Items {
		if item.UpdatedAt.After(next) {
			next = item.UpdatedAt
		}
		if item.Deleted {
			deleted++
		} else {
			updated++
		}
	}

	// the server hint is authoritative only for an empty batch
	if len(fetched.Items) == 0 && fetched.NextCheckpointHint != nil && fetched.NextCheckpointHint.After(next) {
		next = *fetched.NextCheckpointHint
	}

	if next.After(stored) {
		save := models.Checkpoint{Resource: resource, LastSyncedAt: next}
		if err = s.storages.CheckpointRepository.SaveCheckpoint(ctx, save); err != nil {
			return 0, 0, fmt.Errorf("save checkpoint for %s: %w", resource, err)
		}
	}

	return updated, deleted, nil
}

// resolveResources maps requested table names onto the configured resource
// set: the empty request means everything, and a request naming only unknown
// tables falls back to everything rather than silently syncing nothing.
func (s *clientSyncService) resolveResources(tables []string) []string {
	all := append([]string(nil), s.cfg.Resources...)
	if len(tables) == 0 {
		return all
	}

	known := make(map[string]struct{}, len(all))
	for _, resource := range all {
		known[resource] = struct{}{}
	}

	var resources []string
	for _, table := range tables {
		if _, ok := known[table]; ok {
			resources = append(resources, table)
		}
	}
	if len(resources) == 0 {
		return all
	}
	return resources
}

func (s *clientSyncService) refreshPendingCount(ctx context.Context) {
	pending, err := s.storages.PendingOpRepository.CountPendingOps(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.refreshPendingCount").
			Msg("could not refresh pending operation count")
		return
	}

	s.state.publish(func(st *models.SyncState) { st.PendingChanges = int(pending) })
}

// maybeRefreshCredential rotates the token pair before a pass when the access
// token is about to expire, so the fetch loop does not start with a credential
// the server is about to reject. Best effort: a failed refresh leaves the
// current token in place and the pass proceeds.
func (s *clientSyncService) maybeRefreshCredential(ctx context.Context) {
	s.mu.Lock()
	access := s.token.AccessToken
	refresh := s.token.RefreshToken
	s.mu.Unlock()

	if access == "" || refresh == "" {
		return
	}
	if !utils.TokenExpiresWithin(access, proactiveRefreshWindow) {
		return
	}

	if !s.RefreshTokenAndReconnect(ctx) {
		s.logger.Debug().
			Str("func", "clientSyncService.maybeRefreshCredential").
			Msg("proactive token refresh did not complete")
	}
}

// RefreshTokenAndReconnect exchanges the refresh token for a fresh pair and
// rotates the push connection onto it. The shared guard serialises this with
// the transport's auth-failure path, so a rejected frame and an explicit call
// cannot run two refreshes at once.
func (s *clientSyncService) RefreshTokenAndReconnect(ctx context.Context) bool {
	guard := s.push.Guard()
	if !guard.Begin() {
		s.logger.Debug().Str("func", "clientSyncService.RefreshTokenAndReconnect").Msg("refresh already in progress")
		return false
	}
	defer guard.End()

	s.mu.Lock()
	refresh := s.token.RefreshToken
	s.mu.Unlock()

	if refresh == "" {
		s.logger.Warn().Str("func", "clientSyncService.RefreshTokenAndReconnect").Msg("no refresh token available, re-login required")
		return false
	}

	fresh, err := s.adapter.RefreshToken(ctx, refresh)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.RefreshTokenAndReconnect").Msg("token refresh failed")
		return false
	}

	s.mu.Lock()
	s.token = fresh
	s.mu.Unlock()

	s.adapter.SetToken(fresh.AccessToken)
	s.push.UpdateCredential(fresh.AccessToken)

	return true
}
