// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/schedule"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

// clientSyncService orchestrates delta synchronisation of the local mailbox
// cache: it consumes push signals, coalesces them through a debounce slot,
// runs at most one checkpointed fetch pass at a time, and publishes the
// resulting SyncState snapshots.
type clientSyncService struct {
	cfg      config.ClientSync
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	push     PushTransport
	logger   *logger.Logger

	state    *statePublisher
	debounce schedule.Slot

	mu             sync.Mutex
	initialized    bool
	isSyncing      bool
	token          models.Token
	lastManualSync time.Time
	pendingTables  map[string]struct{}
	pendingAll     bool
	pendingSince   *time.Time
	unsubscribes   []func()

	noteMu     sync.Mutex
	nextNoteID int
	noteSubs   map[int]func(models.Frame)
}

func NewClientSyncService(cfg config.ClientSync, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, push PushTransport, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		cfg:           cfg,
		storages:      storages,
		adapter:       serverAdapter,
		push:          push,
		logger:        log,
		state:         newStatePublisher(log),
		pendingTables: make(map[string]struct{}),
		noteSubs:      make(map[int]func(models.Frame)),
	}
}

func (s *clientSyncService) Initialize(ctx context.Context, token models.Token) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.token = token
	s.mu.Unlock()

	lastSync, err := s.loadPersistedLastSync(ctx)
	if err != nil {
		return err
	}

	pending, err := s.storages.PendingOpRepository.CountPendingOps(ctx)
	if err != nil {
		return fmt.Errorf("count pending operations: %w", err)
	}

	s.state.publish(func(st *models.SyncState) {
		st.LastSync = lastSync
		st.PendingChanges = int(pending)
	})

	unsubStatus := s.push.SubscribeStatus(func(status models.ConnectionStatus) {
		s.state.publish(func(st *models.SyncState) {
			st.ConnectionStatus = status
			st.IsOnline = status.IsLive()
		})
	})
	unsubSignals := s.push.SubscribeSignals(s.handleSignal)
	unsubAuth := s.push.OnAuthFailure(func() {
		if !s.RefreshTokenAndReconnect(context.Background()) {
			s.logger.Warn().Str("func", "clientSyncService.Initialize").Msg("credential refresh did not complete")
		}
	})

	s.mu.Lock()
	s.unsubscribes = append(s.unsubscribes, unsubStatus, unsubSignals, unsubAuth)
	s.mu.Unlock()

	if token.AccessToken != "" {
		s.adapter.SetToken(token.AccessToken)
		s.push.Connect(token.AccessToken)
	}

	if s.shouldSkipInitialSync(ctx, lastSync) {
		s.logger.Info().
			Str("func", "clientSyncService.Initialize").
			Msg("local cache is fresh, skipping initial sync")
		return nil
	}

	go s.runPass(context.Background(), nil, nil, false)

	return nil
}

func (s *clientSyncService) Shutdown() {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = false
	unsubs := s.unsubscribes
	s.unsubscribes = nil
	s.pendingTables = make(map[string]struct{})
	s.pendingAll = false
	s.pendingSince = nil
	s.mu.Unlock()

	s.debounce.Stop()
	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
	s.push.Disconnect()

	// LastSync survives shutdown: only the connection fields reset
	s.state.publish(func(st *models.SyncState) {
		st.IsOnline = false
		st.ConnectionStatus = models.StatusDisconnected
		st.IsSyncing = false
	})
}

func (s *clientSyncService) State() models.SyncState {
	return s.state.Current()
}

func (s *clientSyncService) Subscribe(fn func(models.SyncState)) func() {
	return s.state.Subscribe(fn)
}

func (s *clientSyncService) SubscribeNotifications(fn func(models.Frame)) func() {
	s.noteMu.Lock()
	defer s.noteMu.Unlock()

	id := s.nextNoteID
	s.nextNoteID++
	s.noteSubs[id] = fn

	return func() {
		s.noteMu.Lock()
		defer s.noteMu.Unlock()
		delete(s.noteSubs, id)
	}
}

// loadPersistedLastSync restores the overall last-successful-pass time from
// the global checkpoint row, so a restart does not look like never-synced.
func (s *clientSyncService) loadPersistedLastSync(ctx context.Context) (*time.Time, error) {
	checkpoint, err := s.storages.CheckpointRepository.GetCheckpoint(ctx, models.GlobalResource)
	if err != nil {
		if errors.Is(err, store.ErrCheckpointNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load persisted sync position: %w", err)
	}

	at := checkpoint.LastSyncedAt
	return &at, nil
}

// shouldSkipInitialSync reports whether the startup fetch can be skipped:
// the cache must be non-empty and the persisted last sync fresher than the
// configured grace window.
func (s *clientSyncService) shouldSkipInitialSync(ctx context.Context, lastSync *time.Time) bool {
	if lastSync == nil || time.Since(*lastSync) > s.cfg.InitialSyncGrace {
		return false
	}

	count, err := s.storages.MailRepository.CountMailItems(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.shouldSkipInitialSync").
			Msg("could not count cached items, forcing initial sync")
		return false
	}

	return count > 0
}

// handleSignal classifies one push frame: sync requests are queued through
// the debounce slot, domain notifications are re-dispatched to notification
// subscribers without consuming sync capacity.
func (s *clientSyncService) handleSignal(frame models.Frame) {
	if frame.IsSyncRequired() {
		s.queueSync(frame.Tables, frame.Since)
		return
	}
	if frame.IsNotification() {
		s.dispatchNotification(frame)
	}
}

// queueSync merges one sync request into the pending set and (re)arms the
// debounce window: a burst of signals produces a single pass covering the
// union of their tables, fetched from the earliest of their floors.
func (s *clientSyncService) queueSync(tables []string, since *time.Time) {
	s.mu.Lock()
	if len(tables) == 0 {
		s.pendingAll = true
	} else if !s.pendingAll {
		for _, table := range tables {
			s.pendingTables[table] = struct{}{}
		}
	}
	if since != nil && (s.pendingSince == nil || since.Before(*s.pendingSince)) {
		floor := *since
		s.pendingSince = &floor
	}
	s.mu.Unlock()

	s.debounce.Schedule(s.cfg.DebounceWindow, s.flushPending)
}

// flushPending consumes the coalesced request atomically and runs the pass.
func (s *clientSyncService) flushPending() {
	s.mu.Lock()
	all := s.pendingAll
	floor := s.pendingSince
	var tables []string
	if !all {
		for table := range s.pendingTables {
			tables = append(tables, table)
		}
	}
	s.pendingTables = make(map[string]struct{})
	s.pendingAll = false
	s.pendingSince = nil
	s.mu.Unlock()

	s.runPass(context.Background(), tables, floor, false)
}

func (s *clientSyncService) dispatchNotification(frame models.Frame) {
	s.noteMu.Lock()
	subs := make([]func(models.Frame), 0, len(s.noteSubs))
	for _, fn := range s.noteSubs {
		subs = append(subs, fn)
	}
	s.noteMu.Unlock()

	for _, fn := range subs {
		s.safeDispatch(fn, frame)
	}
}

func (s *clientSyncService) safeDispatch(fn func(models.Frame), frame models.Frame) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Any("panic", r).Str("func", "clientSyncService.safeDispatch").Msg("recovered notification subscriber panic")
		}
	}()
	fn(frame)
}
