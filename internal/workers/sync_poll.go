// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

const defaultPollInterval = 5 * time.Minute

// syncInvoker is the slice of the sync orchestrator the poll worker needs.
type syncInvoker interface {
	ManualSync(ctx context.Context) models.SyncResult
}

// connectionSource reports the current push connection status.
type connectionSource interface {
	Status() models.ConnectionStatus
}

// SyncPollWorker is the polled fallback for the realtime push channel: it
// runs a sync pass on a ticker, but only while the push connection is not
// live. While connected the server signals every change, so polling would
// only duplicate work.
type SyncPollWorker struct {
	sync     syncInvoker
	push     connectionSource
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncPollWorker creates a SyncPollWorker. A zero or negative interval
// falls back to 5 minutes. The worker is idle until Run is called.
func NewSyncPollWorker(syncService syncInvoker, push connectionSource, interval time.Duration, log *logger.Logger) *SyncPollWorker {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &SyncPollWorker{
		sync:     syncService,
		push:     push,
		interval: interval,
		logger:   log,
	}
}

// Run implements Worker. It stops any previously running loop, then launches
// a background goroutine polling every interval until Stop is called.
func (w *SyncPollWorker) Run() {
	w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	w.mu.Lock()
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go w.loop(ctx)
}

// Stop cancels the polling goroutine and blocks until it has fully exited.
// Safe to call when the worker is not running.
func (w *SyncPollWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SyncPollWorker) loop(ctx context.Context) {
	defer w.wg.Done()

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.poll(ctx)
		}
	}
}

func (w *SyncPollWorker) poll(ctx context.Context) {
	if w.push.Status().IsLive() {
		return
	}

	result := w.sync.ManualSync(ctx)
	if !result.Success {
		w.logger.Debug().
			Str("func", "SyncPollWorker.poll").
			Str("reason", result.Error).
			Msg("fallback sync pass skipped")
		return
	}

	w.logger.Info().
		Str("func", "SyncPollWorker.poll").
		Int("updated", result.Updated).
		Int("deleted", result.Deleted).
		Msg("fallback sync pass completed")
}
