// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schedule provides a single-slot timer: at most one scheduled task
// per purpose, where scheduling again replaces the pending fire instead of
// stacking a second one.
//
// The transport uses one slot for the reconnect retry and one for the
// auth-failure debounce; the orchestrator uses one for the sync_required
// signal debounce. Replacing instead of stacking is what keeps a flapping
// connection from leaking timers.
package schedule

import (
	"sync"
	"time"
)

// Slot owns at most one pending timer. The zero value is ready to use.
type Slot struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Schedule arranges fn to run after d, replacing any previously scheduled
// call that has not fired yet. fn runs on its own goroutine.
func (s *Slot) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()

		fn()
	})
}

// Stop cancels the pending call, if any. It does not wait for a call that has
// already started running.
func (s *Slot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a call is currently scheduled and has not fired.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer != nil
}
