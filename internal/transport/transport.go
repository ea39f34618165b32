// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport maintains the realtime push connection to the mail
// server: one live, authenticated websocket per Transport instance.
//
// The transport authenticates the connection, answers server heartbeats,
// classifies inbound frames, and reconnects with capped exponential backoff
// on any non-intentional close. Auth-rejection frames are collapsed into a
// single bounded credential-refresh attempt shared with the orchestrator via
// [RefreshGuard]. Connection failures never propagate as panics: every
// callback and subscriber invocation is recovered and logged.
package transport

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"sync"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/schedule"
	"github.com/MKhiriev/go-mail-sync/models"
	"github.com/cenkalti/backoff/v5"
	"github.com/coder/websocket"
)

const dialTimeout = 30 * time.Second

// Transport owns one websocket connection to the server's push endpoint.
// All inbound frames are processed sequentially by a single read loop, so
// handlers never race against each other on transport state.
type Transport struct {
	cfg    config.ClientTransport
	logger *logger.Logger
	guard  *RefreshGuard

	dial dialFunc

	mu           sync.Mutex
	status       models.ConnectionStatus
	token        string
	conn         wsConn
	cancelLoops  context.CancelFunc
	gen          int // connection generation; stale callbacks compare against it
	intentional  bool
	attempt      int
	authFailures int
	backoff      *backoff.ExponentialBackOff

	retrySlot schedule.Slot
	authSlot  schedule.Slot

	subMu      sync.Mutex
	nextSubID  int
	statusSubs map[int]func(models.ConnectionStatus)
	signalSubs map[int]func(models.Frame)
	authSubs   map[int]func()
}

// New constructs a Transport. The guard is shared with the orchestrator so
// that auth-failure-triggered and explicit credential refreshes exclude each
// other; passing nil creates a private guard.
func New(cfg config.ClientTransport, guard *RefreshGuard, log *logger.Logger) *Transport {
	if guard == nil {
		guard = &RefreshGuard{}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.ReconnectBase
	bo.MaxInterval = cfg.ReconnectCap
	bo.Multiplier = 2
	bo.RandomizationFactor = 0.2
	bo.Reset()

	return &Transport{
		cfg:        cfg,
		logger:     log,
		guard:      guard,
		dial:       dialWebsocket,
		status:     models.StatusDisconnected,
		backoff:    bo,
		statusSubs: make(map[int]func(models.ConnectionStatus)),
		signalSubs: make(map[int]func(models.Frame)),
		authSubs:   make(map[int]func()),
	}
}

// Guard returns the refresh guard shared with the orchestrator.
func (t *Transport) Guard() *RefreshGuard {
	return t.guard
}

// Status returns the current connection status.
func (t *Transport) Status() models.ConnectionStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.status
}

// Connect establishes the push connection using the given bearer token.
// It is a no-op when the token is empty. Dial failures are soft: the status
// falls back to disconnected and the retry loop takes over.
func (t *Transport) Connect(token string) {
	if strings.TrimSpace(token) == "" {
		t.logger.Warn().Str("func", "Transport.Connect").Msg("no credential, skipping push connection")
		return
	}

	t.mu.Lock()
	t.token = token
	t.intentional = false
	t.mu.Unlock()

	t.retrySlot.Stop()
	t.startAttempt(models.StatusConnecting)
}

// UpdateCredential always tears down and re-establishes the connection with
// the new token, even if already connected: a credential rotation must not
// silently keep using the old one.
func (t *Transport) UpdateCredential(token string) {
	token = strings.TrimSpace(token)

	t.retrySlot.Stop()

	if token == "" {
		t.logger.Warn().Str("func", "Transport.UpdateCredential").Msg("empty credential, disconnecting")
		t.Disconnect()
		return
	}

	t.mu.Lock()
	t.token = token
	t.intentional = false
	t.attempt = 0
	t.authFailures = 0
	t.backoff.Reset()
	t.mu.Unlock()

	t.startAttempt(models.StatusConnecting)
}

// Reconnect forces a fresh attempt with the existing credential, resetting
// the backoff counter. Callers use it when the local network state flips
// from offline to online, or after the retry ceiling was reached.
func (t *Transport) Reconnect() {
	t.retrySlot.Stop()

	t.mu.Lock()
	token := t.token
	t.intentional = false
	t.attempt = 0
	t.backoff.Reset()
	t.mu.Unlock()

	if token == "" {
		t.logger.Warn().Str("func", "Transport.Reconnect").Msg("no credential, nothing to reconnect")
		return
	}

	t.startAttempt(models.StatusConnecting)
}

// Disconnect tears the connection down intentionally, so the retry loop does
// not fire afterward.
func (t *Transport) Disconnect() {
	t.retrySlot.Stop()
	t.authSlot.Stop()

	t.mu.Lock()
	t.intentional = true
	t.teardownLocked()
	t.mu.Unlock()

	t.setStatus(models.StatusDisconnected)
}

// SubscribeStatus registers a connection-status listener and returns its
// unsubscribe function.
func (t *Transport) SubscribeStatus(fn func(models.ConnectionStatus)) func() {
	t.subMu.Lock()
	defer t.subMu.Unlock()

	id := t.nextSubID
	t.nextSubID++
	t.statusSubs[id] = fn

	return func() {
		t.subMu.Lock()
		defer t.subMu.Unlock()
		delete(t.statusSubs, id)
	}
}

// SubscribeSignals registers a listener for sync_required and domain
// notification frames, forwarded verbatim. Returns its unsubscribe function.
func (t *Transport) SubscribeSignals(fn func(models.Frame)) func() {
	t.subMu.Lock()
	defer t.subMu.Unlock()

	id := t.nextSubID
	t.nextSubID++
	t.signalSubs[id] = fn

	return func() {
		t.subMu.Lock()
		defer t.subMu.Unlock()
		delete(t.signalSubs, id)
	}
}

// OnAuthFailure registers a credential-refresh handler invoked (once per
// debounced burst of auth rejections) when the server refuses the current
// token. Returns its unsubscribe function.
func (t *Transport) OnAuthFailure(fn func()) func() {
	t.subMu.Lock()
	defer t.subMu.Unlock()

	id := t.nextSubID
	t.nextSubID++
	t.authSubs[id] = fn

	return func() {
		t.subMu.Lock()
		defer t.subMu.Unlock()
		delete(t.authSubs, id)
	}
}

// ── connection lifecycle ─────────────────────────────────────────────────────

// teardownLocked closes the live connection and stops its loops. Caller must
// hold t.mu.
func (t *Transport) teardownLocked() {
	if t.cancelLoops != nil {
		t.cancelLoops()
		t.cancelLoops = nil
	}
	if t.conn != nil {
		_ = t.conn.Close(websocket.StatusNormalClosure, "closing")
		t.conn = nil
	}
}

func (t *Transport) startAttempt(status models.ConnectionStatus) {
	if t.cfg.WSAddress == "" {
		t.logger.Error().Str("func", "Transport.startAttempt").Msg("no websocket endpoint configured")
		t.setStatus(models.StatusDisconnected)
		return
	}

	t.mu.Lock()
	t.teardownLocked()
	t.gen++
	gen := t.gen
	token := t.token
	t.mu.Unlock()

	t.setStatus(status)
	go t.runConnection(gen, token)
}

// runConnection dials, authenticates, and reads frames until the connection
// dies or is superseded by a newer generation.
func (t *Transport) runConnection(gen int, token string) {
	ctx, cancel := context.WithCancel(context.Background())

	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		cancel()
		return
	}
	t.cancelLoops = cancel
	t.mu.Unlock()

	dialCtx, dialCancel := context.WithTimeout(ctx, dialTimeout)
	conn, err := t.dial(dialCtx, t.cfg.WSAddress)
	dialCancel()
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "Transport.runConnection").Msg("websocket dial failed")
		t.handleClose(gen)
		return
	}

	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "superseded")
		cancel()
		return
	}
	t.conn = conn
	t.mu.Unlock()

	if err := t.writeFrame(ctx, conn, models.NewAuthFrame(token)); err != nil {
		t.logger.Warn().Err(err).Str("func", "Transport.runConnection").Msg("auth frame write failed")
		t.handleClose(gen)
		return
	}

	for {
		data, err := conn.Read(ctx)
		if err != nil {
			t.handleClose(gen)
			return
		}

		frame, derr := models.DecodeFrame(data)
		if derr != nil {
			t.logger.Debug().Err(derr).Str("func", "Transport.runConnection").Msg("dropping malformed frame")
			continue
		}

		t.handleFrame(ctx, gen, conn, frame)
	}
}

// handleFrame classifies one inbound frame. It never panics out into the
// read loop: a panicking handler would silently kill all future events.
func (t *Transport) handleFrame(ctx context.Context, gen int, conn wsConn, frame models.Frame) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error().Any("panic", r).Str("func", "Transport.handleFrame").Msg("recovered frame handler panic")
		}
	}()

	switch frame.Type {
	case models.FrameConnected:
		t.mu.Lock()
		if gen != t.gen {
			t.mu.Unlock()
			return
		}
		t.attempt = 0
		t.authFailures = 0
		t.backoff.Reset()
		t.mu.Unlock()

		t.guard.End()
		t.setStatus(models.StatusConnected)
		go t.heartbeatLoop(ctx, conn)

	case models.FrameHeartbeat:
		if err := t.writeFrame(ctx, conn, models.NewPingFrame()); err != nil {
			t.logger.Warn().Err(err).Str("func", "Transport.handleFrame").Msg("ping reply failed")
		}

	case models.FramePong:
		// liveness confirmed, nothing to do

	case models.FrameError, models.FrameAuthFailed:
		if frame.Type == models.FrameAuthFailed || isAuthRelated(frame.Message) {
			t.handleAuthFailure(frame)
			return
		}
		t.logger.Warn().Str("message", frame.Message).Msg("server error frame")

	default:
		// sync_required and domain notifications are forwarded verbatim
		t.notifySignal(frame)
	}
}

// heartbeatLoop sends liveness pings while the connection is up. The server
// also initiates heartbeats; both directions keep intermediaries from timing
// the connection out.
func (t *Transport) heartbeatLoop(ctx context.Context, conn wsConn) {
	ticker := time.NewTicker(t.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.writeFrame(ctx, conn, models.NewPingFrame()); err != nil {
				t.logger.Debug().Err(err).Str("func", "Transport.heartbeatLoop").Msg("heartbeat write failed")
				return
			}
		}
	}
}

func (t *Transport) writeFrame(ctx context.Context, conn wsConn, frame any) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.Write(ctx, payload)
}

// handleAuthFailure runs the bounded, debounced credential-refresh path.
// A burst of rejected frames inside the debounce window produces exactly one
// refresh-handler invocation; beyond the bound the transport gives up and
// leaves the status at auth_failed for the caller to handle explicitly.
func (t *Transport) handleAuthFailure(frame models.Frame) {
	t.mu.Lock()
	t.authFailures++
	failures := t.authFailures
	t.mu.Unlock()

	t.setStatus(models.StatusAuthFailed)

	if failures > t.cfg.AuthFailureBound {
		t.logger.Error().
			Int("failures", failures).
			Str("message", frame.Message).
			Msg("credential refresh bound exhausted, manual re-login required")
		return
	}

	if t.guard.Active() {
		t.logger.Debug().Msg("credential refresh already in progress, ignoring auth rejection")
		return
	}

	t.logger.Warn().
		Int("failures", failures).
		Str("message", frame.Message).
		Msg("authentication rejected, scheduling credential refresh")

	t.authSlot.Schedule(t.cfg.AuthFailureDebounce, t.notifyAuthFailure)
}

// handleClose runs after any connection loss. Intentional closes stop here;
// auth failures are owned by the refresh path; everything else schedules a
// backoff retry up to the attempt ceiling.
func (t *Transport) handleClose(gen int) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.teardownLocked()

	if t.intentional {
		t.mu.Unlock()
		t.setStatus(models.StatusDisconnected)
		return
	}
	if t.status == models.StatusAuthFailed {
		t.mu.Unlock()
		return
	}

	t.attempt++
	attempt := t.attempt
	if attempt > t.cfg.ReconnectMaxAttempts {
		t.mu.Unlock()
		t.logger.Error().
			Int("attempts", attempt-1).
			Msg("reconnect attempts exhausted, falling back to polled sync")
		t.setStatus(models.StatusDisconnected)
		return
	}

	delay := t.backoff.NextBackOff()
	t.mu.Unlock()

	t.setStatus(models.StatusReconnecting)
	t.logger.Warn().
		Int("attempt", attempt).
		Dur("delay", delay).
		Msg("push connection lost, scheduling reconnect")

	t.retrySlot.Schedule(delay, func() {
		t.startAttempt(models.StatusConnecting)
	})
}

// ── notification fan-out ─────────────────────────────────────────────────────

func (t *Transport) setStatus(status models.ConnectionStatus) {
	t.mu.Lock()
	if t.status == status {
		t.mu.Unlock()
		return
	}
	t.status = status
	t.mu.Unlock()

	t.subMu.Lock()
	subs := make([]func(models.ConnectionStatus), 0, len(t.statusSubs))
	for _, fn := range t.statusSubs {
		subs = append(subs, fn)
	}
	t.subMu.Unlock()

	for _, fn := range subs {
		t.safeNotify(func() { fn(status) })
	}
}

func (t *Transport) notifySignal(frame models.Frame) {
	t.subMu.Lock()
	subs := make([]func(models.Frame), 0, len(t.signalSubs))
	for _, fn := range t.signalSubs {
		subs = append(subs, fn)
	}
	t.subMu.Unlock()

	for _, fn := range subs {
		t.safeNotify(func() { fn(frame) })
	}
}

func (t *Transport) notifyAuthFailure() {
	t.subMu.Lock()
	subs := make([]func(), 0, len(t.authSubs))
	for _, fn := range t.authSubs {
		subs = append(subs, fn)
	}
	t.subMu.Unlock()

	for _, fn := range subs {
		t.safeNotify(fn)
	}
}

// safeNotify isolates subscriber panics so one faulty listener cannot break
// the fan-out to the others.
func (t *Transport) safeNotify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error().Any("panic", r).Str("func", "Transport.safeNotify").Msg("recovered subscriber panic")
		}
	}()
	fn()
}

func isAuthRelated(message string) bool {
	m := strings.ToLower(message)
	for _, marker := range []string{"auth", "token", "unauthorized", "credential", "expired"} {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}
