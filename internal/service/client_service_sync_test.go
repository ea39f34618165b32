// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/mock"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/internal/transport"
	"github.com/MKhiriev/go-mail-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubTransport — простой стаб PushTransport, не требует mockgen: тестам
// нужно дёргать подписки напрямую.
type stubTransport struct {
	guard *transport.RefreshGuard

	mu            sync.Mutex
	status        models.ConnectionStatus
	connects      []string
	updates       []string
	reconnects    int
	disconnects   int
	unsubscribed  int
	statusHandler func(models.ConnectionStatus)
	signalHandler func(models.Frame)
	authHandler   func()
}

func newStubTransport() *stubTransport {
	return &stubTransport{guard: &transport.RefreshGuard{}, status: models.StatusDisconnected}
}

func (st *stubTransport) Connect(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.connects = append(st.connects, token)
}

func (st *stubTransport) UpdateCredential(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.updates = append(st.updates, token)
}

func (st *stubTransport) Reconnect() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.reconnects++
}

func (st *stubTransport) Disconnect() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.disconnects++
}

func (st *stubTransport) Status() models.ConnectionStatus {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.status
}

func (st *stubTransport) SubscribeStatus(fn func(models.ConnectionStatus)) func() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.statusHandler = fn
	return func() { st.mu.Lock(); st.unsubscribed++; st.mu.Unlock() }
}

func (st *stubTransport) SubscribeSignals(fn func(models.Frame)) func() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.signalHandler = fn
	return func() { st.mu.Lock(); st.unsubscribed++; st.mu.Unlock() }
}

func (st *stubTransport) OnAuthFailure(fn func()) func() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.authHandler = fn
	return func() { st.mu.Lock(); st.unsubscribed++; st.mu.Unlock() }
}

func (st *stubTransport) Guard() *transport.RefreshGuard { return st.guard }

func (st *stubTransport) pushStatus(status models.ConnectionStatus) {
	st.mu.Lock()
	st.status = status
	fn := st.statusHandler
	st.mu.Unlock()
	if fn != nil {
		fn(status)
	}
}

func (st *stubTransport) pushSignal(frame models.Frame) {
	st.mu.Lock()
	fn := st.signalHandler
	st.mu.Unlock()
	if fn != nil {
		fn(frame)
	}
}

type syncTestMocks struct {
	mail       *mock.MockLocalMailRepository
	checkpoint *mock.MockLocalCheckpointRepository
	pending    *mock.MockLocalPendingOpRepository
	account    *mock.MockLocalAccountRepository
	adapter    *mock.MockServerAdapter
	push       *stubTransport
}

// newTestSyncSvc builds a clientSyncService over gomock repositories and a
// stub transport, with fast debounce/rate-limit knobs.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*clientSyncService, syncTestMocks) {
	t.Helper()

	m := syncTestMocks{
		mail:       mock.NewMockLocalMailRepository(ctrl),
		checkpoint: mock.NewMockLocalCheckpointRepository(ctrl),
		pending:    mock.NewMockLocalPendingOpRepository(ctrl),
		account:    mock.NewMockLocalAccountRepository(ctrl),
		adapter:    mock.NewMockServerAdapter(ctrl),
		push:       newStubTransport(),
	}

	storages := &store.ClientStorages{
		MailRepository:       m.mail,
		CheckpointRepository: m.checkpoint,
		PendingOpRepository:  m.pending,
		AccountRepository:    m.account,
	}

	cfg := config.ClientSync{
		Resources:             []string{"inbox", "sent"},
		DebounceWindow:        20 * time.Millisecond,
		ManualSyncMinInterval: time.Hour,
		InitialSyncGrace:      5 * time.Minute,
		RetentionLimit:        100,
	}

	svc := NewClientSyncService(cfg, storages, m.adapter, m.push, logger.Nop()).(*clientSyncService)
	return svc, m
}

func sincePtrEq(want time.Time) gomock.Matcher {
	return gomock.Cond(func(x *time.Time) bool {
		return x != nil && x.Equal(want)
	})
}

func notFound() error { return store.ErrCheckpointNotFound }

// ── sync pass ────────────────────────────────────────────────────────────────

func TestSyncPass_SuccessAdvancesCheckpointsAndLastSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	older := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	sentStored := time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC)

	inboxItems := []models.MailItem{
		{ID: "m-1", UpdatedAt: older},
		{ID: "m-2", UpdatedAt: newer, Deleted: true},
	}

	// inbox: never synced → full fetch
	m.checkpoint.EXPECT().GetCheckpoint(ctx, "inbox").Return(models.Checkpoint{}, notFound())
	m.adapter.EXPECT().FetchResource(ctx, "inbox", nil).Return(models.FetchResult{Items: inboxItems}, nil)
	m.mail.EXPECT().SaveMailItems(ctx, "inbox", inboxItems[0], inboxItems[1]).Return(nil)
	m.mail.EXPECT().TrimToLimit(ctx, "inbox", 100).Return(nil)
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, models.Checkpoint{Resource: "inbox", LastSyncedAt: newer}).Return(nil)

	// sent: delta fetch from the stored watermark, empty result, no advance
	m.checkpoint.EXPECT().GetCheckpoint(ctx, "sent").Return(models.Checkpoint{Resource: "sent", LastSyncedAt: sentStored}, nil)
	m.adapter.EXPECT().FetchResource(ctx, "sent", sincePtrEq(sentStored)).Return(models.FetchResult{}, nil)

	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Cond(func(cp models.Checkpoint) bool {
		return cp.Resource == models.GlobalResource && !cp.LastSyncedAt.IsZero()
	})).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	result := svc.runPass(ctx, nil, nil, false)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Deleted)
	assert.Empty(t, result.Error)

	state := svc.State()
	require.NotNil(t, state.LastSync)
	assert.Empty(t, state.LastSyncError)
	assert.False(t, state.IsSyncing)
}

func TestSyncPass_AbortsOnFirstFailureKeepingEarlierAdvance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	at := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	items := []models.MailItem{{ID: "m-1", UpdatedAt: at}}

	// inbox succeeds and its watermark is persisted before the failure
	m.checkpoint.EXPECT().GetCheckpoint(ctx, "inbox").Return(models.Checkpoint{}, notFound())
	m.adapter.EXPECT().FetchResource(ctx, "inbox", nil).Return(models.FetchResult{Items: items}, nil)
	m.mail.EXPECT().SaveMailItems(ctx, "inbox", items[0]).Return(nil)
	m.mail.EXPECT().TrimToLimit(ctx, "inbox", 100).Return(nil)
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, models.Checkpoint{Resource: "inbox", LastSyncedAt: at}).Return(nil)

	// sent fails; no global checkpoint, no LastSync
	m.checkpoint.EXPECT().GetCheckpoint(ctx, "sent").Return(models.Checkpoint{}, notFound())
	m.adapter.EXPECT().FetchResource(ctx, "sent", nil).Return(models.FetchResult{}, errors.New("server unreachable"))

	result := svc.runPass(ctx, nil, nil, false)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "fetch sent")

	state := svc.State()
	assert.Nil(t, state.LastSync)
	assert.Contains(t, state.LastSyncError, "server unreachable")
	assert.False(t, state.IsSyncing)
}

func TestSyncPass_RejectsWhenAnotherPassInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSyncSvc(t, ctrl)

	svc.mu.Lock()
	svc.isSyncing = true
	svc.mu.Unlock()

	result := svc.runPass(context.Background(), nil, nil, false)
	assert.False(t, result.Success)
	assert.Equal(t, models.SyncInProgressResult().Error, result.Error)

	manual := svc.ManualSync(context.Background())
	assert.False(t, manual.Success)
	assert.Equal(t, models.SyncInProgressResult().Error, manual.Error)
}

func TestSyncPass_CheckpointNeverMovesBackward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	stored := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	floor := stored.Add(-2 * time.Hour)
	oldItem := []models.MailItem{{ID: "m-1", UpdatedAt: stored.Add(-time.Hour)}}

	// the caller floor widens the fetch window below the stored watermark
	m.checkpoint.EXPECT().GetCheckpoint(ctx, "inbox").Return(models.Checkpoint{Resource: "inbox", LastSyncedAt: stored}, nil)
	m.adapter.EXPECT().FetchResource(ctx, "inbox", sincePtrEq(floor)).Return(models.FetchResult{Items: oldItem}, nil)
	m.mail.EXPECT().SaveMailItems(ctx, "inbox", oldItem[0]).Return(nil)
	m.mail.EXPECT().TrimToLimit(ctx, "inbox", 100).Return(nil)
	// no per-resource SaveCheckpoint: the refetched item is older than stored

	m.checkpoint.EXPECT().GetCheckpoint(ctx, "sent").Return(models.Checkpoint{}, notFound())
	m.adapter.EXPECT().FetchResource(ctx, "sent", nil).Return(models.FetchResult{}, nil)

	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Cond(func(cp models.Checkpoint) bool {
		return cp.Resource == models.GlobalResource
	})).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	result := svc.runPass(ctx, nil, &floor, false)
	require.True(t, result.Success)
}

func TestSyncPass_EmptyBatchHintAdvancesCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	stored := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	hint := stored.Add(time.Hour)

	m.checkpoint.EXPECT().GetCheckpoint(ctx, "inbox").Return(models.Checkpoint{Resource: "inbox", LastSyncedAt: stored}, nil)
	m.adapter.EXPECT().FetchResource(ctx, "inbox", sincePtrEq(stored)).
		Return(models.FetchResult{NextCheckpointHint: &hint}, nil)
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, models.Checkpoint{Resource: "inbox", LastSyncedAt: hint}).Return(nil)

	m.checkpoint.EXPECT().GetCheckpoint(ctx, "sent").Return(models.Checkpoint{}, notFound())
	m.adapter.EXPECT().FetchResource(ctx, "sent", nil).Return(models.FetchResult{}, nil)

	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Cond(func(cp models.Checkpoint) bool {
		return cp.Resource == models.GlobalResource
	})).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	result := svc.runPass(ctx, nil, nil, false)
	require.True(t, result.Success)
}

// ── manual sync ──────────────────────────────────────────────────────────────

func TestManualSync_RateLimitedInsideMinInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	for _, resource := range []string{"inbox", "sent"} {
		m.checkpoint.EXPECT().GetCheckpoint(ctx, resource).Return(models.Checkpoint{}, notFound())
		m.adapter.EXPECT().FetchResource(ctx, resource, nil).Return(models.FetchResult{}, nil)
	}
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Any()).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	first := svc.ManualSync(ctx)
	require.True(t, first.Success)

	second := svc.ManualSync(ctx)
	assert.False(t, second.Success)
	assert.Contains(t, second.Error, "rate limited")
}

func TestManualSync_AllowedAgainAfterInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	svc.cfg.ManualSyncMinInterval = 10 * time.Millisecond
	ctx := context.Background()

	for _, resource := range []string{"inbox", "sent"} {
		m.checkpoint.EXPECT().GetCheckpoint(ctx, resource).Return(models.Checkpoint{}, notFound()).Times(2)
		m.adapter.EXPECT().FetchResource(ctx, resource, nil).Return(models.FetchResult{}, nil).Times(2)
	}
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Any()).Return(nil).Times(2)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil).Times(2)

	require.True(t, svc.ManualSync(ctx).Success)
	time.Sleep(20 * time.Millisecond)
	require.True(t, svc.ManualSync(ctx).Success)
}

// ── full sync ────────────────────────────────────────────────────────────────

func TestFullSync_ClearsCheckpointsAndRefreshesAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	accounts := []models.Account{{ID: "a-1", Email: "me@mail.test"}}

	m.checkpoint.EXPECT().ClearCheckpoints(ctx).Return(nil)
	m.adapter.EXPECT().FetchAccountList(ctx).Return(accounts, nil)
	m.account.EXPECT().ReplaceAccounts(ctx, accounts).Return(nil)

	for _, resource := range []string{"inbox", "sent"} {
		m.checkpoint.EXPECT().GetCheckpoint(ctx, resource).Return(models.Checkpoint{}, notFound())
		m.adapter.EXPECT().FetchResource(ctx, resource, nil).Return(models.FetchResult{}, nil)
	}
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Any()).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	result := svc.FullSync(ctx)
	require.True(t, result.Success)
}

func TestFullSync_AccountFetchFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	m.checkpoint.EXPECT().ClearCheckpoints(ctx).Return(nil)
	m.adapter.EXPECT().FetchAccountList(ctx).Return(nil, errors.New("timeout"))

	result := svc.FullSync(ctx)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "fetch account list")
}

// ── debounced signal intake ──────────────────────────────────────────────────

func TestSignals_BurstCoalescesIntoOnePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)

	floor := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	laterFloor := floor.Add(time.Hour)
	inboxStored := floor.Add(2 * time.Hour)
	sentStored := floor.Add(3 * time.Hour)

	// union of tables, fetched from the earliest floor of the burst
	m.checkpoint.EXPECT().GetCheckpoint(gomock.Any(), "inbox").
		Return(models.Checkpoint{Resource: "inbox", LastSyncedAt: inboxStored}, nil)
	m.adapter.EXPECT().FetchResource(gomock.Any(), "inbox", sincePtrEq(floor)).
		Return(models.FetchResult{}, nil)
	m.checkpoint.EXPECT().GetCheckpoint(gomock.Any(), "sent").
		Return(models.Checkpoint{Resource: "sent", LastSyncedAt: sentStored}, nil)
	m.adapter.EXPECT().FetchResource(gomock.Any(), "sent", sincePtrEq(floor)).
		Return(models.FetchResult{}, nil)

	m.checkpoint.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Cond(func(cp models.Checkpoint) bool {
		return cp.Resource == models.GlobalResource
	})).Return(nil)
	m.pending.EXPECT().CountPendingOps(gomock.Any()).Return(int64(0), nil)

	svc.handleSignal(models.Frame{Type: models.FrameSyncRequired, Tables: []string{"inbox"}, Since: &laterFloor})
	svc.handleSignal(models.Frame{Type: models.FrameSyncRequired, Tables: []string{"sent"}, Since: &floor})
	svc.handleSignal(models.Frame{Type: models.FrameSyncRequired, Tables: []string{"inbox"}})

	require.Eventually(t, func() bool {
		return svc.State().LastSync != nil
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSignals_UnknownTablesFallBackToAllResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSyncSvc(t, ctrl)

	assert.ElementsMatch(t, []string{"inbox", "sent"}, svc.resolveResources(nil))
	assert.ElementsMatch(t, []string{"inbox"}, svc.resolveResources([]string{"inbox", "contacts"}))
	assert.ElementsMatch(t, []string{"inbox", "sent"}, svc.resolveResources([]string{"contacts"}))
}

func TestSignals_NotificationsAreRedispatchedNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSyncSvc(t, ctrl)

	received := make(chan models.Frame, 1)
	unsubscribe := svc.SubscribeNotifications(func(f models.Frame) { received <- f })
	defer unsubscribe()

	svc.handleSignal(models.Frame{Type: models.FrameNewMail})

	select {
	case frame := <-received:
		assert.Equal(t, models.FrameNewMail, frame.Type)
	case <-time.After(time.Second):
		t.Fatal("notification was not re-dispatched")
	}
	// no adapter/repository expectations were set: a notification must not
	// trigger a sync pass
	time.Sleep(50 * time.Millisecond)
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func initializeMocks(m syncTestMocks, lastSync time.Time, cached int64) {
	m.checkpoint.EXPECT().GetCheckpoint(gomock.Any(), models.GlobalResource).
		Return(models.Checkpoint{Resource: models.GlobalResource, LastSyncedAt: lastSync}, nil)
	m.pending.EXPECT().CountPendingOps(gomock.Any()).Return(int64(2), nil)
	m.mail.EXPECT().CountMailItems(gomock.Any()).Return(cached, nil)
}

func TestInitialize_SkipsInitialSyncWhenCacheIsFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	initializeMocks(m, time.Now().Add(-time.Minute), 10)

	token := models.Token{AccessToken: "acc", RefreshToken: "ref"}
	require.NoError(t, svc.Initialize(context.Background(), token))

	state := svc.State()
	require.NotNil(t, state.LastSync)
	assert.Equal(t, 2, state.PendingChanges)
	assert.Equal(t, []string{"acc"}, m.push.connects)

	// no fetch expectations were set: the fresh cache must not trigger a pass
	time.Sleep(50 * time.Millisecond)
}

func TestInitialize_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	initializeMocks(m, time.Now().Add(-time.Minute), 10)

	token := models.Token{AccessToken: "acc"}
	require.NoError(t, svc.Initialize(context.Background(), token))
	require.NoError(t, svc.Initialize(context.Background(), token))

	assert.Equal(t, []string{"acc"}, m.push.connects)
}

func TestInitialize_RunsInitialSyncWhenStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)

	// persisted position exists but is far outside the grace window
	m.checkpoint.EXPECT().GetCheckpoint(gomock.Any(), models.GlobalResource).
		Return(models.Checkpoint{Resource: models.GlobalResource, LastSyncedAt: time.Now().Add(-time.Hour)}, nil)
	m.pending.EXPECT().CountPendingOps(gomock.Any()).Return(int64(0), nil)

	for _, resource := range []string{"inbox", "sent"} {
		m.checkpoint.EXPECT().GetCheckpoint(gomock.Any(), resource).Return(models.Checkpoint{}, notFound())
		m.adapter.EXPECT().FetchResource(gomock.Any(), resource, gomock.Any()).Return(models.FetchResult{}, nil)
	}
	m.checkpoint.EXPECT().SaveCheckpoint(gomock.Any(), gomock.Any()).Return(nil)
	m.pending.EXPECT().CountPendingOps(gomock.Any()).Return(int64(0), nil)

	require.NoError(t, svc.Initialize(context.Background(), models.Token{AccessToken: "acc"}))

	require.Eventually(t, func() bool {
		return svc.State().LastSyncError == "" && svc.State().LastSync != nil && !svc.State().IsSyncing
	}, 2*time.Second, 5*time.Millisecond)
}

func TestShutdown_PreservesLastSyncAndUnsubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	initializeMocks(m, time.Now().Add(-time.Minute), 10)

	require.NoError(t, svc.Initialize(context.Background(), models.Token{AccessToken: "acc"}))
	before := svc.State().LastSync
	require.NotNil(t, before)

	svc.Shutdown()

	assert.Equal(t, 1, m.push.disconnects)
	assert.Equal(t, 3, m.push.unsubscribed)

	state := svc.State()
	assert.False(t, state.IsOnline)
	assert.Equal(t, models.StatusDisconnected, state.ConnectionStatus)
	assert.Equal(t, before, state.LastSync)

	// second shutdown is a no-op
	svc.Shutdown()
	assert.Equal(t, 1, m.push.disconnects)
}

func TestStatusChanges_PropagateToPublishedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	initializeMocks(m, time.Now().Add(-time.Minute), 10)

	require.NoError(t, svc.Initialize(context.Background(), models.Token{AccessToken: "acc"}))

	m.push.pushStatus(models.StatusConnected)
	state := svc.State()
	assert.True(t, state.IsOnline)
	assert.Equal(t, models.StatusConnected, state.ConnectionStatus)

	m.push.pushStatus(models.StatusReconnecting)
	state = svc.State()
	assert.False(t, state.IsOnline)
	assert.NotNil(t, state.LastSync) // connection loss never wipes the sync position
}

// ── token refresh ────────────────────────────────────────────────────────────

func TestRefreshTokenAndReconnect_RotatesCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	svc.token = models.Token{AccessToken: "old", RefreshToken: "ref-1"}

	fresh := models.Token{AccessToken: "new", RefreshToken: "ref-2"}
	m.adapter.EXPECT().RefreshToken(gomock.Any(), "ref-1").Return(fresh, nil)
	m.adapter.EXPECT().SetToken("new")

	require.True(t, svc.RefreshTokenAndReconnect(context.Background()))
	assert.Equal(t, []string{"new"}, m.push.updates)
	assert.Equal(t, fresh, svc.token)

	// guard is released after the refresh completes
	assert.True(t, m.push.guard.Begin())
}

func TestSyncPass_RotatesExpiringTokenBeforeFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	// an unparseable access token counts as expiring
	svc.token = models.Token{AccessToken: "opaque-and-expiring", RefreshToken: "ref-1"}
	ctx := context.Background()

	fresh := models.Token{AccessToken: "new", RefreshToken: "ref-2"}
	m.adapter.EXPECT().RefreshToken(ctx, "ref-1").Return(fresh, nil)
	m.adapter.EXPECT().SetToken("new")

	for _, resource := range []string{"inbox", "sent"} {
		m.checkpoint.EXPECT().GetCheckpoint(ctx, resource).Return(models.Checkpoint{}, notFound())
		m.adapter.EXPECT().FetchResource(ctx, resource, nil).Return(models.FetchResult{}, nil)
	}
	m.checkpoint.EXPECT().SaveCheckpoint(ctx, gomock.Any()).Return(nil)
	m.pending.EXPECT().CountPendingOps(ctx).Return(int64(0), nil)

	result := svc.runPass(ctx, nil, nil, false)
	require.True(t, result.Success)
	assert.Equal(t, []string{"new"}, m.push.updates)
}

func TestRefreshTokenAndReconnect_RejectedWhileAnotherRefreshRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	svc.token = models.Token{RefreshToken: "ref-1"}

	require.True(t, m.push.guard.Begin())
	defer m.push.guard.End()

	assert.False(t, svc.RefreshTokenAndReconnect(context.Background()))
}

func TestRefreshTokenAndReconnect_FailsWithoutRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)

	assert.False(t, svc.RefreshTokenAndReconnect(context.Background()))
	assert.Empty(t, m.push.updates)
}

func TestRefreshTokenAndReconnect_ExchangeFailureReleasesGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncSvc(t, ctrl)
	svc.token = models.Token{RefreshToken: "ref-1"}

	m.adapter.EXPECT().RefreshToken(gomock.Any(), "ref-1").Return(models.Token{}, errors.New("refresh token revoked"))

	assert.False(t, svc.RefreshTokenAndReconnect(context.Background()))
	assert.Empty(t, m.push.updates)
	assert.True(t, m.push.guard.Begin())
}
