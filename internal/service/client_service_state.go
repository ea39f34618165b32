package service

import (
	"sync"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

// statePublisher holds the single observable SyncState snapshot and fans out
// every change to subscribers. State is a value: each publish replaces the
// whole snapshot, so listeners never observe a torn partial update.
type statePublisher struct {
	logger *logger.Logger

	mu     sync.Mutex
	state  models.SyncState
	nextID int
	subs   map[int]func(models.SyncState)
}

func newStatePublisher(log *logger.Logger) *statePublisher {
	return &statePublisher{
		logger: log,
		state:  models.SyncState{ConnectionStatus: models.StatusDisconnected},
		subs:   make(map[int]func(models.SyncState)),
	}
}

func (p *statePublisher) Current() models.SyncState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Subscribe registers fn and immediately delivers the current snapshot, so a
// late subscriber does not wait for the next change to learn the state.
func (p *statePublisher) Subscribe(fn func(models.SyncState)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	snapshot := p.state
	p.mu.Unlock()

	p.notify(fn, snapshot)

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// publish applies mutate to a copy of the current snapshot and, if anything
// changed, replaces it and notifies every subscriber.
func (p *statePublisher) publish(mutate func(*models.SyncState)) {
	p.mu.Lock()
	next := p.state
	mutate(&next)
	if next == p.state {
		p.mu.Unlock()
		return
	}
	p.state = next

	subs := make([]func(models.SyncState), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		p.notify(fn, next)
	}
}

// notify isolates subscriber panics so one faulty listener cannot break the
// fan-out to the others.
func (p *statePublisher) notify(fn func(models.SyncState), state models.SyncState) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Any("panic", r).Str("func", "statePublisher.notify").Msg("recovered state subscriber panic")
		}
	}()
	fn(state)
}
