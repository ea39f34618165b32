package transport

import "sync"

// RefreshGuard serialises credential-refresh attempts. The transport's
// auth-failure path and the orchestrator's explicit refresh share one guard,
// so a rejected frame and a user action cannot both kick off simultaneous
// refreshes.
type RefreshGuard struct {
	mu     sync.Mutex
	active bool
}

// Begin tries to mark a refresh as in progress. It returns false when another
// refresh already holds the guard.
func (g *RefreshGuard) Begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active {
		return false
	}
	g.active = true
	return true
}

// End clears the in-progress mark. Safe to call when not active.
func (g *RefreshGuard) End() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.active = false
}

// Active reports whether a refresh is currently in progress.
func (g *RefreshGuard) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.active
}
