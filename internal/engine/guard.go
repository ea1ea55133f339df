package engine

import (
	"sync"
	"time"
)

// Guard serializes a learner's turns. Two mechanisms, deliberately
// distinct: a per-learner busy flag that silently drops concurrent
// triggers, and a fixed-window rate limiter that replies with a visible
// "please wait".
type Guard struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	busy    map[string]bool
	windows map[string]*rateWindow
	now     func() time.Time
}

type rateWindow struct {
	start time.Time
	count int
}

// NewGuard creates a guard with the given rate-limit settings.
func NewGuard(limit int, window time.Duration) *Guard {
	return &Guard{
		limit:   limit,
		window:  window,
		busy:    make(map[string]bool),
		windows: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// TryAcquire sets the learner's busy flag. When ok is true the returned
// release must be called on every exit path. When ok is false another turn
// is in flight and the caller must stay silent.
func (g *Guard) TryAcquire(learnerID string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy[learnerID] {
		return nil, false
	}
	g.busy[learnerID] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.busy, learnerID)
		})
	}, true
}

// AllowAction counts a user-invoked action against the learner's fixed
// window. Returns false when the window's budget is exhausted.
func (g *Guard) AllowAction(learnerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	w := g.windows[learnerID]
	if w == nil || now.Sub(w.start) >= g.window {
		g.windows[learnerID] = &rateWindow{start: now, count: 1}
		return true
	}

	if w.count >= g.limit {
		return false
	}
	w.count++
	return true
}

// Reset clears all guard state for a learner. Used on exit.
func (g *Guard) Reset(learnerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, learnerID)
	delete(g.windows, learnerID)
}
