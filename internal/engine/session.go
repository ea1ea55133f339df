package engine

import (
	"sync"
	"time"
)

// SessionState is the ephemeral, process-local view of an active dynamic
// session. It is always safe to discard; hydration rebuilds it from the
// durable ProgressRecord.
type SessionState struct {
	Topic          string
	StepCount      int
	LastText       string
	AwaitingAnswer bool
	LastDelivery   time.Time
}

// SessionCache holds sessions keyed by learner, bounded with TTL eviction.
// Constructor-injected so tests substitute deterministic instances.
type SessionCache struct {
	maxEntries int
	ttl        time.Duration

	mu      sync.Mutex
	entries map[string]*sessionEntry
	order   []string // insertion order, oldest first
	now     func() time.Time
}

type sessionEntry struct {
	state   SessionState
	touched time.Time
}

// NewSessionCache creates a bounded session cache.
func NewSessionCache(maxEntries int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		entries:    make(map[string]*sessionEntry),
		now:        time.Now,
	}
}

// Get returns the learner's session if present and fresh.
func (c *SessionCache) Get(learnerID string) (SessionState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[learnerID]
	if !ok {
		return SessionState{}, false
	}
	if c.now().Sub(e.touched) > c.ttl {
		delete(c.entries, learnerID)
		return SessionState{}, false
	}
	return e.state, true
}

// Put installs or refreshes the learner's session.
func (c *SessionCache) Put(learnerID string, s SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	if _, exists := c.entries[learnerID]; !exists {
		c.order = append(c.order, learnerID)
	}
	c.entries[learnerID] = &sessionEntry{state: s, touched: c.now()}
}

// Delete discards the learner's session. Called on explicit exit.
func (c *SessionCache) Delete(learnerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, learnerID)
}

// Len reports the number of live sessions. Used by tests.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SessionCache) evictLocked() {
	cutoff := c.now().Add(-c.ttl)
	kept := c.order[:0]
	for _, k := range c.order {
		e, ok := c.entries[k]
		if !ok {
			continue
		}
		if e.touched.Before(cutoff) {
			delete(c.entries, k)
			continue
		}
		kept = append(kept, k)
	}
	c.order = kept

	if len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
}
