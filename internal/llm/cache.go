package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Identity scopes a cached response to one learner position so personalized
// feedback never leaks across learners or steps.
type Identity struct {
	LearnerID string
	PlanID    string
	Topic     string
	StepIdx   int
}

func (id Identity) String() string {
	return fmt.Sprintf("%s|%s|%s|%d", id.LearnerID, id.PlanID, id.Topic, id.StepIdx)
}

// CacheConfig bounds the response cache.
type CacheConfig struct {
	MaxEntries int
	TTL        time.Duration
}

// DefaultCacheConfig returns sensible defaults for the response cache.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxEntries: 256,
		TTL:        5 * time.Minute,
	}
}

type cacheEntry struct {
	resp    Response
	addedAt time.Time
}

// CachingProvider is a decorator serving identical regenerations from a
// bounded TTL cache. The cache is best-effort: a miss always falls through
// to the inner provider and a write never blocks delivery.
type CachingProvider struct {
	inner Provider
	cfg   CacheConfig

	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string // insertion order, oldest first
	now     func() time.Time
}

// WithCache wraps a Provider with a bounded TTL response cache.
func WithCache(p Provider, cfg CacheConfig) *CachingProvider {
	return &CachingProvider{
		inner:   p,
		cfg:     cfg,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key := c.cacheKey(ctx, req)

	if resp, ok := c.lookup(key); ok {
		return resp, nil
	}

	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	c.insert(key, resp)
	return resp, nil
}

func (c *CachingProvider) ModelID() string {
	return c.inner.ModelID()
}

// cacheKey builds the lookup key from the model, the hashed prompts, and
// the requesting identity.
func (c *CachingProvider) cacheKey(ctx context.Context, req Request) string {
	var user string
	for _, m := range req.Messages {
		user += string(m.Role) + "\x00" + m.Content + "\x00"
	}
	return fmt.Sprintf("%s|%s|%s|%s",
		c.inner.ModelID(),
		hashPrompt(req.System),
		hashPrompt(user),
		IdentityFrom(ctx),
	)
}

func (c *CachingProvider) lookup(key string) (*Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.addedAt) > c.cfg.TTL {
		delete(c.entries, key)
		return nil, false
	}

	resp := e.resp
	resp.Cached = true
	return &resp, true
}

func (c *CachingProvider) insert(key string, resp *Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Drop expired entries first, then the oldest, to stay bounded.
	if len(c.entries) >= c.cfg.MaxEntries {
		c.evictLocked()
	}

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{resp: *resp, addedAt: c.now()}
}

func (c *CachingProvider) evictLocked() {
	cutoff := c.now().Add(-c.cfg.TTL)
	kept := c.order[:0]
	for _, k := range c.order {
		e, ok := c.entries[k]
		if !ok {
			continue
		}
		if e.addedAt.Before(cutoff) {
			delete(c.entries, k)
			continue
		}
		kept = append(kept, k)
	}
	c.order = kept

	// Still full: evict the oldest live entry.
	if len(c.entries) >= c.cfg.MaxEntries && len(c.order) > 0 {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
}

// Len reports the number of live entries. Used by tests.
func (c *CachingProvider) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func hashPrompt(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
