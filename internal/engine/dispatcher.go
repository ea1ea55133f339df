package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/tsarev/lernio/internal/store"
)

// Mode selects which content source a new session starts with.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// Dispatcher is the handler boundary: it applies the concurrency guard to
// every operation and routes to the engine variant the learner's session
// belongs to. A catalog miss at static start falls back to dynamic mode
// with a fixed notice.
type Dispatcher struct {
	mode    Mode
	static  *StaticEngine
	dynamic *DynamicEngine
	guard   *Guard

	mu    sync.Mutex
	slugs map[string]string // learner -> active static lesson slug
}

// NewDispatcher creates the dispatcher for the configured default mode.
func NewDispatcher(mode Mode, static *StaticEngine, dynamic *DynamicEngine, guard *Guard) *Dispatcher {
	return &Dispatcher{
		mode:    mode,
		static:  static,
		dynamic: dynamic,
		guard:   guard,
		slugs:   make(map[string]string),
	}
}

// Start begins a lesson (static) or a topic (dynamic) for the learner.
func (d *Dispatcher) Start(ctx context.Context, learnerID, target string) (Reply, error) {
	release, ok := d.guard.TryAcquire(learnerID)
	if !ok {
		return silent(), nil
	}
	defer release()

	if !d.guard.AllowAction(learnerID) {
		return say(ReplySlowDown), nil
	}

	if d.mode == ModeStatic {
		reply, err := d.static.Start(ctx, learnerID, target)
		if err == nil {
			d.setSlug(learnerID, target)
			return reply, nil
		}
		if !errors.Is(err, ErrContentNotFound) {
			return reply, err
		}
		// Unknown slug: fall back to dynamic with a fixed notice.
		d.clearSlug(learnerID)
		reply, err = d.dynamic.Start(ctx, learnerID, target)
		if err != nil || reply.Silent {
			return reply, err
		}
		return say(ReplyFallbackNotice + "\n\n" + reply.Text), nil
	}

	d.clearSlug(learnerID)
	return d.dynamic.Start(ctx, learnerID, target)
}

// Advance delivers the next piece of content.
func (d *Dispatcher) Advance(ctx context.Context, learnerID string) (Reply, error) {
	release, ok := d.guard.TryAcquire(learnerID)
	if !ok {
		return silent(), nil
	}
	defer release()

	if !d.guard.AllowAction(learnerID) {
		return say(ReplySlowDown), nil
	}

	slug, ok, err := d.resolveSlug(ctx, learnerID)
	if err != nil {
		return Reply{}, err
	}
	if ok {
		return d.static.Advance(ctx, learnerID, slug)
	}
	return d.dynamic.Advance(ctx, learnerID)
}

// Answer submits the learner's reply to the current question.
func (d *Dispatcher) Answer(ctx context.Context, learnerID, text string) (Reply, error) {
	release, ok := d.guard.TryAcquire(learnerID)
	if !ok {
		return silent(), nil
	}
	defer release()

	if !d.guard.AllowAction(learnerID) {
		return say(ReplySlowDown), nil
	}

	slug, ok, err := d.resolveSlug(ctx, learnerID)
	if err != nil {
		return Reply{}, err
	}
	if ok {
		return d.static.Answer(ctx, learnerID, slug, text)
	}
	return d.dynamic.Answer(ctx, learnerID, text)
}

// Exit ends the learner's session. Progress stays durable.
func (d *Dispatcher) Exit(ctx context.Context, learnerID string) (Reply, error) {
	release, ok := d.guard.TryAcquire(learnerID)
	if !ok {
		return silent(), nil
	}
	defer release()

	var reply Reply
	var err error
	if _, ok := d.slugFor(learnerID); ok {
		reply, err = d.static.Exit(ctx, learnerID)
	} else {
		reply, err = d.dynamic.Exit(ctx, learnerID)
	}

	d.clearSlug(learnerID)
	release()
	d.guard.Reset(learnerID)
	return reply, err
}

func (d *Dispatcher) setSlug(learnerID, slug string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slugs[learnerID] = slug
}

func (d *Dispatcher) clearSlug(learnerID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.slugs, learnerID)
}

func (d *Dispatcher) slugFor(learnerID string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	slug, ok := d.slugs[learnerID]
	return slug, ok
}

// resolveSlug routes by the in-process slug map, and on a miss in static
// mode rehydrates the route from the learner's most recent incomplete
// lesson so a restart does not dump them into dynamic mode.
func (d *Dispatcher) resolveSlug(ctx context.Context, learnerID string) (string, bool, error) {
	if slug, ok := d.slugFor(learnerID); ok {
		return slug, true, nil
	}
	if d.mode != ModeStatic {
		return "", false, nil
	}

	slug, err := d.static.ActiveLesson(ctx, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	d.setSlug(learnerID, slug)
	return slug, true, nil
}
