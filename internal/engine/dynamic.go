package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
	"github.com/tsarev/lernio/internal/store"
	"github.com/tsarev/lernio/internal/tutor"
)

// DynamicEngine drives model-generated curricula. A plan is generated once
// at start; every advance generates one step, every answer is evaluated
// free-text. The step counter moves only after generation succeeds, so a
// gateway failure never leaves a half-advanced state.
type DynamicEngine struct {
	plans      store.PlanRepo
	records    store.RecordRepo
	turns      store.TurnRepo
	tut        *tutor.Tutor
	planner    *tutor.Planner
	summarizer *tutor.Summarizer
	profiles   profile.Source
	sessions   *SessionCache
	cfg        Config
}

// NewDynamicEngine creates the dynamic-mode engine.
func NewDynamicEngine(
	plans store.PlanRepo,
	records store.RecordRepo,
	turns store.TurnRepo,
	tut *tutor.Tutor,
	planner *tutor.Planner,
	summarizer *tutor.Summarizer,
	profiles profile.Source,
	sessions *SessionCache,
	cfg Config,
) *DynamicEngine {
	return &DynamicEngine{
		plans:      plans,
		records:    records,
		turns:      turns,
		tut:        tut,
		planner:    planner,
		summarizer: summarizer,
		profiles:   profiles,
		sessions:   sessions,
		cfg:        cfg,
	}
}

// Start generates a learning plan for the topic, activates it, and
// installs a fresh session. Plan generation failure returns the busy
// sentinel with nothing persisted.
func (e *DynamicEngine) Start(ctx context.Context, learnerID, topic string) (Reply, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return say(ReplyCorrection), &ValidationError{Msg: "empty topic"}
	}

	prof := e.lookupProfile(ctx, learnerID)

	goal, modules, err := e.planner.GeneratePlan(ctx, prof, topic)
	if err != nil {
		return say(tutor.Busy), nil
	}

	plan := &store.Plan{
		LearnerID: learnerID,
		PlanID:    uuid.NewString(),
		Topic:     topic,
		Goal:      goal,
		Modules:   modules,
		Active:    true,
	}
	if err := e.plans.Activate(ctx, plan); err != nil {
		return Reply{}, persistErr("activate plan", err)
	}

	rec := &store.ProgressRecord{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		Topic:     topic,
	}
	if err := e.records.Upsert(ctx, rec); err != nil {
		return Reply{}, persistErr("create progress record", err)
	}

	e.sessions.Put(learnerID, SessionState{
		Topic:        topic,
		LastDelivery: time.Now(),
	})

	return say(fmt.Sprintf("Let's learn about %s. %s We'll start with %q. Say \"next\" to begin.",
		topic, goal, modules[0].Title)), nil
}

// Advance generates and delivers the next step. A retried request for an
// already-sent step returns the stored snapshot without generation.
func (e *DynamicEngine) Advance(ctx context.Context, learnerID string) (Reply, error) {
	h, reply, err := e.hydrate(ctx, learnerID)
	if h == nil {
		return reply, err
	}
	plan, rec := h.plan, h.rec

	if rec.StepIdx >= len(plan.Modules)*e.cfg.StepsPerModule {
		return say(ReplyCourseFinished), nil
	}

	// Duplicate delivery: the current step was already generated and sent
	// but never answered. Serve the snapshot instead of generating again.
	// The append is idempotent and repairs a turn row lost to a failed
	// earlier delivery.
	if h.sess.AwaitingAnswer && rec.Snapshot != nil &&
		rec.LastSentStepID != nil && *rec.LastSentStepID == rec.StepIdx-1 {
		if err := e.turns.Append(ctx, &store.Turn{
			LearnerID: learnerID,
			PlanID:    plan.PlanID,
			ModuleIdx: *rec.LastSentStepID / e.cfg.StepsPerModule,
			StepIdx:   *rec.LastSentStepID,
			Role:      store.RoleAssistant,
			Content:   *rec.Snapshot,
			Timestamp: time.Now(),
		}); err != nil {
			return Reply{}, persistErr("log assistant turn", err)
		}
		return say(*rec.Snapshot), nil
	}

	prof := e.lookupProfile(ctx, learnerID)
	moduleIdx := rec.StepIdx / e.cfg.StepsPerModule
	module := plan.Modules[moduleIdx]

	ctx = llm.WithIdentity(ctx, llm.Identity{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		Topic:     plan.Topic,
		StepIdx:   rec.StepIdx,
	})

	text, ok := e.tut.GenerateStep(ctx, tutor.StepInput{
		Profile:      prof,
		Topic:        plan.Topic,
		Goal:         module.Objective,
		StepIdx:      rec.StepIdx,
		PriorSummary: deref(rec.PrevSummary),
	})
	if !ok {
		// Sentinel: nothing advances, nothing is logged.
		return say(tutor.Busy), nil
	}

	sent := rec.StepIdx
	rec.Snapshot = &text
	rec.LastSentStepID = &sent
	rec.StepIdx++
	rec.ModuleIdx = moduleIdx
	if err := e.records.Upsert(ctx, rec); err != nil {
		return Reply{}, persistErr("advance progress record", err)
	}

	if err := e.turns.Append(ctx, &store.Turn{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		ModuleIdx: moduleIdx,
		StepIdx:   sent,
		Role:      store.RoleAssistant,
		Content:   text,
		Timestamp: time.Now(),
	}); err != nil {
		// The record already advanced. Drop the stale session so the next
		// touch rehydrates from the record and re-serves the snapshot
		// instead of generating past the undelivered step.
		e.sessions.Delete(learnerID)
		return Reply{}, persistErr("log assistant turn", err)
	}

	e.sessions.Put(learnerID, SessionState{
		Topic:          plan.Topic,
		StepCount:      rec.StepIdx,
		LastText:       text,
		AwaitingAnswer: true,
		LastDelivery:   time.Now(),
	})

	return say(text), nil
}

// Answer evaluates the learner's free-text reply to the last sent step.
func (e *DynamicEngine) Answer(ctx context.Context, learnerID, text string) (Reply, error) {
	h, reply, err := e.hydrate(ctx, learnerID)
	if h == nil {
		return reply, err
	}
	plan, rec := h.plan, h.rec

	text = strings.TrimSpace(text)
	if text == "" {
		return say(ReplyCorrection), &ValidationError{Msg: "empty answer"}
	}

	if !h.sess.AwaitingAnswer || rec.LastSentStepID == nil {
		return say(ReplyNotAwaiting), nil
	}
	lastSent := *rec.LastSentStepID

	prof := e.lookupProfile(ctx, learnerID)

	ctx = llm.WithIdentity(ctx, llm.Identity{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		Topic:     plan.Topic,
		StepIdx:   lastSent,
	})

	eval, ok := e.tut.EvaluateAnswer(ctx, tutor.EvalInput{
		Profile:      prof,
		Topic:        plan.Topic,
		Answer:       text,
		LastStepText: h.sess.LastText,
	})
	if !ok {
		return say(tutor.Busy), nil
	}

	if err := e.turns.Append(ctx, &store.Turn{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		ModuleIdx: lastSent / e.cfg.StepsPerModule,
		StepIdx:   lastSent,
		Role:      store.RoleLearner,
		Content:   text,
		Timestamp: time.Now(),
	}); err != nil {
		return Reply{}, persistErr("log learner turn", err)
	}

	summary := e.summarizer.Compress(ctx,
		e.summarizer.Extend(deref(rec.PrevSummary), h.sess.LastText, text, eval.Feedback))
	rec.PrevSummary = &summary
	if err := e.records.Upsert(ctx, rec); err != nil {
		return Reply{}, persistErr("update prior summary", err)
	}

	sess := h.sess
	sess.AwaitingAnswer = false
	sess.LastDelivery = time.Now()
	e.sessions.Put(learnerID, sess)

	return say(eval.Feedback), nil
}

// Exit discards the ephemeral session. Durable progress stays.
func (e *DynamicEngine) Exit(_ context.Context, learnerID string) (Reply, error) {
	e.sessions.Delete(learnerID)
	return say(ReplyGoodbye), nil
}

type hydrated struct {
	plan *store.Plan
	rec  *store.ProgressRecord
	sess SessionState
}

// hydrate loads the active plan and record and rebuilds the session on a
// cache miss, regenerating the last step's snapshot if it is missing. A
// busy sentinel during regeneration aborts hydration for this turn; a nil
// result means the caller returns the accompanying reply or error.
func (e *DynamicEngine) hydrate(ctx context.Context, learnerID string) (*hydrated, Reply, error) {
	plan, err := e.plans.Active(ctx, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, say(ReplyNoActivePlan), nil
		}
		return nil, Reply{}, persistErr("read active plan", err)
	}

	rec, err := e.records.Get(ctx, learnerID, plan.PlanID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, Reply{}, persistErr("read progress record", err)
		}
		// Crash between plan activation and record creation: start fresh.
		rec = &store.ProgressRecord{
			LearnerID: learnerID,
			PlanID:    plan.PlanID,
			Topic:     plan.Topic,
		}
		if err := e.records.Upsert(ctx, rec); err != nil {
			return nil, Reply{}, persistErr("create progress record", err)
		}
	}

	if sess, ok := e.sessions.Get(learnerID); ok {
		return &hydrated{plan: plan, rec: rec, sess: sess}, Reply{}, nil
	}

	// Rebuild from the durable record.
	if rec.Snapshot == nil && rec.StepIdx > 0 {
		if reply, err := e.regenerateSnapshot(ctx, learnerID, plan, rec); reply.Text != "" || err != nil {
			return nil, reply, err
		}
	}

	sess := SessionState{
		Topic:        rec.Topic,
		StepCount:    rec.StepIdx,
		LastText:     deref(rec.Snapshot),
		LastDelivery: time.Now(),
	}
	// A rebuilt session is treated as awaiting an answer when the last
	// sent step is current; re-answering is safe, skipping is not.
	sess.AwaitingAnswer = rec.Snapshot != nil &&
		rec.LastSentStepID != nil && *rec.LastSentStepID == rec.StepIdx-1
	e.sessions.Put(learnerID, sess)

	return &hydrated{plan: plan, rec: rec, sess: sess}, Reply{}, nil
}

// regenerateSnapshot rebuilds the missing snapshot for the last sent step.
// Returns a non-empty reply (the busy sentinel) when hydration must abort.
func (e *DynamicEngine) regenerateSnapshot(ctx context.Context, learnerID string, plan *store.Plan, rec *store.ProgressRecord) (Reply, error) {
	prof := e.lookupProfile(ctx, learnerID)
	last := rec.StepIdx - 1
	moduleIdx := last / e.cfg.StepsPerModule
	if moduleIdx >= len(plan.Modules) {
		moduleIdx = len(plan.Modules) - 1
	}

	ctx = llm.WithIdentity(ctx, llm.Identity{
		LearnerID: learnerID,
		PlanID:    plan.PlanID,
		Topic:     plan.Topic,
		StepIdx:   last,
	})

	text, ok := e.tut.GenerateStep(ctx, tutor.StepInput{
		Profile:      prof,
		Topic:        plan.Topic,
		Goal:         plan.Modules[moduleIdx].Objective,
		StepIdx:      last,
		PriorSummary: deref(rec.PrevSummary),
	})
	if !ok {
		return say(tutor.Busy), nil
	}

	rec.Snapshot = &text
	rec.LastSentStepID = &last
	if err := e.records.Upsert(ctx, rec); err != nil {
		return Reply{}, persistErr("restore snapshot", err)
	}
	return Reply{}, nil
}

func (e *DynamicEngine) lookupProfile(ctx context.Context, learnerID string) profile.Profile {
	prof, err := e.profiles.Lookup(ctx, learnerID)
	if err != nil {
		return profile.Default()
	}
	return prof
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
