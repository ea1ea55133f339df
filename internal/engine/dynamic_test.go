package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
	"github.com/tsarev/lernio/internal/store"
	"github.com/tsarev/lernio/internal/tutor"
)

func buildDynamic(provider llm.Provider, plans *fakePlans, records *fakeRecords, turns *fakeTurns, cfg Config) (*DynamicEngine, *SessionCache) {
	sessions := NewSessionCache(cfg.SessionMaxEntries, cfg.SessionTTL)
	eng := NewDynamicEngine(
		plans, records, turns,
		tutor.NewTutor(provider, tutor.DefaultConfig()),
		tutor.NewPlanner(provider, tutor.DefaultPlannerConfig()),
		tutor.NewSummarizer(provider, tutor.DefaultSummarizerConfig()),
		profile.NewStaticSource(nil, profile.Default()),
		sessions,
		cfg,
	)
	return eng, sessions
}

func seededPlan() *store.Plan {
	return &store.Plan{
		LearnerID: "learner-1",
		PlanID:    "plan-1",
		Topic:     "insulin basics",
		Goal:      "Understand how insulin keeps blood sugar in range.",
		Modules: []store.PlanModule{
			{Title: "What blood sugar is", Objective: "Explain what glucose does."},
			{Title: "What insulin does", Objective: "Describe how insulin works."},
			{Title: "Daily routine", Objective: "Connect insulin to meals."},
		},
		Active: true,
	}
}

func freshRecord() *store.ProgressRecord {
	return &store.ProgressRecord{
		LearnerID: "learner-1",
		PlanID:    "plan-1",
		Topic:     "insulin basics",
	}
}

func stepJSON(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"text":%q}`, text))}
}

func evalJSON(correct bool, feedback string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"is_correct":%t,"feedback":%q}`, correct, feedback))}
}

const planJSON = `{
	"goal": "Understand how insulin keeps blood sugar in range.",
	"modules": [
		{"title": "What blood sugar is", "objective": "Explain what glucose does."},
		{"title": "What insulin does", "objective": "Describe how insulin works."},
		{"title": "Daily routine", "objective": "Connect insulin to meals."}
	]
}`

func TestDynamic_StartGeneratesAndActivatesPlan(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(planJSON)},
	)
	plans, records, turns := newFakePlans(), newFakeRecords(), newFakeTurns()
	eng, sessions := buildDynamic(mock, plans, records, turns, DefaultConfig())

	r, err := eng.Start(ctx, "learner-1", "insulin basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "insulin basics")
	assert.Contains(t, r.Text, "What blood sugar is")

	plan, err := plans.Active(ctx, "learner-1")
	require.NoError(t, err)
	assert.Len(t, plan.Modules, 3)

	rec := records.mustRecord("learner-1", plan.PlanID)
	assert.Equal(t, 0, rec.StepIdx)
	assert.Equal(t, 1, sessions.Len())
}

func TestDynamic_StartDeactivatesPreviousPlan(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(planJSON)},
		llm.MockResponse{Content: json.RawMessage(planJSON)},
	)
	plans, records, turns := newFakePlans(), newFakeRecords(), newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	_, err := eng.Start(ctx, "learner-1", "insulin basics")
	require.NoError(t, err)
	first, err := plans.Active(ctx, "learner-1")
	require.NoError(t, err)

	_, err = eng.Start(ctx, "learner-1", "carb counting")
	require.NoError(t, err)
	second, err := plans.Active(ctx, "learner-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.PlanID, second.PlanID)
	assert.Equal(t, "carb counting", second.Topic)
}

func TestDynamic_StartPlanFailureReturnsBusy(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	plans, records, turns := newFakePlans(), newFakeRecords(), newFakeTurns()
	eng, sessions := buildDynamic(mock, plans, records, turns, DefaultConfig())

	r, err := eng.Start(ctx, "learner-1", "insulin basics")
	require.NoError(t, err)
	assert.Equal(t, tutor.Busy, r.Text)

	_, err = plans.Active(ctx, "learner-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, 0, sessions.Len())
}

func TestDynamic_StartEmptyTopic(t *testing.T) {
	eng, _ := buildDynamic(llm.NewMockProvider(), newFakePlans(), newFakeRecords(), newFakeTurns(), DefaultConfig())

	r, err := eng.Start(context.Background(), "learner-1", "   ")
	assert.Equal(t, ReplyCorrection, r.Text)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestDynamic_AdvanceGeneratesPersistsAndLogs(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where do you think it comes from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	r, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Glucose is your body's fuel.")

	rec := records.mustRecord("learner-1", "plan-1")
	assert.Equal(t, 1, rec.StepIdx)
	require.NotNil(t, rec.Snapshot)
	require.NotNil(t, rec.LastSentStepID)
	assert.Equal(t, 0, *rec.LastSentStepID)

	rows, err := turns.List(ctx, "learner-1", "plan-1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, store.RoleAssistant, rows[0].Role)
	assert.Equal(t, 0, rows[0].StepIdx)
}

func TestDynamic_SentinelLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	r, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, tutor.Busy, r.Text)

	rec := records.mustRecord("learner-1", "plan-1")
	assert.Equal(t, 0, rec.StepIdx)
	assert.Nil(t, rec.Snapshot)

	n, err := turns.Count(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDynamic_DuplicateAdvanceServedFromSnapshot(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	first, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)

	second, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, 1, records.mustRecord("learner-1", "plan-1").StepIdx)

	n, err := turns.Count(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDynamic_TurnLogFailureRedeliversSnapshot(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
		stepJSON("Insulin is the key that lets glucose into cells. What happens without it?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, sessions := buildDynamic(mock, plans, records, turns, DefaultConfig())

	turns.appendErr = assert.AnError
	_, err := eng.Advance(ctx, "learner-1")
	assert.ErrorIs(t, err, assert.AnError)

	// The record advanced but the session was dropped, so the retry
	// rehydrates from the record instead of trusting stale state.
	assert.Equal(t, 1, records.mustRecord("learner-1", "plan-1").StepIdx)
	assert.Equal(t, 0, sessions.Len())

	// The retry re-serves the undelivered step, not the one after it.
	turns.appendErr = nil
	r, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Glucose is your body's fuel.")
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, 1, records.mustRecord("learner-1", "plan-1").StepIdx)

	// The turn row lost to the failed delivery is repaired.
	rows, err := turns.List(ctx, "learner-1", "plan-1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, store.RoleAssistant, rows[0].Role)
	assert.Equal(t, 0, rows[0].StepIdx)
}

func TestDynamic_AnswerEvaluatesAndExtendsSummary(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
		evalJSON(true, "Exactly, it comes from the food you eat."),
		stepJSON("Insulin is the key that lets glucose into cells. What do you think happens without it?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	_, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)

	r, err := eng.Answer(ctx, "learner-1", "from food")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "comes from the food")

	rec := records.mustRecord("learner-1", "plan-1")
	require.NotNil(t, rec.PrevSummary)
	assert.Contains(t, *rec.PrevSummary, "Glucose is your body's fuel.")
	assert.Contains(t, *rec.PrevSummary, "from food")

	rows, err := turns.List(ctx, "learner-1", "plan-1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, store.RoleLearner, rows[1].Role)

	// The next advance generates again instead of redelivering.
	next, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, next.Text, "Insulin is the key")
	assert.Equal(t, 2, records.mustRecord("learner-1", "plan-1").StepIdx)
}

func TestDynamic_AffirmativeAnswerSkipsModel(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Ready to continue?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	_, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	r, err := eng.Answer(ctx, "learner-1", "got it")
	require.NoError(t, err)
	assert.Equal(t, tutor.Affirmation, r.Text)
	assert.Equal(t, 1, mock.CallCount())

	n, err := turns.Count(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDynamic_AnswerWithoutOpenQuestion(t *testing.T) {
	ctx := context.Background()
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	eng, _ := buildDynamic(llm.NewMockProvider(), plans, records, newFakeTurns(), DefaultConfig())

	r, err := eng.Answer(ctx, "learner-1", "hello there")
	require.NoError(t, err)
	assert.Equal(t, ReplyNotAwaiting, r.Text)
}

func TestDynamic_HydrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()

	engA, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())
	first, err := engA.Advance(ctx, "learner-1")
	require.NoError(t, err)

	// Fresh process: same durable repos, empty session cache, a provider
	// that would fail if called.
	engB, sessions := buildDynamic(llm.NewMockProvider(), plans, records, turns, DefaultConfig())

	second, err := engB.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)

	sess, ok := sessions.Get("learner-1")
	require.True(t, ok)
	assert.Equal(t, "insulin basics", sess.Topic)
	assert.Equal(t, 1, sess.StepCount)
	assert.Equal(t, first.Text, sess.LastText)
}

func TestDynamic_HydrationRegeneratesMissingSnapshot(t *testing.T) {
	ctx := context.Background()
	rec := freshRecord()
	rec.StepIdx = 1 // crashed after increment, before snapshot survived

	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(rec)
	eng, _ := buildDynamic(mock, plans, records, newFakeTurns(), DefaultConfig())

	r, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Glucose is your body's fuel.")
	assert.Equal(t, 1, mock.CallCount())

	stored := records.mustRecord("learner-1", "plan-1")
	require.NotNil(t, stored.Snapshot)
	require.NotNil(t, stored.LastSentStepID)
	assert.Equal(t, 0, *stored.LastSentStepID)
	assert.Equal(t, 1, stored.StepIdx)
}

func TestDynamic_HydrationAbortsOnSentinel(t *testing.T) {
	ctx := context.Background()
	rec := freshRecord()
	rec.StepIdx = 1

	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(rec)
	eng, sessions := buildDynamic(mock, plans, records, newFakeTurns(), DefaultConfig())

	r, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, tutor.Busy, r.Text)

	// No corrupt session was installed; the durable record is untouched.
	assert.Equal(t, 0, sessions.Len())
	assert.Nil(t, records.mustRecord("learner-1", "plan-1").Snapshot)
}

func TestDynamic_AdvanceWithoutPlan(t *testing.T) {
	eng, _ := buildDynamic(llm.NewMockProvider(), newFakePlans(), newFakeRecords(), newFakeTurns(), DefaultConfig())

	r, err := eng.Advance(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, ReplyNoActivePlan, r.Text)
}

func TestDynamic_CourseFinished(t *testing.T) {
	cfg := DefaultConfig()
	rec := freshRecord()
	rec.StepIdx = len(seededPlan().Modules) * cfg.StepsPerModule
	last := rec.StepIdx - 1
	snapshot := "That's the last step."
	rec.Snapshot = &snapshot
	rec.LastSentStepID = &last

	mock := llm.NewMockProvider()
	eng, _ := buildDynamic(mock, newFakePlans(seededPlan()), newFakeRecords(rec), newFakeTurns(), cfg)

	r, err := eng.Advance(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, ReplyCourseFinished, r.Text)
	assert.Equal(t, 0, mock.CallCount())
}

func TestDynamic_ModuleProgression(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.StepsPerModule = 1

	mock := llm.NewMockProvider(
		stepJSON("Module one step. Ready?"),
		stepJSON("Module two step. Ready?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, cfg)

	_, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	_, err = eng.Answer(ctx, "learner-1", "yes")
	require.NoError(t, err)
	_, err = eng.Advance(ctx, "learner-1")
	require.NoError(t, err)

	assert.Equal(t, 1, records.mustRecord("learner-1", "plan-1").ModuleIdx)

	rows, err := turns.List(ctx, "learner-1", "plan-1", 0)
	require.NoError(t, err)
	var moduleIdxs []int
	for _, row := range rows {
		if row.Role == store.RoleAssistant {
			moduleIdxs = append(moduleIdxs, row.ModuleIdx)
		}
	}
	assert.Equal(t, []int{0, 1}, moduleIdxs)
}

func TestDynamic_PersistenceErrorSurfaced(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	records.upsertErr = assert.AnError
	turns := newFakeTurns()
	eng, _ := buildDynamic(mock, plans, records, turns, DefaultConfig())

	_, err := eng.Advance(ctx, "learner-1")
	assert.ErrorIs(t, err, assert.AnError)

	n, err := turns.Count(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDynamic_ExitDiscardsSessionKeepsProgress(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	plans := newFakePlans(seededPlan())
	records := newFakeRecords(freshRecord())
	eng, sessions := buildDynamic(mock, plans, records, newFakeTurns(), DefaultConfig())

	_, err := eng.Advance(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 1, sessions.Len())

	r, err := eng.Exit(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, ReplyGoodbye, r.Text)
	assert.Equal(t, 0, sessions.Len())
	assert.Equal(t, 1, records.mustRecord("learner-1", "plan-1").StepIdx)
}
