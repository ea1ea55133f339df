package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsarev/lernio/internal/llm"
)

// gatedProvider blocks inside Generate until released, so tests can hold a
// learner's turn in flight while firing a second one.
type gatedProvider struct {
	inner   llm.Provider
	entered chan struct{}
	release chan struct{}
}

func newGatedProvider(inner llm.Provider) *gatedProvider {
	return &gatedProvider{
		inner:   inner,
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.inner.Generate(ctx, req)
}

func (g *gatedProvider) ModelID() string { return g.inner.ModelID() }

type dispatcherFixture struct {
	dispatcher *Dispatcher
	catalog    *fakeCatalog
	progress   *fakeProgress
	plans      *fakePlans
	records    *fakeRecords
	turns      *fakeTurns
}

func buildDispatcher(mode Mode, provider llm.Provider, guard *Guard, cfg Config, opts ...func(*dispatcherFixture)) *dispatcherFixture {
	f := &dispatcherFixture{
		catalog:  newFakeCatalog(),
		progress: newFakeProgress(),
		plans:    newFakePlans(),
		records:  newFakeRecords(),
		turns:    newFakeTurns(),
	}
	for _, opt := range opts {
		opt(f)
	}
	static := NewStaticEngine(f.catalog, f.progress)
	dynamic, _ := buildDynamic(provider, f.plans, f.records, f.turns, cfg)
	f.dispatcher = NewDispatcher(mode, static, dynamic, guard)
	return f
}

func TestDispatcher_StaticRouting(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(100, time.Minute)
	f := buildDispatcher(ModeStatic, llm.NewMockProvider(), guard, DefaultConfig(), func(f *dispatcherFixture) {
		f.catalog = newFakeCatalog(twoStepLesson())
	})

	r, err := f.dispatcher.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "Insulin moves sugar")

	// Subsequent operations route to the static engine for the slug.
	r, err = f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "pancreas")
}

func TestDispatcher_StaticFallsBackToDynamic(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(100, time.Minute)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(planJSON)})
	f := buildDispatcher(ModeStatic, mock, guard, DefaultConfig())

	r, err := f.dispatcher.Start(ctx, "learner-1", "insulin basics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.Text, ReplyFallbackNotice))
	assert.Contains(t, r.Text, "insulin basics")

	_, err = f.plans.Active(ctx, "learner-1")
	assert.NoError(t, err)
}

func TestDispatcher_RateLimitSecondAdvance(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(planJSON)},
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	)
	// DefaultConfig allows one action per window.
	cfg := DefaultConfig()
	guard := NewGuard(cfg.RateLimit, cfg.RateWindow)
	base := time.Now()
	guard.now = func() time.Time { return base }
	f := buildDispatcher(ModeDynamic, mock, guard, cfg)

	_, err := f.dispatcher.Start(ctx, "learner-1", "insulin basics")
	require.NoError(t, err)

	guard.now = func() time.Time { return base.Add(cfg.RateWindow) }
	r, err := f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 2, mock.CallCount())

	// Second advance inside the same window: visible slow-down, no work.
	r, err = f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, ReplySlowDown, r.Text)
	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, 1, f.records.mustRecord("learner-1", activePlanID(t, f)).StepIdx)
}

func TestDispatcher_ConcurrentAdvanceDropsSecond(t *testing.T) {
	ctx := context.Background()
	gated := newGatedProvider(llm.NewMockProvider(
		stepJSON("Glucose is your body's fuel. Where does it come from?"),
	))
	guard := NewGuard(100, time.Minute)
	f := buildDispatcher(ModeDynamic, gated, guard, DefaultConfig(), func(f *dispatcherFixture) {
		f.plans = newFakePlans(seededPlan())
		f.records = newFakeRecords(freshRecord())
	})

	type result struct {
		reply Reply
		err   error
	}
	done := make(chan result, 1)
	go func() {
		r, err := f.dispatcher.Advance(ctx, "learner-1")
		done <- result{r, err}
	}()

	// First turn is inside generation and holds the busy flag.
	<-gated.entered

	second, err := f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.True(t, second.Silent)

	close(gated.release)
	first := <-done
	require.NoError(t, first.err)
	assert.Contains(t, first.reply.Text, "Glucose is your body's fuel.")

	// Exactly one transition and one logged turn.
	assert.Equal(t, 1, f.records.mustRecord("learner-1", "plan-1").StepIdx)
	n, err := f.turns.Count(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_ExitKeepsDurableStaticProgress(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(100, time.Minute)
	f := buildDispatcher(ModeStatic, llm.NewMockProvider(), guard, DefaultConfig(), func(f *dispatcherFixture) {
		f.catalog = newFakeCatalog(twoStepLesson())
	})

	_, err := f.dispatcher.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)

	r, err := f.dispatcher.Exit(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, ReplyGoodbye, r.Text)

	// The in-process route is cleared, but the lesson is still incomplete
	// in durable progress, so the next advance resumes it.
	r, err = f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "pancreas")
}

func TestDispatcher_RestartResumesStaticLesson(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(100, time.Minute)
	f := buildDispatcher(ModeStatic, llm.NewMockProvider(), guard, DefaultConfig(), func(f *dispatcherFixture) {
		f.catalog = newFakeCatalog(twoStepLesson())
	})

	_, err := f.dispatcher.Start(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	_, err = f.dispatcher.Advance(ctx, "learner-1")
	require.NoError(t, err)

	// Fresh process: same durable repos, empty route map. The advance must
	// resume the lesson, not fall through to dynamic mode or reset it.
	restarted := restartDispatcher(f)
	r, err := restarted.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "sugar stays in the blood")

	row, err := f.progress.Get(ctx, "learner-1", "insulin-basics")
	require.NoError(t, err)
	assert.Equal(t, 2, row.StepIdx)
	assert.False(t, row.Completed)

	// Advance onto the quiz, then answer through yet another fresh process.
	r, err = restarted.Advance(ctx, "learner-1")
	require.NoError(t, err)
	assert.Contains(t, r.Text, "What does insulin do?")

	r, err = restartDispatcher(f).Answer(ctx, "learner-1", "1")
	require.NoError(t, err)
	assert.Equal(t, ReplyCorrect, r.Text)
}

// restartDispatcher rebuilds the dispatcher over the fixture's repos, as a
// process restart would.
func restartDispatcher(f *dispatcherFixture) *Dispatcher {
	static := NewStaticEngine(f.catalog, f.progress)
	dynamic, _ := buildDynamic(llm.NewMockProvider(), f.plans, f.records, f.turns, DefaultConfig())
	return NewDispatcher(ModeStatic, static, dynamic, NewGuard(100, time.Minute))
}

func activePlanID(t *testing.T, f *dispatcherFixture) string {
	t.Helper()
	plan, err := f.plans.Active(context.Background(), "learner-1")
	require.NoError(t, err)
	return plan.PlanID
}
