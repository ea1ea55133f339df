package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func seedLesson(t *testing.T, s *Store) *Lesson {
	t.Helper()
	l := &Lesson{
		Slug:   "insulin-basics",
		Title:  "Insulin Basics",
		Body:   "What insulin does and why dosing matters.",
		Active: true,
		Steps: []LessonStep{
			{Ord: 0, Body: "Insulin moves glucose from blood into cells."},
			{Ord: 1, Body: "Dose timing depends on the therapy type."},
		},
		Questions: []QuizQuestion{
			{Ord: 0, Text: "What does insulin lower?", Options: []string{"Blood glucose", "Blood pressure"}, Correct: 0},
			{Ord: 1, Text: "When is a bolus taken?", Options: []string{"At bedtime only", "Around meals"}, Correct: 1},
		},
	}
	if err := s.CatalogRepo().Put(context.Background(), l); err != nil {
		t.Fatalf("put lesson: %v", err)
	}
	return l
}

func TestCatalogPutGet(t *testing.T) {
	s := openTestStore(t)
	seedLesson(t, s)

	got, err := s.CatalogRepo().Get(context.Background(), "insulin-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Insulin Basics" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Steps) != 2 || got.Steps[0].Ord != 0 || got.Steps[1].Ord != 1 {
		t.Errorf("steps out of order: %+v", got.Steps)
	}
	if len(got.Questions) != 2 || got.Questions[1].Correct != 1 {
		t.Errorf("questions = %+v", got.Questions)
	}
}

func TestCatalogGetUnknownSlug(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CatalogRepo().Get(context.Background(), "no-such-lesson")
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogPutReplaces(t *testing.T) {
	s := openTestStore(t)
	l := seedLesson(t, s)

	l.Title = "Insulin Basics v2"
	l.Steps = l.Steps[:1]
	if err := s.CatalogRepo().Put(context.Background(), l); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	got, err := s.CatalogRepo().Get(context.Background(), l.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Insulin Basics v2" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Steps) != 1 {
		t.Errorf("steps = %d, want 1", len(got.Steps))
	}
}

func TestCatalogRetire(t *testing.T) {
	s := openTestStore(t)
	seedLesson(t, s)
	ctx := context.Background()

	if err := s.CatalogRepo().Retire(ctx, "insulin-basics"); err != nil {
		t.Fatalf("retire: %v", err)
	}
	got, err := s.CatalogRepo().Get(ctx, "insulin-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active {
		t.Error("expected lesson to be inactive after retire")
	}

	if err := s.CatalogRepo().Retire(ctx, "missing"); err != ErrNotFound {
		t.Errorf("retire missing = %v, want ErrNotFound", err)
	}
}

func TestProgressUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "learner-1", "insulin-basics")
	if err != ErrNotFound {
		t.Fatalf("get before start = %v, want ErrNotFound", err)
	}

	p := &LessonProgress{LearnerID: "learner-1", LessonSlug: "insulin-basics"}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	p.StepIdx = 2
	p.QuestionIdx = 1
	p.QuizCorrect = 1
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "learner-1", "insulin-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StepIdx != 2 || got.QuestionIdx != 1 || got.QuizCorrect != 1 {
		t.Errorf("progress = %+v", got)
	}
	if got.Completed || got.QuizScore != nil {
		t.Errorf("expected incomplete progress, got %+v", got)
	}

	score := 50
	p.Completed = true
	p.QuizScore = &score
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("complete upsert: %v", err)
	}
	got, err = repo.Get(ctx, "learner-1", "insulin-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed || got.QuizScore == nil || *got.QuizScore != 50 {
		t.Errorf("completed progress = %+v", got)
	}
}

func TestProgressLatestIncomplete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if _, err := repo.LatestIncomplete(ctx, "learner-1"); err != ErrNotFound {
		t.Fatalf("latest with no rows = %v, want ErrNotFound", err)
	}

	older := &LessonProgress{LearnerID: "learner-1", LessonSlug: "insulin-basics"}
	if err := repo.Upsert(ctx, older); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	newer := &LessonProgress{LearnerID: "learner-1", LessonSlug: "hypo-warning-signs"}
	if err := repo.Upsert(ctx, newer); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.LatestIncomplete(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.LessonSlug != "hypo-warning-signs" {
		t.Errorf("slug = %q, want the most recently touched lesson", got.LessonSlug)
	}

	// Completed rows no longer count.
	newer.Completed = true
	if err := repo.Upsert(ctx, newer); err != nil {
		t.Fatalf("complete upsert: %v", err)
	}
	got, err = repo.LatestIncomplete(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.LessonSlug != "insulin-basics" {
		t.Errorf("slug = %q, want the remaining incomplete lesson", got.LessonSlug)
	}
}

func TestPlanActivateDeactivatesPrevious(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	first := &Plan{
		LearnerID: "learner-1",
		PlanID:    "plan-a",
		Topic:     "carb counting",
		Goal:      "Count carbs for everyday meals.",
		Modules:   []PlanModule{{Title: "Labels", Objective: "Read nutrition labels"}},
	}
	if err := repo.Activate(ctx, first); err != nil {
		t.Fatalf("activate first: %v", err)
	}

	second := &Plan{
		LearnerID: "learner-1",
		PlanID:    "plan-b",
		Topic:     "hypoglycemia",
		Goal:      "Recognize and treat low blood sugar.",
		Modules:   []PlanModule{{Title: "Symptoms", Objective: "Spot early warning signs"}},
	}
	if err := repo.Activate(ctx, second); err != nil {
		t.Fatalf("activate second: %v", err)
	}

	active, err := repo.Active(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active.PlanID != "plan-b" {
		t.Errorf("active plan = %q, want plan-b", active.PlanID)
	}

	old, err := repo.Get(ctx, "learner-1", "plan-a")
	if err != nil {
		t.Fatalf("get plan-a: %v", err)
	}
	if old.Active {
		t.Error("expected plan-a to be deactivated")
	}
	if len(active.Modules) != 1 || active.Modules[0].Title != "Symptoms" {
		t.Errorf("modules round-trip = %+v", active.Modules)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	snapshot := "Step one: what carbohydrates are."
	summary := "Learner understands sugars vs starches."
	lastSent := 0
	rec := &ProgressRecord{
		LearnerID:      "learner-1",
		PlanID:         "plan-a",
		Topic:          "carb counting",
		ModuleIdx:      0,
		StepIdx:        1,
		Snapshot:       &snapshot,
		PrevSummary:    &summary,
		LastSentStepID: &lastSent,
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Reopen path: a fresh Get must reconstruct exactly what was persisted.
	got, err := repo.Get(ctx, "learner-1", "plan-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Topic != "carb counting" || got.StepIdx != 1 {
		t.Errorf("record = %+v", got)
	}
	if got.Snapshot == nil || *got.Snapshot != snapshot {
		t.Errorf("snapshot = %v", got.Snapshot)
	}
	if got.PrevSummary == nil || *got.PrevSummary != summary {
		t.Errorf("prev summary = %v", got.PrevSummary)
	}
	if got.LastSentStepID == nil || *got.LastSentStepID != 0 {
		t.Errorf("last sent step = %v", got.LastSentStepID)
	}
}

func TestTurnAppendIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.TurnRepo()
	ctx := context.Background()

	turn := &Turn{
		LearnerID: "learner-1",
		PlanID:    "plan-a",
		ModuleIdx: 0,
		StepIdx:   3,
		Role:      RoleAssistant,
		Content:   "Step three text.",
	}
	if err := repo.Append(ctx, turn); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.Append(ctx, turn); err != nil {
		t.Fatalf("duplicate append should be a no-op, got: %v", err)
	}

	turns, err := repo.List(ctx, "learner-1", "plan-a", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("stored turns = %d, want exactly 1", len(turns))
	}

	// Same step, different role is a distinct row.
	turn.Role = RoleLearner
	turn.Content = "yes"
	if err := repo.Append(ctx, turn); err != nil {
		t.Fatalf("learner append: %v", err)
	}
	n, err := repo.Count(ctx, "learner-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "step-gen",
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    12,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Calls != 3 || usage[0].InputTokens != 300 {
		t.Errorf("usage = %+v", usage)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "mock" || byModel[0].OutputTokens != 120 {
		t.Errorf("model usage = %+v", byModel)
	}
}
