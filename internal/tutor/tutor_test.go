package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
)

func stepInput() StepInput {
	return StepInput{
		Profile:      profile.Default(),
		Topic:        "insulin basics",
		Goal:         "Understand what insulin does",
		StepIdx:      2,
		PriorSummary: "Covered what blood sugar is.",
	}
}

func TestGenerateStep_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"text":"Insulin moves sugar into your cells. Can you name one thing that raises blood sugar?"}`)},
	)
	tut := NewTutor(mock, DefaultConfig())

	text, ok := tut.GenerateStep(context.Background(), stepInput())
	if !ok {
		t.Fatal("expected successful generation")
	}
	if !strings.Contains(text, "Insulin moves sugar") {
		t.Fatalf("unexpected text: %q", text)
	}
	if strings.Count(text, "?") > 1 {
		t.Fatalf("more than one question in step text: %q", text)
	}
}

func TestGenerateStep_GatewayFailureReturnsBusy(t *testing.T) {
	failures := []error{
		&llm.ErrTransport{Err: errors.New("down")},
		&llm.ErrEmptyResponse{},
		&llm.ErrMalformedResponse{Err: errors.New("bad json")},
		&llm.ErrRateLimit{Err: errors.New("429")},
		context.DeadlineExceeded,
	}

	for _, failure := range failures {
		mock := llm.NewMockProvider(llm.MockResponse{Err: failure})
		tut := NewTutor(mock, DefaultConfig())

		text, ok := tut.GenerateStep(context.Background(), stepInput())
		if ok {
			t.Fatalf("expected failure for %T", failure)
		}
		if text != Busy {
			t.Fatalf("expected busy sentinel for %T, got: %q", failure, text)
		}
	}
}

func TestGenerateStep_UnparseableContentReturnsBusy(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
	)
	tut := NewTutor(mock, DefaultConfig())

	text, ok := tut.GenerateStep(context.Background(), stepInput())
	if ok || text != Busy {
		t.Fatalf("expected busy sentinel, got ok=%v text=%q", ok, text)
	}
}

func TestGenerateStep_PromptCarriesPosition(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"text":"Next piece."}`)},
	)
	tut := NewTutor(mock, DefaultConfig())

	if _, ok := tut.GenerateStep(context.Background(), stepInput()); !ok {
		t.Fatal("expected success")
	}

	req := mock.Calls[0]
	user := req.Messages[0].Content
	if !strings.Contains(user, "insulin basics") {
		t.Fatalf("topic missing from prompt: %q", user)
	}
	if !strings.Contains(user, "Step number: 3") {
		t.Fatalf("step number missing from prompt: %q", user)
	}
	if !strings.Contains(user, "Covered what blood sugar is.") {
		t.Fatalf("prior summary missing from prompt: %q", user)
	}
	if req.System == "" {
		t.Fatal("system prompt missing")
	}
}

func TestEvaluateAnswer_AffirmativeShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: any call would fail
	tut := NewTutor(mock, DefaultConfig())

	eval, ok := tut.EvaluateAnswer(context.Background(), EvalInput{
		Profile: profile.Default(),
		Topic:   "insulin basics",
		Answer:  "got it!",
	})
	if !ok {
		t.Fatal("expected success")
	}
	if !eval.Correct {
		t.Fatal("affirmative reply must evaluate as correct")
	}
	if eval.Feedback != Affirmation {
		t.Fatalf("expected fixed affirmation, got: %q", eval.Feedback)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("affirmative shortcut must not call the model, got %d calls", mock.CallCount())
	}
}

func TestEvaluateAnswer_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_correct":false,"feedback":"Close, but insulin lowers blood sugar rather than raising it."}`)},
	)
	tut := NewTutor(mock, DefaultConfig())

	eval, ok := tut.EvaluateAnswer(context.Background(), EvalInput{
		Profile:      profile.Default(),
		Topic:        "insulin basics",
		Answer:       "insulin raises blood sugar",
		LastStepText: "Insulin moves sugar into your cells.",
	})
	if !ok {
		t.Fatal("expected success")
	}
	if eval.Correct {
		t.Fatal("expected incorrect evaluation")
	}
	if !strings.Contains(eval.Feedback, "lowers blood sugar") {
		t.Fatalf("unexpected feedback: %q", eval.Feedback)
	}
}

func TestEvaluateAnswer_GatewayFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	tut := NewTutor(mock, DefaultConfig())

	_, ok := tut.EvaluateAnswer(context.Background(), EvalInput{
		Profile: profile.Default(),
		Topic:   "insulin basics",
		Answer:  "sugar goes somewhere",
	})
	if ok {
		t.Fatal("expected failure")
	}
}

func TestEvaluateAnswer_FeedbackSanitized(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_correct":true,"feedback":"**Right!** What about exercise? And what about stress?"}`)},
	)
	tut := NewTutor(mock, DefaultConfig())

	eval, ok := tut.EvaluateAnswer(context.Background(), EvalInput{
		Profile: profile.Default(),
		Topic:   "insulin basics",
		Answer:  "food raises it",
	})
	if !ok {
		t.Fatal("expected success")
	}
	if strings.Contains(eval.Feedback, "*") {
		t.Fatalf("markup survived: %q", eval.Feedback)
	}
	if strings.Count(eval.Feedback, "?") > 1 {
		t.Fatalf("more than one question in feedback: %q", eval.Feedback)
	}
}
