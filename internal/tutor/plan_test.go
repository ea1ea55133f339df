package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
)

const validPlanJSON = `{
	"goal": "Understand how insulin keeps blood sugar in range.",
	"modules": [
		{"title": "What blood sugar is", "objective": "Explain what glucose does in the body."},
		{"title": "What insulin does", "objective": "Describe how insulin moves glucose into cells."},
		{"title": "Highs and lows", "objective": "Recognize symptoms of high and low blood sugar."},
		{"title": "Daily routine", "objective": "Connect insulin timing to meals and activity."}
	]
}`

func TestGeneratePlan_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validPlanJSON)},
	)
	planner := NewPlanner(mock, DefaultPlannerConfig())

	goal, modules, err := planner.GeneratePlan(context.Background(), profile.Default(), "insulin basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal == "" {
		t.Fatal("expected a goal")
	}
	if len(modules) != 4 {
		t.Fatalf("expected 4 modules, got %d", len(modules))
	}
	if modules[0].Title != "What blood sugar is" {
		t.Fatalf("module order not preserved: %q", modules[0].Title)
	}
	if modules[3].Objective == "" {
		t.Fatal("module objective missing")
	}
}

func TestGeneratePlan_TooFewModules(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"goal": "g",
			"modules": [
				{"title": "only one", "objective": "o"}
			]
		}`)},
	)
	planner := NewPlanner(mock, DefaultPlannerConfig())

	_, _, err := planner.GeneratePlan(context.Background(), profile.Default(), "insulin basics")
	if err == nil {
		t.Fatal("expected error for undersized plan")
	}
}

func TestGeneratePlan_GatewayFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	planner := NewPlanner(mock, DefaultPlannerConfig())

	_, _, err := planner.GeneratePlan(context.Background(), profile.Default(), "insulin basics")
	if err == nil {
		t.Fatal("expected error")
	}
}
