package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tsarev/lernio/internal/llm"
	"github.com/tsarev/lernio/internal/profile"
	"github.com/tsarev/lernio/internal/store"
)

// Planner generates a learning plan for a topic once, at dynamic start.
type Planner struct {
	provider llm.Provider
	cfg      PlannerConfig
}

// NewPlanner creates a plan generator.
func NewPlanner(provider llm.Provider, cfg PlannerConfig) *Planner {
	return &Planner{provider: provider, cfg: cfg}
}

type planOutput struct {
	Goal    string `json:"goal"`
	Modules []struct {
		Title     string `json:"title"`
		Objective string `json:"objective"`
	} `json:"modules"`
}

// GeneratePlan produces the ordered modules and overall goal for a topic.
func (p *Planner) GeneratePlan(ctx context.Context, prof profile.Profile, topic string) (string, []store.PlanModule, error) {
	ctx = llm.WithPurpose(ctx, "plan")

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(topic, prof, p.cfg)},
		},
		Schema:      PlanSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return "", nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", nil, fmt.Errorf("parse plan response: %w", err)
	}

	if len(out.Modules) < p.cfg.MinModules || len(out.Modules) > p.cfg.MaxModules {
		return "", nil, fmt.Errorf("plan has %d modules, want %d-%d", len(out.Modules), p.cfg.MinModules, p.cfg.MaxModules)
	}

	modules := make([]store.PlanModule, len(out.Modules))
	for i, m := range out.Modules {
		modules[i] = store.PlanModule{Title: m.Title, Objective: m.Objective}
	}

	return out.Goal, modules, nil
}
