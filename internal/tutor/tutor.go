package tutor

import (
	"context"
	"encoding/json"

	"github.com/tsarev/lernio/internal/llm"
)

// Busy is the fixed sentinel returned in place of generated content when
// the model fails for any reason. Callers must not advance progress or
// write a turn when they see ok == false.
const Busy = "I'm a little busy right now. Give me a moment and send your message again."

// Affirmation is the fixed reply for a plain acknowledgement, sent without
// a model call.
const Affirmation = "Great, glad that's clear. Say \"next\" when you want to continue."

// Tutor generates lesson steps and evaluates answers through the model
// gateway. Every gateway failure is absorbed here into the Busy sentinel;
// errors never propagate to callers.
type Tutor struct {
	provider llm.Provider
	cfg      Config
}

// NewTutor creates a tutor on top of the given provider.
func NewTutor(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, cfg: cfg}
}

type stepOutput struct {
	Text string `json:"text"`
}

// GenerateStep produces the next step text for the learner's position.
// Returns (Busy, false) on any gateway failure.
func (t *Tutor) GenerateStep(ctx context.Context, in StepInput) (string, bool) {
	ctx = llm.WithPurpose(ctx, "step")

	req := llm.Request{
		System: buildSystemPrompt(in.Profile, t.cfg.MaxReplyChars),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStepUserMessage(in, t.cfg.MaxSummaryChars)},
		},
		Schema:      StepSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		return Busy, false
	}

	var out stepOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Busy, false
	}

	text := Sanitize(out.Text, t.cfg.MaxReplyChars)
	if text == "" {
		return Busy, false
	}
	return text, true
}

type evalOutput struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

// EvaluateAnswer judges a free-text answer. A plain affirmative reply
// short-circuits to a fixed affirmation without a model call. Returns
// (Evaluation{}, false) on any gateway failure; callers reply with Busy.
func (t *Tutor) EvaluateAnswer(ctx context.Context, in EvalInput) (Evaluation, bool) {
	if IsAffirmative(in.Answer) {
		return Evaluation{Correct: true, Feedback: Affirmation}, true
	}

	ctx = llm.WithPurpose(ctx, "evaluate")

	req := llm.Request{
		System: buildSystemPrompt(in.Profile, t.cfg.MaxReplyChars),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalUserMessage(in)},
		},
		Schema:      EvalSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		return Evaluation{}, false
	}

	var out evalOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Evaluation{}, false
	}

	feedback := Sanitize(out.Feedback, t.cfg.MaxReplyChars)
	if feedback == "" {
		return Evaluation{}, false
	}
	return Evaluation{Correct: out.IsCorrect, Feedback: feedback}, true
}
