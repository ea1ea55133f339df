package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tsarev/lernio/internal/llm"
)

// Summarizer maintains the running prior-turn summary fed back into step
// prompts. Compression is synchronous because the next prompt needs the
// result; its failure is non-fatal.
type Summarizer struct {
	provider llm.Provider
	cfg      SummarizerConfig
}

// NewSummarizer creates a summary compressor.
func NewSummarizer(provider llm.Provider, cfg SummarizerConfig) *Summarizer {
	return &Summarizer{provider: provider, cfg: cfg}
}

// Extend appends one evaluated turn to the running summary. Pure.
func (s *Summarizer) Extend(prev, stepText, answer, feedback string) string {
	var b strings.Builder
	if prev != "" {
		b.WriteString(prev)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Taught: %s", stepText))
	if answer != "" {
		b.WriteString(fmt.Sprintf(" Learner said: %s.", answer))
	}
	if feedback != "" {
		b.WriteString(fmt.Sprintf(" Feedback: %s", feedback))
	}
	return b.String()
}

type summaryOutput struct {
	Summary string `json:"summary"`
}

// Compress shortens the running summary once it crosses the threshold.
// On any model failure the raw summary is truncated instead; the caller
// always gets a usable summary back.
func (s *Summarizer) Compress(ctx context.Context, raw string) string {
	if len([]rune(raw)) <= SummaryCompressionThreshold {
		return raw
	}

	ctx = llm.WithPurpose(ctx, "summary-compress")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(raw)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return truncate(raw, SummaryCompressionThreshold)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Summary == "" {
		return truncate(raw, SummaryCompressionThreshold)
	}

	return out.Summary
}
