package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tsarev/lernio/internal/llm"
)

func TestSummarizer_Extend(t *testing.T) {
	s := NewSummarizer(llm.NewMockProvider(), DefaultSummarizerConfig())

	first := s.Extend("", "Insulin moves sugar into cells.", "", "")
	if !strings.Contains(first, "Taught: Insulin moves sugar into cells.") {
		t.Fatalf("unexpected summary: %q", first)
	}

	second := s.Extend(first, "Highs feel like thirst.", "so water helps?", "Water helps, yes.")
	if !strings.Contains(second, first) {
		t.Fatalf("previous summary lost: %q", second)
	}
	if !strings.Contains(second, "Learner said: so water helps?.") {
		t.Fatalf("answer missing: %q", second)
	}
	if !strings.Contains(second, "Feedback: Water helps, yes.") {
		t.Fatalf("feedback missing: %q", second)
	}
}

func TestSummarizer_CompressBelowThresholdNoCall(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewSummarizer(mock, DefaultSummarizerConfig())

	raw := "Short summary."
	got := s.Compress(context.Background(), raw)
	if got != raw {
		t.Fatalf("short summary must pass through, got: %q", got)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no model call, got %d", mock.CallCount())
	}
}

func TestSummarizer_CompressAboveThreshold(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"summary":"Covered insulin, highs and lows; learner confuses raise with lower."}`)},
	)
	s := NewSummarizer(mock, DefaultSummarizerConfig())

	raw := strings.Repeat("Taught something long. ", 50)
	got := s.Compress(context.Background(), raw)
	if got != "Covered insulin, highs and lows; learner confuses raise with lower." {
		t.Fatalf("unexpected compressed summary: %q", got)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
}

func TestSummarizer_CompressFailureTruncates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransport{Err: errors.New("down")}},
	)
	s := NewSummarizer(mock, DefaultSummarizerConfig())

	raw := strings.Repeat("Taught something long. ", 50)
	got := s.Compress(context.Background(), raw)
	if got == "" {
		t.Fatal("compression failure must still yield a summary")
	}
	if len([]rune(got)) > SummaryCompressionThreshold {
		t.Fatalf("fallback summary not truncated: %d chars", len([]rune(got)))
	}
}
