package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func cacheConfig() CacheConfig {
	return CacheConfig{MaxEntries: 4, TTL: 5 * time.Minute}
}

func stepRequest() Request {
	return Request{
		System:   "You are a patient tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Explain step"}},
	}
}

func identityCtx(learner string, step int) context.Context {
	return WithIdentity(context.Background(), Identity{
		LearnerID: learner,
		PlanID:    "plan-1",
		Topic:     "insulin basics",
		StepIdx:   step,
	})
}

func TestCache_IdenticalRequestServedFromCache(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"step one text"`)},
	)
	p := WithCache(mock, cacheConfig())

	ctx := identityCtx("learner-1", 0)

	first, err := p.Generate(ctx, stepRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Fatal("first response must not be marked cached")
	}

	second, err := p.Generate(ctx, stepRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Fatal("second identical response should be served from cache")
	}
	if string(second.Content) != `"step one text"` {
		t.Fatalf("unexpected content: %s", second.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestCache_DifferentIdentityMisses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"for learner one"`)},
		MockResponse{Content: json.RawMessage(`"for learner two"`)},
	)
	p := WithCache(mock, cacheConfig())

	if _, err := p.Generate(identityCtx("learner-1", 0), stepRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(identityCtx("learner-2", 0), stepRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("a different learner must not get a cached response")
	}
	if string(resp.Content) != `"for learner two"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestCache_DifferentPromptMisses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)
	p := WithCache(mock, cacheConfig())

	ctx := identityCtx("learner-1", 0)

	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "prompt A"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "prompt B"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("a different prompt must not hit the cache")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestCache_ExpiredEntryMisses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"fresh"`)},
		MockResponse{Content: json.RawMessage(`"regenerated"`)},
	)
	p := WithCache(mock, cacheConfig())

	clock := time.Now()
	p.now = func() time.Time { return clock }

	ctx := identityCtx("learner-1", 0)

	if _, err := p.Generate(ctx, stepRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock = clock.Add(6 * time.Minute)

	resp, err := p.Generate(ctx, stepRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Cached {
		t.Fatal("expired entry must not be served")
	}
	if string(resp.Content) != `"regenerated"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrTransport{}},
		MockResponse{Content: json.RawMessage(`"recovered"`)},
	)
	p := WithCache(mock, cacheConfig())

	ctx := identityCtx("learner-1", 0)

	if _, err := p.Generate(ctx, stepRequest()); err == nil {
		t.Fatal("expected error from first call")
	}
	if p.Len() != 0 {
		t.Fatalf("failed response must not be cached, got %d entries", p.Len())
	}

	resp, err := p.Generate(ctx, stepRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"recovered"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestCache_BoundedEviction(t *testing.T) {
	mock := NewMockProvider()
	for range 6 {
		mock.AddResponse(MockResponse{Content: json.RawMessage(`"x"`)})
	}
	p := WithCache(mock, cacheConfig())

	learners := []string{"a", "b", "c", "d", "e", "f"}
	for _, l := range learners {
		if _, err := p.Generate(identityCtx(l, 0), stepRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if p.Len() > 4 {
		t.Fatalf("cache exceeded bound: %d entries", p.Len())
	}
}

func TestCache_ModelIDDelegates(t *testing.T) {
	p := WithCache(NewMockProvider(), cacheConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
