package profile

import (
	"context"
	"testing"
)

func TestStaticSource_Lookup(t *testing.T) {
	known := map[string]Profile{
		"learner-1": {AgeBand: AgeBandTeen, TherapyType: TherapyInsulin, KnowledgeLevel: LevelIntermediate},
	}
	src := NewStaticSource(known, Default())

	p, err := src.Lookup(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AgeBand != AgeBandTeen || p.TherapyType != TherapyInsulin {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestStaticSource_FallbackForUnknownLearner(t *testing.T) {
	src := NewStaticSource(nil, Default())

	p, err := src.Lookup(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Default() {
		t.Fatalf("expected default profile, got: %+v", p)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LERNIO_PROFILE_AGE_BAND", "teen")
	t.Setenv("LERNIO_PROFILE_THERAPY", "tablets")
	t.Setenv("LERNIO_PROFILE_LEVEL", "advanced")

	p := FromEnv()
	if p.AgeBand != AgeBandTeen {
		t.Fatalf("age band not read: %q", p.AgeBand)
	}
	if p.TherapyType != TherapyTablets {
		t.Fatalf("therapy not read: %q", p.TherapyType)
	}
	if p.KnowledgeLevel != LevelAdvanced {
		t.Fatalf("level not read: %q", p.KnowledgeLevel)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LERNIO_PROFILE_AGE_BAND", "")
	t.Setenv("LERNIO_PROFILE_THERAPY", "")
	t.Setenv("LERNIO_PROFILE_LEVEL", "")

	if p := FromEnv(); p != Default() {
		t.Fatalf("expected defaults, got: %+v", p)
	}
}
