package profile

import (
	"context"
	"os"
)

// AgeBand buckets learners for tone and vocabulary.
type AgeBand string

const (
	AgeBandChild AgeBand = "child"
	AgeBandTeen  AgeBand = "teen"
	AgeBandAdult AgeBand = "adult"
	AgeBandOlder AgeBand = "older"
)

// TherapyType describes how the learner's condition is managed. Used to
// pick relevant examples, never to gate progression.
type TherapyType string

const (
	TherapyInsulin   TherapyType = "insulin"
	TherapyTablets   TherapyType = "tablets"
	TherapyLifestyle TherapyType = "lifestyle"
	TherapyMixed     TherapyType = "mixed"
)

// KnowledgeLevel sets how much prior understanding prompts may assume.
type KnowledgeLevel string

const (
	LevelBeginner     KnowledgeLevel = "beginner"
	LevelIntermediate KnowledgeLevel = "intermediate"
	LevelAdvanced     KnowledgeLevel = "advanced"
)

// Profile holds the learner attributes that condition prompt generation.
type Profile struct {
	AgeBand        AgeBand
	TherapyType    TherapyType
	KnowledgeLevel KnowledgeLevel
}

// Default returns the profile assumed when nothing is known about a learner.
func Default() Profile {
	return Profile{
		AgeBand:        AgeBandAdult,
		TherapyType:    TherapyMixed,
		KnowledgeLevel: LevelBeginner,
	}
}

// Source looks up learner attributes. Implementations must be safe for
// concurrent use.
type Source interface {
	Lookup(ctx context.Context, learnerID string) (Profile, error)
}

// StaticSource serves profiles from a fixed map, falling back to a default.
type StaticSource struct {
	profiles map[string]Profile
	fallback Profile
}

// NewStaticSource creates a Source backed by the given map. A nil map is
// allowed; every lookup then returns the fallback.
func NewStaticSource(profiles map[string]Profile, fallback Profile) *StaticSource {
	return &StaticSource{profiles: profiles, fallback: fallback}
}

func (s *StaticSource) Lookup(_ context.Context, learnerID string) (Profile, error) {
	if p, ok := s.profiles[learnerID]; ok {
		return p, nil
	}
	return s.fallback, nil
}

// FromEnv builds a Profile from LERNIO_PROFILE_* variables, falling back
// to defaults for unset values.
func FromEnv() Profile {
	p := Default()

	if v := os.Getenv("LERNIO_PROFILE_AGE_BAND"); v != "" {
		p.AgeBand = AgeBand(v)
	}
	if v := os.Getenv("LERNIO_PROFILE_THERAPY"); v != "" {
		p.TherapyType = TherapyType(v)
	}
	if v := os.Getenv("LERNIO_PROFILE_LEVEL"); v != "" {
		p.KnowledgeLevel = KnowledgeLevel(v)
	}

	return p
}
