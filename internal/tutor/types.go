package tutor

import "github.com/tsarev/lernio/internal/profile"

// StepInput carries everything needed to generate one lesson step.
type StepInput struct {
	Profile      profile.Profile
	Topic        string
	Goal         string
	StepIdx      int
	PriorSummary string
}

// EvalInput carries everything needed to evaluate a free-text answer.
type EvalInput struct {
	Profile      profile.Profile
	Topic        string
	Answer       string
	LastStepText string
}

// Evaluation is the outcome of judging a learner's answer.
type Evaluation struct {
	Correct  bool
	Feedback string
}
