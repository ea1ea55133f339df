package tutor

import "github.com/tsarev/lernio/internal/llm"

// StepSchema defines the JSON schema for lesson step generation.
var StepSchema = &llm.Schema{
	Name:        "lesson-step",
	Description: "One short lesson step ending in a single check-in question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The step text: at most two sentences, plain text, one question",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}

// EvalSchema defines the JSON schema for answer evaluation.
var EvalSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Judgement of a learner's free-text answer with short feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer shows the learner understood the step",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback, plain text",
			},
		},
		"required":             []any{"is_correct", "feedback"},
		"additionalProperties": false,
	},
}

// PlanSchema defines the JSON schema for learning plan generation.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "An ordered learning plan of modules for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goal": map[string]any{
				"type":        "string",
				"description": "One-sentence overall goal for the plan",
			},
			"modules": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 6,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short module title (3-8 words)",
						},
						"objective": map[string]any{
							"type":        "string",
							"description": "One-sentence module objective",
						},
					},
					"required":             []any{"title", "objective"},
					"additionalProperties": false,
				},
				"description": "Ordered modules from foundations to application",
			},
		},
		"required":             []any{"goal", "modules"},
		"additionalProperties": false,
	},
}

// SummarySchema defines the JSON schema for summary compression.
var SummarySchema = &llm.Schema{
	Name:        "turn-summary",
	Description: "Compressed summary of the tutoring conversation so far",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence summary of what was covered",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
