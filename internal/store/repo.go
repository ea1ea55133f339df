package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
// Catalog misses surface it so callers can fall back to dynamic mode.
var ErrNotFound = errors.New("store: not found")

// Lesson is a catalog entry with its ordered steps and quiz questions.
type Lesson struct {
	Slug      string
	Title     string
	Body      string
	Active    bool
	Steps     []LessonStep
	Questions []QuizQuestion
}

// LessonStep is one ordered content chunk of a lesson.
type LessonStep struct {
	Ord  int
	Body string
}

// QuizQuestion is one multiple-choice question with a zero-based answer index.
type QuizQuestion struct {
	Ord     int
	Text    string
	Options []string
	Correct int
}

// CatalogRepo provides access to the pre-authored curriculum.
// The engine only reads; writes come from the content loader.
type CatalogRepo interface {
	// Get returns the lesson with the given slug, steps and questions
	// ordered by position. Returns ErrNotFound for unknown slugs.
	Get(ctx context.Context, slug string) (*Lesson, error)

	// List returns all lessons (without children), active first.
	List(ctx context.Context) ([]*Lesson, error)

	// Put creates or replaces a lesson and its children.
	Put(ctx context.Context, l *Lesson) error

	// Retire marks a lesson inactive without deleting it.
	Retire(ctx context.Context, slug string) error
}

// LessonProgress is the static-mode progress row for one (learner, lesson).
type LessonProgress struct {
	LearnerID   string
	LessonSlug  string
	StepIdx     int
	QuestionIdx int
	QuizCorrect int
	Completed   bool
	QuizScore   *int
	UpdatedAt   time.Time
}

// ProgressRepo manages static-mode lesson progress rows.
type ProgressRepo interface {
	// Get returns the progress row, or ErrNotFound if the learner never
	// started the lesson.
	Get(ctx context.Context, learnerID, slug string) (*LessonProgress, error)

	// Upsert creates the row on first start or overwrites the mutable
	// fields on advance.
	Upsert(ctx context.Context, p *LessonProgress) error

	// LatestIncomplete returns the learner's most recently touched
	// incomplete row, or ErrNotFound. Used to resume a lesson after a
	// restart.
	LatestIncomplete(ctx context.Context, learnerID string) (*LessonProgress, error)

	// DeleteByLearner removes all of a learner's progress rows.
	DeleteByLearner(ctx context.Context, learnerID string) error
}

// PlanModule is one ordered module descriptor of a learning plan.
type PlanModule struct {
	Title     string `json:"title"`
	Objective string `json:"objective"`
}

// Plan is a once-generated dynamic curriculum for a topic.
type Plan struct {
	LearnerID string
	PlanID    string
	Topic     string
	Goal      string
	Modules   []PlanModule
	Active    bool
	CreatedAt time.Time
}

// PlanRepo manages learning plans. At most one plan per learner is active.
type PlanRepo interface {
	// Activate stores the plan and deactivates any previously active plan
	// for the learner in the same transaction.
	Activate(ctx context.Context, p *Plan) error

	// Active returns the learner's active plan, or ErrNotFound.
	Active(ctx context.Context, learnerID string) (*Plan, error)

	// Get returns a specific plan, or ErrNotFound.
	Get(ctx context.Context, learnerID, planID string) (*Plan, error)

	// DeleteByLearner removes all of a learner's plans.
	DeleteByLearner(ctx context.Context, learnerID string) error
}

// ProgressRecord is the dynamic-mode durable document for one (learner, plan).
type ProgressRecord struct {
	LearnerID      string
	PlanID         string
	Topic          string
	ModuleIdx      int
	StepIdx        int
	Snapshot       *string
	PrevSummary    *string
	LastSentStepID *int
	UpdatedAt      time.Time
}

// RecordRepo manages dynamic-mode progress records.
type RecordRepo interface {
	// Get returns the record, or ErrNotFound.
	Get(ctx context.Context, learnerID, planID string) (*ProgressRecord, error)

	// Upsert creates or overwrites the record.
	Upsert(ctx context.Context, r *ProgressRecord) error

	// DeleteByLearner removes all of a learner's records.
	DeleteByLearner(ctx context.Context, learnerID string) error
}

// TurnRole identifies who produced a logged turn.
type TurnRole string

const (
	RoleAssistant TurnRole = "assistant"
	RoleLearner   TurnRole = "learner"
)

// Turn is one append-only audit row.
type Turn struct {
	LearnerID string
	PlanID    string
	ModuleIdx int
	StepIdx   int
	Role      TurnRole
	Content   string
	Timestamp time.Time
}

// TurnRepo is the append-only, idempotent turn log.
type TurnRepo interface {
	// Append writes the turn. A uniqueness violation on
	// (learner, plan, module, step, role) is treated as success.
	Append(ctx context.Context, t *Turn) error

	// List returns a learner's turns for a plan, oldest first.
	List(ctx context.Context, learnerID, planID string, limit int) ([]*Turn, error)

	// Count returns the number of turns logged for a learner.
	Count(ctx context.Context, learnerID string) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored gateway call record.
type LLMRequestEvent struct {
	ID int
	LLMRequestEventData
	Timestamp time.Time
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// UsageByPurpose aggregates token usage grouped by purpose.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// UsageByModel aggregates token usage grouped by model.
	UsageByModel(ctx context.Context) ([]LLMUsage, error)
}
