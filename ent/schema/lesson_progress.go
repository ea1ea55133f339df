package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress is the static-mode progress row: one per (learner, lesson).
// Step and question indices only ever grow until completed is set, after
// which the row is frozen.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("lesson_slug").NotEmpty(),
		field.Int("step_idx").
			Default(0).
			NonNegative(),
		field.Int("question_idx").
			Default(0).
			NonNegative(),
		field.Int("quiz_correct").
			Default(0).
			NonNegative().
			Comment("Running count of correctly answered quiz questions"),
		field.Bool("completed").Default(false),
		field.Int("quiz_score").
			Optional().
			Nillable().
			Comment("Percentage 0-100, set once on completion"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lesson_slug").Unique(),
		index.Fields("learner_id"),
	}
}
