package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Lesson is a pre-authored catalog entry for the static curriculum.
// Rows are created and retired by the content loader and never mutated
// by the engine.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable identifier used by learners and progress rows"),
		field.String("title").NotEmpty(),
		field.Text("body").NotEmpty(),
		field.Bool("active").
			Default(true).
			Comment("Retired lessons stay in place for old progress rows"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", LessonStep.Type),
		edge.To("questions", QuizQuestion.Type),
	}
}
