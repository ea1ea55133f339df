package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizQuestion is one multiple-choice question of a static lesson's quiz.
type QuizQuestion struct {
	ent.Schema
}

func (QuizQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ord").
			NonNegative().
			Comment("Dense zero-based position within the lesson's quiz"),
		field.Text("text").NotEmpty(),
		field.Strings("options"),
		field.Int("correct").
			NonNegative().
			Comment("Zero-based index into options"),
	}
}

func (QuizQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("questions").
			Unique().
			Required(),
	}
}

func (QuizQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ord").
			Edges("lesson").
			Unique(),
	}
}
