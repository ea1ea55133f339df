package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonStep is one ordered content chunk of a static lesson.
type LessonStep struct {
	ent.Schema
}

func (LessonStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ord").
			NonNegative().
			Comment("Dense zero-based position within the lesson"),
		field.Text("body").NotEmpty(),
	}
}

func (LessonStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

func (LessonStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ord").
			Edges("lesson").
			Unique(),
	}
}
