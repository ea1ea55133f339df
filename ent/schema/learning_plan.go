package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPlan is a once-generated dynamic curriculum: an ordered list of
// module descriptors for a topic. At most one plan per learner is active;
// activation of a new plan deactivates the old one in the same transaction.
type LearningPlan struct {
	ent.Schema
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("plan_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("topic").NotEmpty(),
		field.Text("goal").
			Comment("One-sentence learning goal the generator works toward"),
		field.JSON("modules", []map[string]any{}).
			Comment("Ordered module descriptors as generated"),
		field.Bool("active").Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "active"),
		index.Fields("learner_id", "plan_id").Unique(),
	}
}
