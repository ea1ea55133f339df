package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Turn is one append-only audit row per delivered step or learner reply.
// The five-field uniqueness makes the log idempotent: re-appending the same
// turn is a no-op.
type Turn struct {
	ent.Schema
}

func (Turn) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("plan_id").NotEmpty(),
		field.Int("module_idx").NonNegative(),
		field.Int("step_idx").NonNegative(),
		field.Enum("role").
			Values("assistant", "learner"),
		field.Text("content").
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (Turn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "plan_id", "module_idx", "step_idx", "role").Unique(),
		index.Fields("learner_id", "plan_id"),
		index.Fields("timestamp"),
	}
}
