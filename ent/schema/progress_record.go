package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the dynamic-mode progress row: one per (learner, plan).
// It is the durable document sessions are hydrated from after a restart.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("plan_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("module_idx").
			Default(0).
			NonNegative(),
		field.Int("step_idx").
			Default(0).
			NonNegative(),
		field.Text("snapshot").
			Optional().
			Nillable().
			Comment("Last step text actually delivered, for resume and retries"),
		field.Text("prev_summary").
			Optional().
			Nillable().
			Comment("Running summary of prior turns fed into the next prompt"),
		field.Int("last_sent_step_id").
			Optional().
			Nillable().
			Comment("Step counter value at last delivery; collapses retried sends"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "plan_id").Unique(),
	}
}
