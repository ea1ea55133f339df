// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ProgressRecordCreate) SetLearnerID(v string) *ProgressRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *ProgressRecordCreate) SetPlanID(v string) *ProgressRecordCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProgressRecordCreate) SetTopic(v string) *ProgressRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetModuleIdx sets the "module_idx" field.
func (_c *ProgressRecordCreate) SetModuleIdx(v int) *ProgressRecordCreate {
	_c.mutation.SetModuleIdx(v)
	return _c
}

// SetNillableModuleIdx sets the "module_idx" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableModuleIdx(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetModuleIdx(*v)
	}
	return _c
}

// SetStepIdx sets the "step_idx" field.
func (_c *ProgressRecordCreate) SetStepIdx(v int) *ProgressRecordCreate {
	_c.mutation.SetStepIdx(v)
	return _c
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableStepIdx(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetStepIdx(*v)
	}
	return _c
}

// SetSnapshot sets the "snapshot" field.
func (_c *ProgressRecordCreate) SetSnapshot(v string) *ProgressRecordCreate {
	_c.mutation.SetSnapshot(v)
	return _c
}

// SetNillableSnapshot sets the "snapshot" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableSnapshot(v *string) *ProgressRecordCreate {
	if v != nil {
		_c.SetSnapshot(*v)
	}
	return _c
}

// SetPrevSummary sets the "prev_summary" field.
func (_c *ProgressRecordCreate) SetPrevSummary(v string) *ProgressRecordCreate {
	_c.mutation.SetPrevSummary(v)
	return _c
}

// SetNillablePrevSummary sets the "prev_summary" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillablePrevSummary(v *string) *ProgressRecordCreate {
	if v != nil {
		_c.SetPrevSummary(*v)
	}
	return _c
}

// SetLastSentStepID sets the "last_sent_step_id" field.
func (_c *ProgressRecordCreate) SetLastSentStepID(v int) *ProgressRecordCreate {
	_c.mutation.SetLastSentStepID(v)
	return _c
}

// SetNillableLastSentStepID sets the "last_sent_step_id" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastSentStepID(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastSentStepID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressRecordCreate) SetUpdatedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUpdatedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.ModuleIdx(); !ok {
		v := progressrecord.DefaultModuleIdx
		_c.mutation.SetModuleIdx(v)
	}
	if _, ok := _c.mutation.StepIdx(); !ok {
		v := progressrecord.DefaultStepIdx
		_c.mutation.SetStepIdx(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ProgressRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "ProgressRecord.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := progressrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProgressRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleIdx(); !ok {
		return &ValidationError{Name: "module_idx", err: errors.New(`ent: missing required field "ProgressRecord.module_idx"`)}
	}
	if v, ok := _c.mutation.ModuleIdx(); ok {
		if err := progressrecord.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.module_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepIdx(); !ok {
		return &ValidationError{Name: "step_idx", err: errors.New(`ent: missing required field "ProgressRecord.step_idx"`)}
	}
	if v, ok := _c.mutation.StepIdx(); ok {
		if err := progressrecord.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.step_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressRecord.updated_at"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(progressrecord.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ModuleIdx(); ok {
		_spec.SetField(progressrecord.FieldModuleIdx, field.TypeInt, value)
		_node.ModuleIdx = value
	}
	if value, ok := _c.mutation.StepIdx(); ok {
		_spec.SetField(progressrecord.FieldStepIdx, field.TypeInt, value)
		_node.StepIdx = value
	}
	if value, ok := _c.mutation.Snapshot(); ok {
		_spec.SetField(progressrecord.FieldSnapshot, field.TypeString, value)
		_node.Snapshot = &value
	}
	if value, ok := _c.mutation.PrevSummary(); ok {
		_spec.SetField(progressrecord.FieldPrevSummary, field.TypeString, value)
		_node.PrevSummary = &value
	}
	if value, ok := _c.mutation.LastSentStepID(); ok {
		_spec.SetField(progressrecord.FieldLastSentStepID, field.TypeInt, value)
		_node.LastSentStepID = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
