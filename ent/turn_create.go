// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/turn"
)

// TurnCreate is the builder for creating a Turn entity.
type TurnCreate struct {
	config
	mutation *TurnMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *TurnCreate) SetLearnerID(v string) *TurnCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *TurnCreate) SetPlanID(v string) *TurnCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetModuleIdx sets the "module_idx" field.
func (_c *TurnCreate) SetModuleIdx(v int) *TurnCreate {
	_c.mutation.SetModuleIdx(v)
	return _c
}

// SetStepIdx sets the "step_idx" field.
func (_c *TurnCreate) SetStepIdx(v int) *TurnCreate {
	_c.mutation.SetStepIdx(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *TurnCreate) SetRole(v turn.Role) *TurnCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TurnCreate) SetContent(v string) *TurnCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *TurnCreate) SetNillableContent(v *string) *TurnCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnCreate) SetTimestamp(v time.Time) *TurnCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnCreate) SetNillableTimestamp(v *time.Time) *TurnCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the TurnMutation object of the builder.
func (_c *TurnCreate) Mutation() *TurnMutation {
	return _c.mutation
}

// Save creates the Turn in the database.
func (_c *TurnCreate) Save(ctx context.Context) (*Turn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnCreate) SaveX(ctx context.Context) *Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turn.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Turn.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := turn.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Turn.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Turn.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := turn.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "Turn.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleIdx(); !ok {
		return &ValidationError{Name: "module_idx", err: errors.New(`ent: missing required field "Turn.module_idx"`)}
	}
	if v, ok := _c.mutation.ModuleIdx(); ok {
		if err := turn.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.module_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepIdx(); !ok {
		return &ValidationError{Name: "step_idx", err: errors.New(`ent: missing required field "Turn.step_idx"`)}
	}
	if v, ok := _c.mutation.StepIdx(); ok {
		if err := turn.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.step_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Turn.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := turn.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Turn.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Turn.timestamp"`)}
	}
	return nil
}

func (_c *TurnCreate) sqlSave(ctx context.Context) (*Turn, error) {
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

func (_c *TurnCreate) createSpec() (*Turn, *sqlgraph.CreateSpec) {
	var (
		_node = &Turn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turn.Table, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(turn.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(turn.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.ModuleIdx(); ok {
		_spec.SetField(turn.FieldModuleIdx, field.TypeInt, value)
		_node.ModuleIdx = value
	}
	if value, ok := _c.mutation.StepIdx(); ok {
		_spec.SetField(turn.FieldStepIdx, field.TypeInt, value)
		_node.StepIdx = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(turn.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(turn.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turn.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// TurnCreateBulk is the builder for creating many Turn entities in bulk.
type TurnCreateBulk struct {
	config
	err      error
	builders []*TurnCreate
}

// Save creates the Turn entities in the database.
func (_c *TurnCreateBulk) Save(ctx context.Context) ([]*Turn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Turn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnMutation)
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
func (_c *TurnCreateBulk) SaveX(ctx context.Context) []*Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
