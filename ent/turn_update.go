// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/predicate"
	"github.com/tsarev/lernio/ent/turn"
)

// TurnUpdate is the builder for updating Turn entities.
type TurnUpdate struct {
	config
	hooks    []Hook
	mutation *TurnMutation
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdate) Where(ps ...predicate.Turn) *TurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnUpdate) SetLearnerID(v string) *TurnUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableLearnerID(v *string) *TurnUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *TurnUpdate) SetPlanID(v string) *TurnUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *TurnUpdate) SetNillablePlanID(v *string) *TurnUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetModuleIdx sets the "module_idx" field.
func (_u *TurnUpdate) SetModuleIdx(v int) *TurnUpdate {
	_u.mutation.ResetModuleIdx()
	_u.mutation.SetModuleIdx(v)
	return _u
}

// SetNillableModuleIdx sets the "module_idx" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableModuleIdx(v *int) *TurnUpdate {
	if v != nil {
		_u.SetModuleIdx(*v)
	}
	return _u
}

// AddModuleIdx adds value to the "module_idx" field.
func (_u *TurnUpdate) AddModuleIdx(v int) *TurnUpdate {
	_u.mutation.AddModuleIdx(v)
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *TurnUpdate) SetStepIdx(v int) *TurnUpdate {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableStepIdx(v *int) *TurnUpdate {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *TurnUpdate) AddStepIdx(v int) *TurnUpdate {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *TurnUpdate) SetRole(v turn.Role) *TurnUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableRole(v *turn.Role) *TurnUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnUpdate) SetContent(v string) *TurnUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableContent(v *string) *TurnUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *TurnUpdate) ClearContent() *TurnUpdate {
	_u.mutation.ClearContent()
	return _u
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdate) Mutation() *TurnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := turn.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Turn.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := turn.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "Turn.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleIdx(); ok {
		if err := turn.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.module_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := turn.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.step_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := turn.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Turn.role": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turn.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(turn.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIdx(); ok {
		_spec.SetField(turn.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIdx(); ok {
		_spec.AddField(turn.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(turn.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(turn.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(turn.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turn.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(turn.FieldContent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnUpdateOne is the builder for updating a single Turn entity.
type TurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnUpdateOne) SetLearnerID(v string) *TurnUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableLearnerID(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *TurnUpdateOne) SetPlanID(v string) *TurnUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillablePlanID(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetModuleIdx sets the "module_idx" field.
func (_u *TurnUpdateOne) SetModuleIdx(v int) *TurnUpdateOne {
	_u.mutation.ResetModuleIdx()
	_u.mutation.SetModuleIdx(v)
	return _u
}

// SetNillableModuleIdx sets the "module_idx" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableModuleIdx(v *int) *TurnUpdateOne {
	if v != nil {
		_u.SetModuleIdx(*v)
	}
	return _u
}

// AddModuleIdx adds value to the "module_idx" field.
func (_u *TurnUpdateOne) AddModuleIdx(v int) *TurnUpdateOne {
	_u.mutation.AddModuleIdx(v)
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *TurnUpdateOne) SetStepIdx(v int) *TurnUpdateOne {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableStepIdx(v *int) *TurnUpdateOne {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *TurnUpdateOne) AddStepIdx(v int) *TurnUpdateOne {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *TurnUpdateOne) SetRole(v turn.Role) *TurnUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableRole(v *turn.Role) *TurnUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnUpdateOne) SetContent(v string) *TurnUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableContent(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *TurnUpdateOne) ClearContent() *TurnUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdateOne) Mutation() *TurnMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdateOne) Where(ps ...predicate.Turn) *TurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnUpdateOne) Select(field string, fields ...string) *TurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Turn entity.
func (_u *TurnUpdateOne) Save(ctx context.Context) (*Turn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdateOne) SaveX(ctx context.Context) *Turn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := turn.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Turn.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := turn.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "Turn.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleIdx(); ok {
		if err := turn.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.module_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := turn.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "Turn.step_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := turn.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Turn.role": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnUpdateOne) sqlSave(ctx context.Context) (_node *Turn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Turn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turn.FieldID)
		for _, f := range fields {
			if !turn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turn.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turn.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(turn.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIdx(); ok {
		_spec.SetField(turn.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIdx(); ok {
		_spec.AddField(turn.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(turn.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(turn.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(turn.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turn.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(turn.FieldContent, field.TypeString)
	}
	_node = &Turn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
