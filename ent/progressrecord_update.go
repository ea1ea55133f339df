// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/predicate"
	"github.com/tsarev/lernio/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdate) SetLearnerID(v string) *ProgressRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLearnerID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *ProgressRecordUpdate) SetPlanID(v string) *ProgressRecordUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillablePlanID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProgressRecordUpdate) SetTopic(v string) *ProgressRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTopic(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetModuleIdx sets the "module_idx" field.
func (_u *ProgressRecordUpdate) SetModuleIdx(v int) *ProgressRecordUpdate {
	_u.mutation.ResetModuleIdx()
	_u.mutation.SetModuleIdx(v)
	return _u
}

// SetNillableModuleIdx sets the "module_idx" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableModuleIdx(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetModuleIdx(*v)
	}
	return _u
}

// AddModuleIdx adds value to the "module_idx" field.
func (_u *ProgressRecordUpdate) AddModuleIdx(v int) *ProgressRecordUpdate {
	_u.mutation.AddModuleIdx(v)
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *ProgressRecordUpdate) SetStepIdx(v int) *ProgressRecordUpdate {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableStepIdx(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *ProgressRecordUpdate) AddStepIdx(v int) *ProgressRecordUpdate {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *ProgressRecordUpdate) SetSnapshot(v string) *ProgressRecordUpdate {
	_u.mutation.SetSnapshot(v)
	return _u
}

// SetNillableSnapshot sets the "snapshot" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSnapshot(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSnapshot(*v)
	}
	return _u
}

// ClearSnapshot clears the value of the "snapshot" field.
func (_u *ProgressRecordUpdate) ClearSnapshot() *ProgressRecordUpdate {
	_u.mutation.ClearSnapshot()
	return _u
}

// SetPrevSummary sets the "prev_summary" field.
func (_u *ProgressRecordUpdate) SetPrevSummary(v string) *ProgressRecordUpdate {
	_u.mutation.SetPrevSummary(v)
	return _u
}

// SetNillablePrevSummary sets the "prev_summary" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillablePrevSummary(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetPrevSummary(*v)
	}
	return _u
}

// ClearPrevSummary clears the value of the "prev_summary" field.
func (_u *ProgressRecordUpdate) ClearPrevSummary() *ProgressRecordUpdate {
	_u.mutation.ClearPrevSummary()
	return _u
}

// SetLastSentStepID sets the "last_sent_step_id" field.
func (_u *ProgressRecordUpdate) SetLastSentStepID(v int) *ProgressRecordUpdate {
	_u.mutation.ResetLastSentStepID()
	_u.mutation.SetLastSentStepID(v)
	return _u
}

// SetNillableLastSentStepID sets the "last_sent_step_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastSentStepID(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastSentStepID(*v)
	}
	return _u
}

// AddLastSentStepID adds value to the "last_sent_step_id" field.
func (_u *ProgressRecordUpdate) AddLastSentStepID(v int) *ProgressRecordUpdate {
	_u.mutation.AddLastSentStepID(v)
	return _u
}

// ClearLastSentStepID clears the value of the "last_sent_step_id" field.
func (_u *ProgressRecordUpdate) ClearLastSentStepID() *ProgressRecordUpdate {
	_u.mutation.ClearLastSentStepID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := progressrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleIdx(); ok {
		if err := progressrecord.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.module_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := progressrecord.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.step_idx": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(progressrecord.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIdx(); ok {
		_spec.SetField(progressrecord.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIdx(); ok {
		_spec.AddField(progressrecord.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(progressrecord.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(progressrecord.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(progressrecord.FieldSnapshot, field.TypeString, value)
	}
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(progressrecord.FieldSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.PrevSummary(); ok {
		_spec.SetField(progressrecord.FieldPrevSummary, field.TypeString, value)
	}
	if _u.mutation.PrevSummaryCleared() {
		_spec.ClearField(progressrecord.FieldPrevSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastSentStepID(); ok {
		_spec.SetField(progressrecord.FieldLastSentStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSentStepID(); ok {
		_spec.AddField(progressrecord.FieldLastSentStepID, field.TypeInt, value)
	}
	if _u.mutation.LastSentStepIDCleared() {
		_spec.ClearField(progressrecord.FieldLastSentStepID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdateOne) SetLearnerID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLearnerID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *ProgressRecordUpdateOne) SetPlanID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillablePlanID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProgressRecordUpdateOne) SetTopic(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTopic(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetModuleIdx sets the "module_idx" field.
func (_u *ProgressRecordUpdateOne) SetModuleIdx(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetModuleIdx()
	_u.mutation.SetModuleIdx(v)
	return _u
}

// SetNillableModuleIdx sets the "module_idx" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableModuleIdx(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetModuleIdx(*v)
	}
	return _u
}

// AddModuleIdx adds value to the "module_idx" field.
func (_u *ProgressRecordUpdateOne) AddModuleIdx(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddModuleIdx(v)
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *ProgressRecordUpdateOne) SetStepIdx(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableStepIdx(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *ProgressRecordUpdateOne) AddStepIdx(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *ProgressRecordUpdateOne) SetSnapshot(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetSnapshot(v)
	return _u
}

// SetNillableSnapshot sets the "snapshot" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSnapshot(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSnapshot(*v)
	}
	return _u
}

// ClearSnapshot clears the value of the "snapshot" field.
func (_u *ProgressRecordUpdateOne) ClearSnapshot() *ProgressRecordUpdateOne {
	_u.mutation.ClearSnapshot()
	return _u
}

// SetPrevSummary sets the "prev_summary" field.
func (_u *ProgressRecordUpdateOne) SetPrevSummary(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetPrevSummary(v)
	return _u
}

// SetNillablePrevSummary sets the "prev_summary" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillablePrevSummary(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetPrevSummary(*v)
	}
	return _u
}

// ClearPrevSummary clears the value of the "prev_summary" field.
func (_u *ProgressRecordUpdateOne) ClearPrevSummary() *ProgressRecordUpdateOne {
	_u.mutation.ClearPrevSummary()
	return _u
}

// SetLastSentStepID sets the "last_sent_step_id" field.
func (_u *ProgressRecordUpdateOne) SetLastSentStepID(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetLastSentStepID()
	_u.mutation.SetLastSentStepID(v)
	return _u
}

// SetNillableLastSentStepID sets the "last_sent_step_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastSentStepID(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastSentStepID(*v)
	}
	return _u
}

// AddLastSentStepID adds value to the "last_sent_step_id" field.
func (_u *ProgressRecordUpdateOne) AddLastSentStepID(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddLastSentStepID(v)
	return _u
}

// ClearLastSentStepID clears the value of the "last_sent_step_id" field.
func (_u *ProgressRecordUpdateOne) ClearLastSentStepID() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastSentStepID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := progressrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleIdx(); ok {
		if err := progressrecord.ModuleIdxValidator(v); err != nil {
			return &ValidationError{Name: "module_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.module_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := progressrecord.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.step_idx": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(progressrecord.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleIdx(); ok {
		_spec.SetField(progressrecord.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleIdx(); ok {
		_spec.AddField(progressrecord.FieldModuleIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(progressrecord.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(progressrecord.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(progressrecord.FieldSnapshot, field.TypeString, value)
	}
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(progressrecord.FieldSnapshot, field.TypeString)
	}
	if value, ok := _u.mutation.PrevSummary(); ok {
		_spec.SetField(progressrecord.FieldPrevSummary, field.TypeString, value)
	}
	if _u.mutation.PrevSummaryCleared() {
		_spec.ClearField(progressrecord.FieldPrevSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LastSentStepID(); ok {
		_spec.SetField(progressrecord.FieldLastSentStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastSentStepID(); ok {
		_spec.AddField(progressrecord.FieldLastSentStepID, field.TypeInt, value)
	}
	if _u.mutation.LastSentStepIDCleared() {
		_spec.ClearField(progressrecord.FieldLastSentStepID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
