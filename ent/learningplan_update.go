// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/learningplan"
	"github.com/tsarev/lernio/ent/predicate"
)

// LearningPlanUpdate is the builder for updating LearningPlan entities.
type LearningPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPlanMutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdate) Where(ps ...predicate.LearningPlan) *LearningPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearningPlanUpdate) SetLearnerID(v string) *LearningPlanUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableLearnerID(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LearningPlanUpdate) SetTopic(v string) *LearningPlanUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableTopic(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningPlanUpdate) SetGoal(v string) *LearningPlanUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableGoal(v *string) *LearningPlanUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *LearningPlanUpdate) SetModules(v []map[string]interface{}) *LearningPlanUpdate {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *LearningPlanUpdate) AppendModules(v []map[string]interface{}) *LearningPlanUpdate {
	_u.mutation.AppendModules(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *LearningPlanUpdate) SetActive(v bool) *LearningPlanUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableActive(v *bool) *LearningPlanUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdate) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learningplan.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := learningplan.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learningplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(learningplan.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningplan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(learningplan.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(learningplan.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPlanUpdateOne is the builder for updating a single LearningPlan entity.
type LearningPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPlanMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearningPlanUpdateOne) SetLearnerID(v string) *LearningPlanUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableLearnerID(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LearningPlanUpdateOne) SetTopic(v string) *LearningPlanUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableTopic(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningPlanUpdateOne) SetGoal(v string) *LearningPlanUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableGoal(v *string) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *LearningPlanUpdateOne) SetModules(v []map[string]interface{}) *LearningPlanUpdateOne {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *LearningPlanUpdateOne) AppendModules(v []map[string]interface{}) *LearningPlanUpdateOne {
	_u.mutation.AppendModules(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *LearningPlanUpdateOne) SetActive(v bool) *LearningPlanUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableActive(v *bool) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdateOne) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdateOne) Where(ps ...predicate.LearningPlan) *LearningPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPlanUpdateOne) Select(field string, fields ...string) *LearningPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPlan entity.
func (_u *LearningPlanUpdateOne) Save(ctx context.Context) (*LearningPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) SaveX(ctx context.Context) *LearningPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPlanUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learningplan.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := learningplan.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPlanUpdateOne) sqlSave(ctx context.Context) (_node *LearningPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningplan.FieldID)
		for _, f := range fields {
			if !learningplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningplan.FieldID {
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
		_spec.SetField(learningplan.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(learningplan.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningplan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(learningplan.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(learningplan.FieldActive, field.TypeBool, value)
	}
	_node = &LearningPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
